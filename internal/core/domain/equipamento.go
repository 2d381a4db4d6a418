package domain

import "time"

// TipoEquipamento is the category of a fleet machine.
type TipoEquipamento string

const (
	TipoCaminhao         TipoEquipamento = "CAMINHAO"
	TipoRetroescavadeira TipoEquipamento = "RETROESCAVADEIRA"
	TipoTrator           TipoEquipamento = "TRATOR"
	TipoEscavadeira      TipoEquipamento = "ESCAVADEIRA"
	TipoPaCarregadeira   TipoEquipamento = "PA_CARREGADEIRA"
	TipoRoloCompactador  TipoEquipamento = "ROLO_COMPACTADOR"
	TipoOutro            TipoEquipamento = "OUTRO"
)

// Valid reports whether t is one of the known equipment categories.
func (t TipoEquipamento) Valid() bool {
	switch t {
	case TipoCaminhao, TipoRetroescavadeira, TipoTrator, TipoEscavadeira,
		TipoPaCarregadeira, TipoRoloCompactador, TipoOutro:
		return true
	}
	return false
}

// Equipamento is a machine in the fleet. Identificador is the unique internal
// asset tag; Placa is the licence plate, present only for road vehicles.
type Equipamento struct {
	ID               string          `json:"id" bson:"_id,omitempty"`
	Tipo             TipoEquipamento `json:"tipo" bson:"tipo"`
	Placa            string          `json:"placa,omitempty" bson:"placa,omitempty"`
	Identificador    string          `json:"identificador" bson:"identificador"`
	Modelo           string          `json:"modelo" bson:"modelo"`
	Marca            string          `json:"marca" bson:"marca"`
	AnoFabricacao    int             `json:"ano_fabricacao,omitempty" bson:"ano_fabricacao,omitempty"`
	NumeroSerie      string          `json:"numero_serie,omitempty" bson:"numero_serie,omitempty"`
	ValorAquisicao   float64         `json:"valor_aquisicao,omitempty" bson:"valor_aquisicao,omitempty"`
	HodometroInicial float64         `json:"hodometro_inicial,omitempty" bson:"hodometro_inicial,omitempty"`
	HodometroAtual   float64         `json:"hodometro_atual,omitempty" bson:"hodometro_atual,omitempty"`
	Observacoes      string          `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	Ativo            bool            `json:"ativo" bson:"ativo"`
	CreatedAt        time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt        *time.Time      `json:"updated_at" bson:"updated_at,omitempty"`
}
