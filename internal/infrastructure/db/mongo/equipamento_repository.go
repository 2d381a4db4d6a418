package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

const collectionEquipamentos = "equipamentos"

type EquipamentoRepository struct {
	col *mongo.Collection
}

func NewEquipamentoRepository(db *mongo.Database) *EquipamentoRepository {
	return &EquipamentoRepository{col: db.Collection(collectionEquipamentos)}
}

func (r *EquipamentoRepository) Create(ctx context.Context, e *domain.Equipamento) (*domain.Equipamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	e.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIdentificadorTaken
		}
		return nil, fmt.Errorf("insert equipamento: %w", err)
	}
	return e, nil
}

func (r *EquipamentoRepository) FindByID(ctx context.Context, id string) (*domain.Equipamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Equipamento
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEquipamentoNotFound
		}
		return nil, fmt.Errorf("find equipamento: %w", err)
	}
	return &e, nil
}

func (r *EquipamentoRepository) FindByIdentificador(ctx context.Context, identificador string) (*domain.Equipamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Equipamento
	if err := r.col.FindOne(ctx, bson.M{"identificador": identificador}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEquipamentoNotFound
		}
		return nil, fmt.Errorf("find equipamento: %w", err)
	}
	return &e, nil
}

func (r *EquipamentoRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Equipamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Ativo != nil {
		query["ativo"] = *filter.Ativo
	}

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "identificador", Value: 1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list equipamentos: %w", err)
	}
	defer cur.Close(ctx)

	var equipamentos []*domain.Equipamento
	if err := cur.All(ctx, &equipamentos); err != nil {
		return nil, fmt.Errorf("decode equipamentos: %w", err)
	}
	return equipamentos, nil
}

func (r *EquipamentoRepository) Update(ctx context.Context, id string, upd ports.EquipamentoUpdate) (*domain.Equipamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Placa != nil {
		set["placa"] = *upd.Placa
	}
	if upd.Modelo != nil {
		set["modelo"] = *upd.Modelo
	}
	if upd.Marca != nil {
		set["marca"] = *upd.Marca
	}
	if upd.AnoFabricacao != nil {
		set["ano_fabricacao"] = *upd.AnoFabricacao
	}
	if upd.NumeroSerie != nil {
		set["numero_serie"] = *upd.NumeroSerie
	}
	if upd.ValorAquisicao != nil {
		set["valor_aquisicao"] = *upd.ValorAquisicao
	}
	if upd.HodometroAtual != nil {
		set["hodometro_atual"] = *upd.HodometroAtual
	}
	if upd.Observacoes != nil {
		set["observacoes"] = *upd.Observacoes
	}
	if upd.Ativo != nil {
		set["ativo"] = *upd.Ativo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var e domain.Equipamento
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEquipamentoNotFound
		}
		return nil, fmt.Errorf("update equipamento: %w", err)
	}
	return &e, nil
}

// EnsureIndexes creates the unique identificador index and a sparse unique
// placa index (road vehicles only).
func (r *EquipamentoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "identificador", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "placa", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	return err
}
