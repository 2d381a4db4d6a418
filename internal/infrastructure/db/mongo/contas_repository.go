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

const (
	collectionContasPagar   = "contas_pagar"
	collectionContasReceber = "contas_receber"
)

// contasQuery translates the shared payable/receivable filter to bson.
// settledStatus is the status that marks a settled bill (PAGO / RECEBIDO),
// used by the Vencidas filter.
func contasQuery(filter ports.ListContasFilter, settledStatus string) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Categoria != "" {
		query["categoria"] = filter.Categoria
	}
	if filter.ClienteID != "" {
		query["cliente_id"] = filter.ClienteID
	}

	dates := bson.M{}
	if !filter.DateFrom.IsZero() {
		dates["$gte"] = filter.DateFrom
	}
	if !filter.DateTo.IsZero() {
		dates["$lte"] = filter.DateTo
	}

	// Vencidas composes with the other filters instead of replacing them:
	// an explicit status (e.g. status=PAGO&vencidas=true, "settled late")
	// and any date range both stay in effect.
	if filter.Vencidas != nil {
		hoje := time.Now().UTC().Truncate(24 * time.Hour)
		if *filter.Vencidas {
			if filter.Status == "" {
				query["status"] = bson.M{"$nin": bson.A{settledStatus, "CANCELADO"}}
			}
			dates["$lt"] = hoje
		} else {
			query["$or"] = bson.A{
				bson.M{"status": settledStatus},
				bson.M{"data_vencimento": bson.M{"$gte": hoje}},
			}
		}
	}

	if len(dates) > 0 {
		query["data_vencimento"] = dates
	}
	return query
}

type ContaPagarRepository struct {
	col *mongo.Collection
}

func NewContaPagarRepository(db *mongo.Database) *ContaPagarRepository {
	return &ContaPagarRepository{col: db.Collection(collectionContasPagar)}
}

func (r *ContaPagarRepository) CreateMany(ctx context.Context, contas []*domain.ContaPagar) ([]*domain.ContaPagar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]any, len(contas))
	for i, c := range contas {
		c.ID = primitive.NewObjectID().Hex()
		docs[i] = c
	}

	if _, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, fmt.Errorf("insert contas a pagar: %w", err)
	}
	return contas, nil
}

func (r *ContaPagarRepository) FindByID(ctx context.Context, id string) (*domain.ContaPagar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.ContaPagar
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContaPagarNotFound
		}
		return nil, fmt.Errorf("find conta a pagar: %w", err)
	}
	return &c, nil
}

func (r *ContaPagarRepository) List(ctx context.Context, filter ports.ListContasFilter) ([]*domain.ContaPagar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "data_vencimento", Value: 1}})

	cur, err := r.col.Find(ctx, contasQuery(filter, string(domain.PagarPago)), opts)
	if err != nil {
		return nil, fmt.Errorf("list contas a pagar: %w", err)
	}
	defer cur.Close(ctx)

	var contas []*domain.ContaPagar
	if err := cur.All(ctx, &contas); err != nil {
		return nil, fmt.Errorf("decode contas a pagar: %w", err)
	}
	return contas, nil
}

func (r *ContaPagarRepository) Update(ctx context.Context, id string, upd ports.ContaPagarUpdate) (*domain.ContaPagar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Descricao != nil {
		set["descricao"] = *upd.Descricao
	}
	if upd.Valor != nil {
		set["valor"] = *upd.Valor
	}
	if upd.DataVencimento != nil {
		set["data_vencimento"] = *upd.DataVencimento
	}
	if upd.DataPagamento != nil {
		set["data_pagamento"] = *upd.DataPagamento
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Categoria != nil {
		set["categoria"] = *upd.Categoria
	}
	if upd.FornecedorNome != nil {
		set["fornecedor_nome"] = *upd.FornecedorNome
	}
	if upd.Observacoes != nil {
		set["observacoes"] = *upd.Observacoes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c domain.ContaPagar
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContaPagarNotFound
		}
		return nil, fmt.Errorf("update conta a pagar: %w", err)
	}
	return &c, nil
}

// EnsureIndexes creates the due-date and status indexes used by listings.
func (r *ContaPagarRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "data_vencimento", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "grupo_parcelamento", Value: 1}}},
	})
	return err
}

type ContaReceberRepository struct {
	col *mongo.Collection
}

func NewContaReceberRepository(db *mongo.Database) *ContaReceberRepository {
	return &ContaReceberRepository{col: db.Collection(collectionContasReceber)}
}

func (r *ContaReceberRepository) CreateMany(ctx context.Context, contas []*domain.ContaReceber) ([]*domain.ContaReceber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]any, len(contas))
	for i, c := range contas {
		c.ID = primitive.NewObjectID().Hex()
		docs[i] = c
	}

	if _, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, fmt.Errorf("insert contas a receber: %w", err)
	}
	return contas, nil
}

func (r *ContaReceberRepository) FindByID(ctx context.Context, id string) (*domain.ContaReceber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.ContaReceber
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContaReceberNotFound
		}
		return nil, fmt.Errorf("find conta a receber: %w", err)
	}
	return &c, nil
}

func (r *ContaReceberRepository) List(ctx context.Context, filter ports.ListContasFilter) ([]*domain.ContaReceber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "data_vencimento", Value: 1}})

	cur, err := r.col.Find(ctx, contasQuery(filter, string(domain.ReceberRecebido)), opts)
	if err != nil {
		return nil, fmt.Errorf("list contas a receber: %w", err)
	}
	defer cur.Close(ctx)

	var contas []*domain.ContaReceber
	if err := cur.All(ctx, &contas); err != nil {
		return nil, fmt.Errorf("decode contas a receber: %w", err)
	}
	return contas, nil
}

func (r *ContaReceberRepository) Update(ctx context.Context, id string, upd ports.ContaReceberUpdate) (*domain.ContaReceber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Descricao != nil {
		set["descricao"] = *upd.Descricao
	}
	if upd.Valor != nil {
		set["valor"] = *upd.Valor
	}
	if upd.DataVencimento != nil {
		set["data_vencimento"] = *upd.DataVencimento
	}
	if upd.DataRecebimento != nil {
		set["data_recebimento"] = *upd.DataRecebimento
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Categoria != nil {
		set["categoria"] = *upd.Categoria
	}
	if upd.ClienteNome != nil {
		set["cliente_nome"] = *upd.ClienteNome
	}
	if upd.NumeroDocumento != nil {
		set["numero_documento"] = *upd.NumeroDocumento
	}
	if upd.Observacoes != nil {
		set["observacoes"] = *upd.Observacoes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c domain.ContaReceber
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContaReceberNotFound
		}
		return nil, fmt.Errorf("update conta a receber: %w", err)
	}
	return &c, nil
}

// EnsureIndexes creates the due-date, status and document indexes.
func (r *ContaReceberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "data_vencimento", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "numero_documento", Value: 1}}},
		{Keys: bson.D{{Key: "grupo_parcelamento", Value: 1}}},
	})
	return err
}
