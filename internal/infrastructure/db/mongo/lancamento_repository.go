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

const collectionLancamentos = "lancamentos"

type LancamentoRepository struct {
	col *mongo.Collection
}

func NewLancamentoRepository(db *mongo.Database) *LancamentoRepository {
	return &LancamentoRepository{col: db.Collection(collectionLancamentos)}
}

func (r *LancamentoRepository) Create(ctx context.Context, l *domain.Lancamento) (*domain.Lancamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	l.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, l); err != nil {
		return nil, fmt.Errorf("insert lancamento: %w", err)
	}
	return l, nil
}

func (r *LancamentoRepository) FindByID(ctx context.Context, id string) (*domain.Lancamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Lancamento
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLancamentoNotFound
		}
		return nil, fmt.Errorf("find lancamento: %w", err)
	}
	return &l, nil
}

func (r *LancamentoRepository) List(ctx context.Context, filter ports.ListLancamentosFilter) ([]*domain.Lancamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ContaID != "" {
		query["conta_id"] = filter.ContaID
	}
	if filter.Tipo != "" {
		query["tipo"] = filter.Tipo
	}
	dates := bson.M{}
	if !filter.DateFrom.IsZero() {
		dates["$gte"] = filter.DateFrom
	}
	if !filter.DateTo.IsZero() {
		dates["$lte"] = filter.DateTo
	}
	if len(dates) > 0 {
		query["data"] = dates
	}

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "data", Value: -1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list lancamentos: %w", err)
	}
	defer cur.Close(ctx)

	var lancamentos []*domain.Lancamento
	if err := cur.All(ctx, &lancamentos); err != nil {
		return nil, fmt.Errorf("decode lancamentos: %w", err)
	}
	return lancamentos, nil
}

func (r *LancamentoRepository) Update(ctx context.Context, id string, upd ports.LancamentoUpdate) (*domain.Lancamento, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Data != nil {
		set["data"] = *upd.Data
	}
	if upd.Descricao != nil {
		set["descricao"] = *upd.Descricao
	}
	if upd.Valor != nil {
		set["valor"] = *upd.Valor
	}
	if upd.Observacoes != nil {
		set["observacoes"] = *upd.Observacoes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l domain.Lancamento
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLancamentoNotFound
		}
		return nil, fmt.Errorf("update lancamento: %w", err)
	}
	return &l, nil
}

func (r *LancamentoRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete lancamento: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLancamentoNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes for ledger listings.
func (r *LancamentoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "data", Value: -1}}},
		{Keys: bson.D{{Key: "conta_id", Value: 1}}},
	})
	return err
}
