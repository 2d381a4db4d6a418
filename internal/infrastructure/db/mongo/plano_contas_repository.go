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

const collectionPlanoContas = "plano_contas"

type PlanoContasRepository struct {
	col *mongo.Collection
}

func NewPlanoContasRepository(db *mongo.Database) *PlanoContasRepository {
	return &PlanoContasRepository{col: db.Collection(collectionPlanoContas)}
}

func (r *PlanoContasRepository) Create(ctx context.Context, c *domain.PlanoConta) (*domain.PlanoConta, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCodigoTaken
		}
		return nil, fmt.Errorf("insert conta: %w", err)
	}
	return c, nil
}

func (r *PlanoContasRepository) FindByID(ctx context.Context, id string) (*domain.PlanoConta, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.PlanoConta
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlanoContaNotFound
		}
		return nil, fmt.Errorf("find conta: %w", err)
	}
	return &c, nil
}

func (r *PlanoContasRepository) FindByCodigo(ctx context.Context, codigo string) (*domain.PlanoConta, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.PlanoConta
	if err := r.col.FindOne(ctx, bson.M{"codigo": codigo}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlanoContaNotFound
		}
		return nil, fmt.Errorf("find conta: %w", err)
	}
	return &c, nil
}

func (r *PlanoContasRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.PlanoConta, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Ativo != nil {
		query["ativo"] = *filter.Ativo
	}

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "codigo", Value: 1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list contas: %w", err)
	}
	defer cur.Close(ctx)

	var contas []*domain.PlanoConta
	if err := cur.All(ctx, &contas); err != nil {
		return nil, fmt.Errorf("decode contas: %w", err)
	}
	return contas, nil
}

func (r *PlanoContasRepository) Update(ctx context.Context, id string, upd ports.PlanoContaUpdate) (*domain.PlanoConta, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Descricao != nil {
		set["descricao"] = *upd.Descricao
	}
	if upd.AceitaLancamento != nil {
		set["aceita_lancamento"] = *upd.AceitaLancamento
	}
	if upd.Ativo != nil {
		set["ativo"] = *upd.Ativo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c domain.PlanoConta
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlanoContaNotFound
		}
		return nil, fmt.Errorf("update conta: %w", err)
	}
	return &c, nil
}

// EnsureIndexes creates the unique codigo index.
func (r *PlanoContasRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "codigo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
