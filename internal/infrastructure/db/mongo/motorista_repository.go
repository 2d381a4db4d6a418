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

const collectionMotoristas = "motoristas"

type MotoristaRepository struct {
	col *mongo.Collection
}

func NewMotoristaRepository(db *mongo.Database) *MotoristaRepository {
	return &MotoristaRepository{col: db.Collection(collectionMotoristas)}
}

func (r *MotoristaRepository) Create(ctx context.Context, m *domain.Motorista) (*domain.Motorista, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCPFTaken
		}
		return nil, fmt.Errorf("insert motorista: %w", err)
	}
	return m, nil
}

func (r *MotoristaRepository) FindByID(ctx context.Context, id string) (*domain.Motorista, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Motorista
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMotoristaNotFound
		}
		return nil, fmt.Errorf("find motorista: %w", err)
	}
	return &m, nil
}

func (r *MotoristaRepository) FindByCPF(ctx context.Context, cpf string) (*domain.Motorista, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Motorista
	if err := r.col.FindOne(ctx, bson.M{"cpf": cpf}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMotoristaNotFound
		}
		return nil, fmt.Errorf("find motorista: %w", err)
	}
	return &m, nil
}

func (r *MotoristaRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Motorista, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Ativo != nil {
		query["ativo"] = *filter.Ativo
	}

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "nome", Value: 1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list motoristas: %w", err)
	}
	defer cur.Close(ctx)

	var motoristas []*domain.Motorista
	if err := cur.All(ctx, &motoristas); err != nil {
		return nil, fmt.Errorf("decode motoristas: %w", err)
	}
	return motoristas, nil
}

func (r *MotoristaRepository) Update(ctx context.Context, id string, upd ports.MotoristaUpdate) (*domain.Motorista, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Nome != nil {
		set["nome"] = *upd.Nome
	}
	if upd.CNH != nil {
		set["cnh"] = *upd.CNH
	}
	if upd.CategoriaCNH != nil {
		set["categoria_cnh"] = *upd.CategoriaCNH
	}
	if upd.ValidadeCNH != nil {
		set["validade_cnh"] = *upd.ValidadeCNH
	}
	if upd.Telefone != nil {
		set["telefone"] = *upd.Telefone
	}
	if upd.Endereco != nil {
		set["endereco"] = *upd.Endereco
	}
	if upd.DataAdmissao != nil {
		set["data_admissao"] = *upd.DataAdmissao
	}
	if upd.Ativo != nil {
		set["ativo"] = *upd.Ativo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m domain.Motorista
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMotoristaNotFound
		}
		return nil, fmt.Errorf("update motorista: %w", err)
	}
	return &m, nil
}

// EnsureIndexes creates the unique cpf index.
func (r *MotoristaRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cpf", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
