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

const collectionClientes = "clientes"

type ClienteRepository struct {
	col *mongo.Collection
}

func NewClienteRepository(db *mongo.Database) *ClienteRepository {
	return &ClienteRepository{col: db.Collection(collectionClientes)}
}

func (r *ClienteRepository) Create(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCPFCNPJTaken
		}
		return nil, fmt.Errorf("insert cliente: %w", err)
	}
	return c, nil
}

func (r *ClienteRepository) FindByID(ctx context.Context, id string) (*domain.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Cliente
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("find cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepository) FindByCPFCNPJ(ctx context.Context, cpfCNPJ string) (*domain.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Cliente
	if err := r.col.FindOne(ctx, bson.M{"cpf_cnpj": cpfCNPJ}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("find cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Cliente, error) {
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
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer cur.Close(ctx)

	var clientes []*domain.Cliente
	if err := cur.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("decode clientes: %w", err)
	}
	return clientes, nil
}

func (r *ClienteRepository) Update(ctx context.Context, id string, upd ports.ClienteUpdate) (*domain.Cliente, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Nome != nil {
		set["nome"] = *upd.Nome
	}
	if upd.Telefone != nil {
		set["telefone"] = *upd.Telefone
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Endereco != nil {
		set["endereco"] = *upd.Endereco
	}
	if upd.Cidade != nil {
		set["cidade"] = *upd.Cidade
	}
	if upd.Estado != nil {
		set["estado"] = *upd.Estado
	}
	if upd.CEP != nil {
		set["cep"] = *upd.CEP
	}
	if upd.Ativo != nil {
		set["ativo"] = *upd.Ativo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c domain.Cliente
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, fmt.Errorf("update cliente: %w", err)
	}
	return &c, nil
}

// EnsureIndexes creates the unique cpf_cnpj index.
func (r *ClienteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cpf_cnpj", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
