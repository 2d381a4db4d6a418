package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes for every collection. Called once at
// startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexed := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewUserRepository(db),
		NewClienteRepository(db),
		NewEquipamentoRepository(db),
		NewMotoristaRepository(db),
		NewPlanoContasRepository(db),
		NewLancamentoRepository(db),
		NewContaPagarRepository(db),
		NewContaReceberRepository(db),
	}

	for _, repo := range indexed {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}
	return nil
}
