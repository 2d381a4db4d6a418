package client

import (
	"context"
	"net/url"
)

// Resource is the generic cached query/mutation facade for one entity
// collection. List reads through the shared cache; Create, Update and Delete
// issue the call and invalidate the cache key only after the backend has
// acknowledged — there is no optimistic local mutation.
type Resource[T any] struct {
	key    string
	path   string
	client *Client
	cache  *queryCache
}

func newResource[T any](key, path string, client *Client, cache *queryCache) *Resource[T] {
	return &Resource[T]{key: key, path: path, client: client, cache: cache}
}

// List returns the collection, served from cache while fresh. Transient
// failures are retried; a definitive 4xx is not.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	data, err := r.cache.get(ctx, r.key, func(ctx context.Context) (any, error) {
		var items []T
		if err := r.client.get(ctx, r.path, nil, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	items, _ := data.([]T)
	return items, nil
}

// ListWith returns the collection filtered server-side. Filtered reads
// bypass the cache; only the unfiltered collection is cached.
func (r *Resource[T]) ListWith(ctx context.Context, query url.Values) ([]T, error) {
	var items []T
	if err := r.client.get(ctx, r.path, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item by id, always from the server.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.client.get(ctx, r.path+"/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts a new item and invalidates the collection on success.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item T
	if err := r.client.post(ctx, r.path, payload, &item); err != nil {
		return nil, err
	}
	r.cache.invalidate(r.key)
	return &item, nil
}

// Update patches an item and invalidates the collection on success.
func (r *Resource[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	var item T
	if err := r.client.patch(ctx, r.path+"/"+id, payload, &item); err != nil {
		return nil, err
	}
	r.cache.invalidate(r.key)
	return &item, nil
}

// Delete removes (deactivates) an item and invalidates the collection on
// success.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := r.client.delete(ctx, r.path+"/"+id); err != nil {
		return err
	}
	r.cache.invalidate(r.key)
	return nil
}

// Invalidate forces the next List to refetch.
func (r *Resource[T]) Invalidate() {
	r.cache.invalidate(r.key)
}

// API bundles the typed resources over one client and one shared cache.
type API struct {
	Auth *AuthController

	Users         *Resource[User]
	Clientes      *Resource[Cliente]
	Equipamentos  *Resource[Equipamento]
	Motoristas    *Resource[Motorista]
	PlanoContas   *Resource[PlanoConta]
	Lancamentos   *Resource[Lancamento]
	ContasPagar   *Resource[ContaPagar]
	ContasReceber *Resource[ContaReceber]
}

// NewAPI wires the SDK: network client, session store, auth controller and
// the per-entity resources sharing one cache.
func NewAPI(client *Client, store TokenStore) *API {
	cache := newQueryCache()
	return &API{
		Auth:          NewAuthController(client, store),
		Users:         newResource[User]("users", "/api/auth/users", client, cache),
		Clientes:      newResource[Cliente]("clientes", "/api/clientes", client, cache),
		Equipamentos:  newResource[Equipamento]("equipamentos", "/api/equipamentos", client, cache),
		Motoristas:    newResource[Motorista]("motoristas", "/api/motoristas", client, cache),
		PlanoContas:   newResource[PlanoConta]("plano-contas", "/api/plano-contas", client, cache),
		Lancamentos:   newResource[Lancamento]("lancamentos", "/api/lancamentos", client, cache),
		ContasPagar:   newResource[ContaPagar]("contas-pagar", "/api/contas-pagar", client, cache),
		ContasReceber: newResource[ContaReceber]("contas-receber", "/api/contas-receber", client, cache),
	}
}

// Register creates a back-office user through the admin-only endpoint and
// invalidates the users collection.
func (api *API) Register(ctx context.Context, payload any) (*User, error) {
	var user User
	if err := api.Users.client.post(ctx, "/api/auth/register", payload, &user); err != nil {
		return nil, err
	}
	api.Users.Invalidate()
	return &user, nil
}
