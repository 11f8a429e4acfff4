package repository

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/util"
)

type ResourceRepository struct {
	store *Store
}

func NewResourceRepository(store *Store) *ResourceRepository {
	return &ResourceRepository{store: store}
}

func (r *ResourceRepository) All() []model.Resource {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]model.Resource(nil), r.store.resources...)
}

func (r *ResourceRepository) FindByID(id string) (model.Resource, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, res := range r.store.resources {
		if res.ID == id {
			return res, nil
		}
	}
	return model.Resource{}, util.ErrResourceNotFound
}

func (r *ResourceRepository) Purchased() []model.Resource {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []model.Resource
	for _, res := range r.store.resources {
		if r.store.purchasedResourceIDs[res.ID] {
			out = append(out, res)
		}
	}
	return out
}

// Purchase records ownership. Buying something twice leaves the purchased
// set unchanged.
func (r *ResourceRepository) Purchase(id string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.purchasedResourceIDs[id] = true
}

func (r *ResourceRepository) IsPurchased(id string) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.purchasedResourceIDs[id]
}

func (r *ResourceRepository) Formularies() []model.Formulary {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]model.Formulary(nil), r.store.formularies...)
}
