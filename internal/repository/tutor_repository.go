package repository

import "estudiapro_client/internal/model"

type TutorRepository struct {
	store *Store
}

func NewTutorRepository(store *Store) *TutorRepository {
	return &TutorRepository{store: store}
}

func (r *TutorRepository) All() []model.Tutor {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]model.Tutor(nil), r.store.tutors...)
}

func (r *TutorRepository) Exists(id string) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.tutors {
		if t.ID == id {
			return true
		}
	}
	return false
}
