package repository

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/util"
)

type ExamRepository struct {
	store *Store
}

func NewExamRepository(store *Store) *ExamRepository {
	return &ExamRepository{store: store}
}

func (r *ExamRepository) All() []model.Exam {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]model.Exam, len(r.store.exams))
	for i, e := range r.store.exams {
		out[i] = e.Clone()
	}
	return out
}

func (r *ExamRepository) FindByID(id string) (model.Exam, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.exams {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return model.Exam{}, util.ErrExamNotFound
}
