package repository

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/util"
)

type SubjectRepository struct {
	store *Store
}

func NewSubjectRepository(store *Store) *SubjectRepository {
	return &SubjectRepository{store: store}
}

func (r *SubjectRepository) Catalog() []model.Subject {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]model.Subject, len(r.store.subjectsCatalog))
	for i, s := range r.store.subjectsCatalog {
		out[i] = s.Clone()
	}
	return out
}

func (r *SubjectRepository) FindCatalog(id string) (model.Subject, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.subjectsCatalog {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return model.Subject{}, util.ErrSubjectNotFound
}

func (r *SubjectRepository) UserSubjects() []model.UserSubject {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]model.UserSubject, len(r.store.userSubjects))
	for i, s := range r.store.userSubjects {
		out[i] = s.Clone()
	}
	return out
}

// AddUserSubject enrolls the user in a catalog subject. Adding a subject the
// user already has is a no-op, which is what makes the operation effectively
// idempotent.
func (r *SubjectRepository) AddUserSubject(subjectID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var catalog *model.Subject
	for i := range r.store.subjectsCatalog {
		if r.store.subjectsCatalog[i].ID == subjectID {
			catalog = &r.store.subjectsCatalog[i]
			break
		}
	}
	if catalog == nil {
		return util.ErrSubjectNotFound
	}

	for _, s := range r.store.userSubjects {
		if s.ID == subjectID {
			return nil
		}
	}

	c := catalog.Clone()
	r.store.userSubjects = append(r.store.userSubjects, model.UserSubject{
		ID:        c.ID,
		Title:     c.Title,
		Professor: c.Professor,
		School:    c.School,
		Progress:  c.Progress,
		Syllabus:  c.Syllabus,
	})
	return nil
}

// SetExamDate is a no-op when the subject is not on the user's panel,
// matching the lenient behavior pages rely on.
func (r *SubjectRepository) SetExamDate(subjectID, examDate string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.userSubjects {
		if r.store.userSubjects[i].ID == subjectID {
			r.store.userSubjects[i].ExamDate = examDate
			return
		}
	}
}

func (r *SubjectRepository) CreateCatalog(subject model.Subject) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.subjectsCatalog = append(r.store.subjectsCatalog, subject.Clone())
}

func (r *SubjectRepository) UpdateCatalog(subject model.Subject) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.subjectsCatalog {
		if r.store.subjectsCatalog[i].ID == subject.ID {
			r.store.subjectsCatalog[i] = subject.Clone()
			return nil
		}
	}
	return util.ErrSubjectNotFound
}

func (r *SubjectRepository) DeleteCatalog(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.subjectsCatalog {
		if r.store.subjectsCatalog[i].ID == id {
			r.store.subjectsCatalog = append(r.store.subjectsCatalog[:i], r.store.subjectsCatalog[i+1:]...)
			return nil
		}
	}
	return util.ErrSubjectNotFound
}
