package repository

import "estudiapro_client/internal/model"

type ForumRepository struct {
	store *Store
}

func NewForumRepository(store *Store) *ForumRepository {
	return &ForumRepository{store: store}
}

func (r *ForumRepository) All() []model.ForumTopic {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]model.ForumTopic(nil), r.store.forums...)
}

// Prepend puts a freshly created topic at the top of the list, the way the
// forum page displays newest first.
func (r *ForumRepository) Prepend(topic model.ForumTopic) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.forums = append([]model.ForumTopic{topic}, r.store.forums...)
}

func (r *ForumRepository) FindByID(id string) (model.ForumTopic, bool) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.forums {
		if t.ID == id {
			return t, true
		}
	}
	return model.ForumTopic{}, false
}
