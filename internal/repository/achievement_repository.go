package repository

import "estudiapro_client/internal/model"

type AchievementRepository struct {
	store *Store
}

func NewAchievementRepository(store *Store) *AchievementRepository {
	return &AchievementRepository{store: store}
}

func (r *AchievementRepository) All() []model.Achievement {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]model.Achievement(nil), r.store.achievements...)
}
