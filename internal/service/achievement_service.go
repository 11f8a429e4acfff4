package service

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{AchievementRepo: achievementRepo}
}

func (s *AchievementService) All() []model.Achievement {
	return s.AchievementRepo.All()
}

// UserAchievements and All return the same list in demo mode; the real
// backend scopes the former to the session user.
func (s *AchievementService) UserAchievements() []model.Achievement {
	return s.AchievementRepo.All()
}
