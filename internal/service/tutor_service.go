package service

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/util"

	"github.com/google/uuid"
)

type TutorService struct {
	TutorRepo *repository.TutorRepository
}

func NewTutorService(tutorRepo *repository.TutorRepository) *TutorService {
	return &TutorService{TutorRepo: tutorRepo}
}

type ScheduleRequest struct {
	TutorID   string `json:"tutorId" binding:"required"`
	SubjectID string `json:"subjectId"`
	Duration  int    `json:"duration"`
	Topic     string `json:"topic"`
}

func (s *TutorService) All() []model.Tutor {
	return s.TutorRepo.All()
}

func (s *TutorService) Schedule(req ScheduleRequest) (model.TutoringSession, error) {
	if !s.TutorRepo.Exists(req.TutorID) {
		return model.TutoringSession{}, util.ErrTutorNotFound
	}

	return model.TutoringSession{
		ID:        "session-" + uuid.NewString(),
		TutorID:   req.TutorID,
		SubjectID: req.SubjectID,
		Duration:  req.Duration,
		Topic:     req.Topic,
	}, nil
}
