package service

import (
	"time"

	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"

	"github.com/google/uuid"
)

type ForumService struct {
	ForumRepo   *repository.ForumRepository
	SubjectRepo *repository.SubjectRepository
}

func NewForumService(forumRepo *repository.ForumRepository, subjectRepo *repository.SubjectRepository) *ForumService {
	return &ForumService{
		ForumRepo:   forumRepo,
		SubjectRepo: subjectRepo,
	}
}

type CreateTopicRequest struct {
	Title     string `json:"title" binding:"required"`
	SubjectID string `json:"subjectId"`
}

type CreateTopicResponse struct {
	Success bool             `json:"success"`
	Topic   model.ForumTopic `json:"topic"`
}

func (s *ForumService) All() []model.ForumTopic {
	return s.ForumRepo.All()
}

func (s *ForumService) CreateTopic(req CreateTopicRequest) model.ForumTopic {
	subjectName := "General"
	if req.SubjectID != "" {
		if subject, err := s.SubjectRepo.FindCatalog(req.SubjectID); err == nil {
			subjectName = subject.Title
		}
	}

	topic := model.ForumTopic{
		ID:           "forum-" + uuid.NewString(),
		Title:        req.Title,
		SubjectName:  subjectName,
		PostCount:    0,
		LastActivity: time.Now().UTC().Format(time.RFC3339),
	}
	s.ForumRepo.Prepend(topic)
	return topic
}

// Topic returns the detail view with a starter post. Unknown ids still get a
// placeholder title so deep links render something instead of erroring.
func (s *ForumService) Topic(id string) model.ForumTopicDetail {
	title := "Tema"
	if topic, ok := s.ForumRepo.FindByID(id); ok {
		title = topic.Title
	}

	return model.ForumTopicDetail{
		ID:    id,
		Title: title,
		Posts: []model.ForumPost{
			{
				ID:        "post-1",
				Author:    "Monitor IA",
				Content:   "Comparte tus pasos y te ayudamos a detectar dónde hubo un error.",
				CreatedAt: time.Now().UTC().Format(time.RFC3339),
			},
		},
	}
}
