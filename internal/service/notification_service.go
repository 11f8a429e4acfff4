package service

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

type MarkReadRequest struct {
	NotificationID string `json:"notificationId" binding:"required"`
}

func (s *NotificationService) UserNotifications() []model.Notification {
	return s.NotificationRepo.All()
}

func (s *NotificationService) MarkRead(notificationID string) {
	s.NotificationRepo.MarkRead(notificationID)
}
