package client

import (
	"context"
	"net/http"

	"estudiapro_client/internal/model"
)

func (c *Client) GetUserAchievements(ctx context.Context) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := c.get(ctx, AchievementsMine, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (c *Client) GetAllAchievements(ctx context.Context) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := c.get(ctx, AchievementsAll, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (c *Client) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := c.get(ctx, NotificationsMine, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	payload := map[string]string{"notificationId": notificationID}
	return c.send(ctx, NotificationsMarkRead, http.MethodPost, payload, nil)
}
