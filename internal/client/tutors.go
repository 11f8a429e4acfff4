package client

import (
	"context"
	"net/http"

	"estudiapro_client/internal/model"
)

func (c *Client) GetAllTutors(ctx context.Context, forceRefresh bool) ([]model.Tutor, error) {
	return cachedList[model.Tutor](ctx, c, CacheTutors, TutorsAll, forceRefresh)
}

type ScheduleTutoringInput struct {
	TutorID   string `json:"tutorId"`
	SubjectID string `json:"subjectId,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Topic     string `json:"topic,omitempty"`
}

func (c *Client) ScheduleTutoring(ctx context.Context, input ScheduleTutoringInput) (model.TutoringSession, error) {
	var resp struct {
		Success bool                  `json:"success"`
		Session model.TutoringSession `json:"session"`
	}
	if err := c.send(ctx, TutorsSchedule, http.MethodPost, input, &resp); err != nil {
		return model.TutoringSession{}, err
	}
	return resp.Session, nil
}
