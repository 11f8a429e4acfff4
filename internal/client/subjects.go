package client

import (
	"context"
	"net/http"

	"estudiapro_client/internal/model"
)

// GetAllSubjects returns the course catalog, served from cache while fresh.
func (c *Client) GetAllSubjects(ctx context.Context, forceRefresh bool) ([]model.Subject, error) {
	return cachedList[model.Subject](ctx, c, CacheSubjects, SubjectsAll, forceRefresh)
}

// GetUserSubjects returns the user's enrolled courses. Not cached: the list
// mutates through enrollment and exam-date updates.
func (c *Client) GetUserSubjects(ctx context.Context) ([]model.UserSubject, error) {
	var subjects []model.UserSubject
	if err := c.get(ctx, SubjectsMine, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (c *Client) AddSubject(ctx context.Context, subjectID string) error {
	payload := map[string]string{"subjectId": subjectID}
	return c.send(ctx, SubjectsEnroll, http.MethodPost, payload, nil)
}

func (c *Client) UpdateExamDate(ctx context.Context, subjectID, examDate string) error {
	payload := map[string]string{"subjectId": subjectID, "examDate": examDate}
	return c.send(ctx, SubjectsUpdateExamDate, http.MethodPost, payload, nil)
}
