package client

import (
	"context"
	"net/http"

	"estudiapro_client/internal/model"
)

func (c *Client) GetAllExams(ctx context.Context, forceRefresh bool) ([]model.Exam, error) {
	return cachedList[model.Exam](ctx, c, CacheExams, ExamsAll, forceRefresh)
}

func (c *Client) StartExam(ctx context.Context, examID string) (model.Exam, error) {
	payload := map[string]string{"examId": examID}
	var exam model.Exam
	if err := c.send(ctx, ExamsStart, http.MethodPost, payload, &exam); err != nil {
		return model.Exam{}, err
	}
	return exam, nil
}

// SubmitExam grades the given answers, keyed by question id.
func (c *Client) SubmitExam(ctx context.Context, examID string, answers map[string]string) (model.ExamResult, error) {
	payload := map[string]any{"examId": examID, "answers": answers}
	var result model.ExamResult
	if err := c.send(ctx, ExamsSubmit, http.MethodPost, payload, &result); err != nil {
		return model.ExamResult{}, err
	}
	return result, nil
}
