package client

import (
	"context"
	"net/http"

	"estudiapro_client/internal/model"
)

func (c *Client) GetForumTopics(ctx context.Context, forceRefresh bool) ([]model.ForumTopic, error) {
	return cachedList[model.ForumTopic](ctx, c, CacheForums, ForumsAll, forceRefresh)
}

// CreateForumTopic posts a new topic and invalidates the forum cache so the
// topic shows up on the next listing.
func (c *Client) CreateForumTopic(ctx context.Context, title, subjectID string) (model.ForumTopic, error) {
	payload := map[string]string{"title": title}
	if subjectID != "" {
		payload["subjectId"] = subjectID
	}

	var resp struct {
		Success bool             `json:"success"`
		Topic   model.ForumTopic `json:"topic"`
	}
	if err := c.send(ctx, ForumsCreateTopic, http.MethodPost, payload, &resp); err != nil {
		return model.ForumTopic{}, err
	}
	c.cache.Invalidate(CacheForums)
	return resp.Topic, nil
}

func (c *Client) GetForumTopic(ctx context.Context, topicID string) (model.ForumTopicDetail, error) {
	var detail model.ForumTopicDetail
	if err := c.get(ctx, JoinPath(ForumsAll, topicID), &detail); err != nil {
		return model.ForumTopicDetail{}, err
	}
	return detail, nil
}
