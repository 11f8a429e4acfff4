package client

import (
	"context"
	"net/http"

	"estudiapro_client/internal/model"
	"estudiapro_client/internal/service"
)

func (c *Client) GetAllResources(ctx context.Context, forceRefresh bool) ([]model.Resource, error) {
	return cachedList[model.Resource](ctx, c, CacheResources, ResourcesAll, forceRefresh)
}

func (c *Client) GetPurchasedResources(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource
	if err := c.get(ctx, ResourcesPurchased, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// PurchaseResource records the purchase and invalidates the resource cache
// so ownership flags refresh on the next list.
func (c *Client) PurchaseResource(ctx context.Context, resourceID string) error {
	payload := map[string]string{"resourceId": resourceID}
	if err := c.send(ctx, ResourcesPurchase, http.MethodPost, payload, nil); err != nil {
		return err
	}
	c.cache.Invalidate(CacheResources)
	return nil
}

func (c *Client) DownloadResource(ctx context.Context, resourceID string) (service.DownloadResponse, error) {
	payload := map[string]string{"resourceId": resourceID}
	var resp service.DownloadResponse
	if err := c.send(ctx, ResourcesDownload, http.MethodPost, payload, &resp); err != nil {
		return service.DownloadResponse{}, err
	}
	return resp, nil
}

func (c *Client) GetAllFormularies(ctx context.Context) ([]model.Formulary, error) {
	var formularies []model.Formulary
	if err := c.get(ctx, FormulariesAll, &formularies); err != nil {
		return nil, err
	}
	return formularies, nil
}
