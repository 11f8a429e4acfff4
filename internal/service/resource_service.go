package service

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/util"
	"fmt"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	Storage      *StorageService
}

func NewResourceService(resourceRepo *repository.ResourceRepository, storage *StorageService) *ResourceService {
	return &ResourceService{
		ResourceRepo: resourceRepo,
		Storage:      storage,
	}
}

type PurchaseRequest struct {
	ResourceID string `json:"resourceId" binding:"required"`
}

type DownloadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

func (s *ResourceService) All() []model.Resource {
	return s.ResourceRepo.All()
}

func (s *ResourceService) Purchased() []model.Resource {
	return s.ResourceRepo.Purchased()
}

// Purchase is effectively idempotent: buying an owned resource leaves the
// purchased set unchanged. That falls out of the membership check, it is not
// a promise of the API.
func (s *ResourceService) Purchase(resourceID string) error {
	if _, err := s.ResourceRepo.FindByID(resourceID); err != nil {
		return err
	}
	s.ResourceRepo.Purchase(resourceID)
	return nil
}

func (s *ResourceService) Download(resourceID string) (DownloadResponse, error) {
	res, err := s.ResourceRepo.FindByID(resourceID)
	if err != nil {
		return DownloadResponse{}, err
	}

	if !res.Free && !s.ResourceRepo.IsPurchased(resourceID) {
		return DownloadResponse{}, util.ErrResourceNotOwned
	}

	return DownloadResponse{
		Success: true,
		URL:     s.Storage.GetURL(fmt.Sprintf("%s.pdf", res.ID)),
	}, nil
}

func (s *ResourceService) Formularies() []model.Formulary {
	return s.ResourceRepo.Formularies()
}
