package service

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type ManageUserRequest struct {
	Action string `json:"action" binding:"required"`
}

// Profile returns the demo profile in its raw wire shape; normalization is
// the caller's job so both backends stay indistinguishable downstream.
func (s *UserService) Profile() model.RawProfile {
	return s.UserRepo.DemoProfile()
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
	Photo     string `json:"foto_perfil_url"`
}

func (s *UserService) UpdateProfile(req UpdateProfileRequest) model.RawProfile {
	return s.UserRepo.UpdateProfile(model.RawProfile{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Name:          req.Name,
		FotoPerfilURL: req.Photo,
	})
}

func (s *UserService) AllUsers() []model.User {
	raws := s.UserRepo.All()
	out := make([]model.User, len(raws))
	for i, raw := range raws {
		out[i] = model.NormalizeUser(raw)
	}
	return out
}

// ManageUser acknowledges admin actions against the single demo account.
// The demo store has nothing durable to flip, so existence is all we check.
func (s *UserService) ManageUser(id, action string) error {
	if !s.UserRepo.Exists(id) {
		return util.ErrUserNotFound
	}
	return nil
}
