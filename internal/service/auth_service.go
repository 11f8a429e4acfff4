package service

import (
	"estudiapro_client/internal/config"
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/util"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// LoginRequest accepts either identifier field; the demo login form sends
// email, the legacy one sends username.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Authenticate checks the demo credentials and returns the normalized
// profile on success.
func (s *AuthService) Authenticate(identifier, password string) (model.User, error) {
	raw, err := s.UserRepo.VerifyCredentials(identifier, password)
	if err != nil {
		return model.User{}, err
	}
	return model.NormalizeUser(raw), nil
}

// IssueToken signs a JWT session token for the HTTP server path. The
// in-process simulator uses the fixed sentinel token instead.
func (s *AuthService) IssueToken(user model.User) (string, error) {
	return util.GenerateJWT(&user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
