package repository

import (
	"strings"

	"estudiapro_client/internal/model"
	"estudiapro_client/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) DemoProfile() model.RawProfile {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.demoUser
}

// VerifyCredentials accepts the demo email or username, case-insensitively,
// against the seeded bcrypt hash.
func (r *UserRepository) VerifyCredentials(identifier, password string) (model.RawProfile, error) {
	r.store.mu.Lock()
	user := r.store.demoUser
	hash := r.store.demoPasswordHash
	r.store.mu.Unlock()

	id := strings.ToLower(identifier)
	if id != strings.ToLower(user.Email) && id != strings.ToLower(user.Username) {
		return model.RawProfile{}, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return model.RawProfile{}, util.ErrInvalidCredentials
	}

	return user, nil
}

// UpdateProfile merges the non-empty fields into the demo profile and
// returns the updated raw shape.
func (r *UserRepository) UpdateProfile(patch model.RawProfile) model.RawProfile {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if patch.FirstName != "" {
		r.store.demoUser.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		r.store.demoUser.LastName = patch.LastName
	}
	if patch.FirstName != "" || patch.LastName != "" {
		// Keep the display name in sync with the split fields.
		r.store.demoUser.Name = strings.TrimSpace(r.store.demoUser.FirstName + " " + r.store.demoUser.LastName)
	}
	if patch.Name != "" {
		r.store.demoUser.Name = patch.Name
	}
	if patch.FotoPerfilURL != "" {
		r.store.demoUser.FotoPerfilURL = patch.FotoPerfilURL
	}
	return r.store.demoUser
}

func (r *UserRepository) All() []model.RawProfile {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return []model.RawProfile{r.store.demoUser}
}

func (r *UserRepository) Exists(id string) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.demoUser.ID == id
}
