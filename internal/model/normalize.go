package model

import "strings"

// RawProfile is the union of the two profile shapes seen on the wire: the
// legacy backend sends first_name/last_name/rol/nivel/puntos_gamificacion,
// the demo simulator and newer backend send name/role/stats. NormalizeUser
// maps either into the canonical User.
type RawProfile struct {
	ID                 string     `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Name               string     `json:"name"`
	Rol                string     `json:"rol"`
	Role               string     `json:"role"`
	FotoPerfilURL      string     `json:"foto_perfil_url"`
	Photo              string     `json:"photo"`
	Nivel              int        `json:"nivel"`
	PuntosGamificacion int        `json:"puntos_gamificacion"`
	Streak             int        `json:"streak"`
	Racha              int        `json:"racha"`
	Stats              *UserStats `json:"stats"`
}

func NormalizeUser(raw RawProfile) User {
	displayName := raw.Name
	if displayName == "" {
		displayName = strings.TrimSpace(raw.FirstName + " " + raw.LastName)
	}
	if displayName == "" {
		displayName = raw.Username
	}
	if displayName == "" {
		displayName = raw.Email
	}

	role := raw.Rol
	if role == "" {
		role = raw.Role
	}
	if role == "" {
		role = string(Student)
	}
	role = strings.ToLower(role)
	// The legacy backend speaks Spanish role names.
	switch role {
	case "estudiante":
		role = string(Student)
	case "creador":
		role = string(Creator)
	case "administrador":
		role = string(Admin)
	}

	username := raw.Username
	if username == "" {
		username = raw.Email
	}

	photo := raw.FotoPerfilURL
	if photo == "" {
		photo = raw.Photo
	}

	stats := UserStats{Level: 1}
	if raw.Stats != nil {
		stats = *raw.Stats
	}
	if raw.Nivel != 0 {
		stats.Level = raw.Nivel
	}
	if raw.PuntosGamificacion != 0 {
		stats.Points = raw.PuntosGamificacion
	}
	if raw.Streak != 0 {
		stats.Streak = raw.Streak
	} else if raw.Racha != 0 {
		stats.Streak = raw.Racha
	}

	return User{
		ID:        raw.ID,
		Username:  username,
		Email:     raw.Email,
		Name:      displayName,
		Role:      UserRole(role),
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Photo:     photo,
		Stats:     stats,
	}
}
