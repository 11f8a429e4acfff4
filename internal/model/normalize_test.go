package model

import "testing"

func TestNormalizeUserLegacyAndDemoShapesConverge(t *testing.T) {
	legacy := RawProfile{
		ID:                 "demo-1",
		Username:           "daniela.demo",
		Email:              "demo@estudiapro.com",
		FirstName:          "Daniela",
		LastName:           "Yáñez",
		Rol:                "ESTUDIANTE",
		Nivel:              3,
		PuntosGamificacion: 820,
		Racha:              6,
	}
	demo := RawProfile{
		ID:       "demo-1",
		Username: "daniela.demo",
		Email:    "demo@estudiapro.com",
		Name:     "Daniela Yáñez",
		Role:     "student",
		Stats:    &UserStats{Level: 3, Points: 820, Streak: 6},
	}

	a := NormalizeUser(legacy)
	b := NormalizeUser(demo)

	if a.Name != b.Name || a.Name != "Daniela Yáñez" {
		t.Errorf("names diverge: %q vs %q", a.Name, b.Name)
	}
	if a.Role != b.Role || a.Role != Student {
		t.Errorf("roles diverge: %q vs %q", a.Role, b.Role)
	}
	if a.Stats != b.Stats {
		t.Errorf("stats diverge: %+v vs %+v", a.Stats, b.Stats)
	}
}

func TestNormalizeUserNameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProfile
		want string
	}{
		{"explicit name wins", RawProfile{Name: "Ana García", FirstName: "Otra"}, "Ana García"},
		{"first+last", RawProfile{FirstName: "Ana", LastName: "García"}, "Ana García"},
		{"first only", RawProfile{FirstName: "Ana"}, "Ana"},
		{"username", RawProfile{Username: "ana.g"}, "ana.g"},
		{"email last resort", RawProfile{Email: "ana@estudiapro.com"}, "ana@estudiapro.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeUser(tt.raw).Name; got != tt.want {
				t.Errorf("Name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeUserRoleMapping(t *testing.T) {
	tests := []struct {
		raw  RawProfile
		want UserRole
	}{
		{RawProfile{Rol: "ESTUDIANTE"}, Student},
		{RawProfile{Rol: "CREADOR"}, Creator},
		{RawProfile{Rol: "ADMINISTRADOR"}, Admin},
		{RawProfile{Role: "Admin"}, Admin},
		{RawProfile{Role: "student"}, Student},
		{RawProfile{}, Student},
	}

	for _, tt := range tests {
		if got := NormalizeUser(tt.raw).Role; got != tt.want {
			t.Errorf("NormalizeUser(%+v).Role = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeUserStatsDefaults(t *testing.T) {
	user := NormalizeUser(RawProfile{Username: "nuevo"})
	if user.Stats.Level != 1 {
		t.Errorf("default level = %d, want 1", user.Stats.Level)
	}

	// Flat legacy fields override the stats block when both appear.
	user = NormalizeUser(RawProfile{Nivel: 5, Stats: &UserStats{Level: 2}})
	if user.Stats.Level != 5 {
		t.Errorf("level = %d, want flat field to win", user.Stats.Level)
	}
}
