package model

type UserRole string

const (
	Student UserRole = "student"
	Creator UserRole = "creator"
	Admin   UserRole = "admin"
)

// User is the one canonical profile shape the rest of the app sees,
// regardless of which backend produced it.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Photo     string    `json:"photo,omitempty"`
	Stats     UserStats `json:"stats"`
}

type UserStats struct {
	Level  int `json:"level"`
	Points int `json:"points"`
	Streak int `json:"streak"`
}

// Session is what survives a page reload: an opaque bearer token and the
// user it belongs to.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
