package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User represents a registered account
type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Mobile       string    `json:"mobile"`
	Gender       string    `json:"gender"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SessionUser is the identity snapshot stored in the session at login time.
// It is a denormalized copy of the User and is not refreshed from the
// database until the next login.
type SessionUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Gender    string `json:"gender"`
	Role      string `json:"role"`
}

// NewSessionUser builds the snapshot from a stored account
func NewSessionUser(u *User) *SessionUser {
	return &SessionUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Gender:    u.Gender,
		Role:      u.Role,
	}
}

// RegisterRequest is the registration payload. Fields carry no gin binding
// rules: entity validation collects every violation in one pass instead of
// stopping at the first.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Mobile    string `json:"mobile"`
	Gender    string `json:"gender"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
