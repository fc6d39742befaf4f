// Package dao provides data access objects for use in the Marlin server.
package dao

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store holds all the repositories.
type Store interface {
	Users() UserRepository
	Queries() QueryRepository
	Close() error
}

type UserRepository interface {

	// Create creates a new User. All attributes except for auto-generated
	// fields are taken from the provided User.
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)
	Close() error
}

// QueryRepository holds the SPARQL texts that users have saved along with
// the result of parsing them.
type QueryRepository interface {

	// Create creates a new SavedQuery. All attributes except for
	// auto-generated fields are taken from the provided SavedQuery.
	Create(ctx context.Context, q SavedQuery) (SavedQuery, error)
	GetByID(ctx context.Context, id uuid.UUID) (SavedQuery, error)

	// GetAllByUser returns every saved query owned by the given user, oldest
	// first.
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]SavedQuery, error)
	Delete(ctx context.Context, id uuid.UUID) (SavedQuery, error)
	Close() error
}

type Role int

const (
	Guest Role = iota
	Unverified
	Normal

	Admin Role = 100
)

func (r Role) String() string {
	switch r {
	case Guest:
		return "guest"
	case Unverified:
		return "unverified"
	case Normal:
		return "normal"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

func ParseRole(s string) (Role, error) {
	check := strings.ToLower(s)
	switch check {
	case "guest":
		return Guest, nil
	case "unverified":
		return Unverified, nil
	case "normal":
		return Normal, nil
	case "admin":
		return Admin, nil
	default:
		return Guest, fmt.Errorf("must be one of 'guest', 'unverified', 'normal', or 'admin'")
	}
}

type User struct {
	ID             uuid.UUID
	Username       string
	Password       string
	Email          *mail.Address
	Role           Role
	Created        time.Time
	Modified       time.Time
	LastLogoutTime time.Time
	LastLoginTime  time.Time
}

// SavedQuery is SPARQL text stored by a user. Kind is "query" or "update" and
// says how Source was parsed; Diagnostics are the syntax errors found when it
// was.
type SavedQuery struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Kind        string
	Source      string
	Diagnostics []Diagnostic
	Created     time.Time
}

// Diagnostic is a stored syntax error. Start and End are byte offsets into
// the Source of the query it belongs to.
type Diagnostic struct {
	Message string
	Found   string
	Start   int
	End     int
}
