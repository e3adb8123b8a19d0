package ports

import (
	"github.com/99minutos/user-registry/internal/core/domain"
)

// UserRegistry owns a keyed collection of users. Keys are unique.
// Returned users are copies; changes to them are not seen by the registry
// until passed back through UpdateUser.
type UserRegistry interface {
	// AddUser inserts u. Fails with domain.ErrDuplicateID when u.ID is taken.
	AddUser(u domain.User) error
	GetUser(id uint32) (domain.User, bool)
	// UpdateUser replaces the whole entry for u.ID. Fails with
	// domain.ErrUserNotFound when the id is absent.
	UpdateUser(u domain.User) error
	DeleteUser(id uint32) error
	// ListActiveUsers returns active entries in unspecified order.
	ListActiveUsers() []domain.User
	// GetUserByEmail returns the first entry, in iteration order, whose email
	// equals email. Emails are not unique.
	GetUserByEmail(email string) (domain.User, bool)
	Len() int
}
