package memory

import (
	"fmt"
	"sync"

	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
)

// Config captures the optional limits of an in-memory registry.
type Config struct {
	// Capacity caps the number of entries. Zero or negative means unbounded.
	Capacity int
}

// Compile-time assertion: *UserRegistry satisfies ports.UserRegistry.
var _ ports.UserRegistry = (*UserRegistry)(nil)

// UserRegistry implements ports.UserRegistry with a map keyed by user ID.
// Thread-safe via sync.RWMutex. Entries are stored and returned by value.
type UserRegistry struct {
	mu       sync.RWMutex
	users    map[uint32]domain.User
	capacity int
}

// NewUserRegistry returns an empty registry.
func NewUserRegistry(cfg Config) *UserRegistry {
	return &UserRegistry{
		users:    make(map[uint32]domain.User),
		capacity: cfg.Capacity,
	}
}

// AddUser inserts u when its ID is free.
func (r *UserRegistry) AddUser(u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; exists {
		return fmt.Errorf("user %d: %w", u.ID, domain.ErrDuplicateID)
	}
	if r.capacity > 0 && len(r.users) >= r.capacity {
		return fmt.Errorf("user %d: %w (capacity %d)", u.ID, domain.ErrRegistryFull, r.capacity)
	}
	r.users[u.ID] = u
	return nil
}

func (r *UserRegistry) GetUser(id uint32) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return u, ok
}

// UpdateUser replaces the entry for u.ID. Fields are not merged.
func (r *UserRegistry) UpdateUser(u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; !exists {
		return fmt.Errorf("user %d: %w", u.ID, domain.ErrUserNotFound)
	}
	r.users[u.ID] = u
	return nil
}

func (r *UserRegistry) DeleteUser(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	delete(r.users, id)
	return nil
}

// ListActiveUsers returns every active entry. Order follows map iteration and
// is not stable between calls.
func (r *UserRegistry) ListActiveUsers() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active
}

// GetUserByEmail scans the entries and returns the first exact match.
func (r *UserRegistry) GetUserByEmail(email string) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (r *UserRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
