package service

import (
	"fmt"

	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
)

// ProcessUsers adds users to registry in order and stops at the first error.
// Users added before the failing one stay in the registry.
func ProcessUsers(registry ports.UserRegistry, users []domain.User) error {
	_, err := processFailFast(registry, users)
	return err
}

// ProcessUsersAtomic adds either all users or none of them. Duplicate ids,
// inside the batch or against the registry, are detected before anything is
// written; any later add failure rolls back the users already added.
func ProcessUsersAtomic(registry ports.UserRegistry, users []domain.User) error {
	_, err := processAtomic(registry, users)
	return err
}

func processFailFast(registry ports.UserRegistry, users []domain.User) (int, error) {
	for i, u := range users {
		if err := registry.AddUser(u); err != nil {
			return i, err
		}
	}
	return len(users), nil
}

func processAtomic(registry ports.UserRegistry, users []domain.User) (int, error) {
	seen := make(map[uint32]struct{}, len(users))
	for _, u := range users {
		if _, dup := seen[u.ID]; dup {
			return 0, fmt.Errorf("user %d repeated in batch: %w", u.ID, domain.ErrDuplicateID)
		}
		seen[u.ID] = struct{}{}
		if _, exists := registry.GetUser(u.ID); exists {
			return 0, fmt.Errorf("user %d: %w", u.ID, domain.ErrDuplicateID)
		}
	}

	for i, u := range users {
		if err := registry.AddUser(u); err != nil {
			if rbErr := rollback(registry, users[:i]); rbErr != nil {
				return 0, fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
			return 0, err
		}
	}
	return len(users), nil
}

func rollback(registry ports.UserRegistry, added []domain.User) error {
	for j := len(added) - 1; j >= 0; j-- {
		if err := registry.DeleteUser(added[j].ID); err != nil {
			return fmt.Errorf("remove user %d: %w", added[j].ID, err)
		}
	}
	return nil
}
