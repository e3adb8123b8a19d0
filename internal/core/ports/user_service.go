package ports

import (
	"github.com/99minutos/user-registry/internal/core/domain"
)

// BatchMode selects how an import behaves when one of its users is rejected.
type BatchMode string

const (
	// BatchFailFast stops at the first error and keeps users added before it.
	BatchFailFast BatchMode = "failfast"
	// BatchAtomic adds either every user of the batch or none of them.
	BatchAtomic BatchMode = "atomic"
)

// ImportResult summarises a batch import.
type ImportResult struct {
	BatchID string
	Mode    BatchMode
	Added   int
	Total   int
}

// UserService defines use-case operations on the registry.
type UserService interface {
	Register(id uint32, name, email string) (domain.User, error)
	Get(id uint32) (domain.User, error)
	Update(u domain.User) error
	Delete(id uint32) error
	Activate(id uint32) error
	Deactivate(id uint32) error
	ListActive() []domain.User
	FindByEmail(email string) (domain.User, error)
	Import(users []domain.User) (*ImportResult, error)
	Count() int
}
