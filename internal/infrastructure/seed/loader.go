package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/pkg/validation"
)

// Entry is one user in a seed file.
type Entry struct {
	ID    uint32 `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email" validate:"required"`
	// Active defaults to true when omitted.
	Active *bool `yaml:"active,omitempty"`
}

type file struct {
	Users []Entry `yaml:"users" validate:"dive"`
}

// ToUser builds the user through domain.CreateUser, then applies Active.
func (e Entry) ToUser() (domain.User, error) {
	u, err := domain.CreateUser(e.ID, e.Name, e.Email)
	if err != nil {
		return domain.User{}, err
	}
	if e.Active != nil && !*e.Active {
		u.Deactivate()
	}
	return u, nil
}

// Load reads the seed file at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return entries, nil
}

// Decode parses a YAML document of the form:
//
//	users:
//	  - id: 1
//	    name: John Doe
//	    email: john@example.com
//	    active: true
func Decode(r io.Reader) ([]Entry, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validation.Struct(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return doc.Users, nil
}

// Users converts every entry, stopping at the first one CreateUser rejects.
func Users(entries []Entry) ([]domain.User, error) {
	users := make([]domain.User, 0, len(entries))
	for i, e := range entries {
		u, err := e.ToUser()
		if err != nil {
			return nil, fmt.Errorf("seed entry %d (id %d): %w", i, e.ID, err)
		}
		users = append(users, u)
	}
	return users, nil
}
