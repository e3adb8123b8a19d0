package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
	"github.com/99minutos/user-registry/internal/pkg/metrics"
)

var _ ports.UserService = (*UserService)(nil)

// UserService implements the registry use cases on top of a ports.UserRegistry.
type UserService struct {
	registry ports.UserRegistry
	mode     ports.BatchMode
	logger   zerolog.Logger
}

// NewUserService returns a UserService. An empty mode falls back to fail-fast.
func NewUserService(registry ports.UserRegistry, mode ports.BatchMode, logger zerolog.Logger) *UserService {
	if mode == "" {
		mode = ports.BatchFailFast
	}
	return &UserService{registry: registry, mode: mode, logger: logger}
}

// Register builds a user with domain.CreateUser and adds it to the registry.
func (s *UserService) Register(id uint32, name, email string) (domain.User, error) {
	u, err := domain.CreateUser(id, name, email)
	if err == nil {
		err = s.registry.AddUser(u)
	}
	metrics.Observe("register", err)
	if err != nil {
		s.logger.Warn().Err(err).Uint32("user_id", id).Msg("user rejected")
		return domain.User{}, err
	}

	s.refreshGauge()
	s.logger.Info().Uint32("user_id", u.ID).Str("name", u.Name).Msg("user registered")
	return u, nil
}

func (s *UserService) Get(id uint32) (domain.User, error) {
	u, ok := s.registry.GetUser(id)
	if !ok {
		err := fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
		metrics.Observe("get", err)
		return domain.User{}, err
	}
	metrics.Observe("get", nil)
	return u, nil
}

// Update replaces the stored user with u.
func (s *UserService) Update(u domain.User) error {
	err := s.registry.UpdateUser(u)
	metrics.Observe("update", err)
	if err != nil {
		s.logger.Warn().Err(err).Uint32("user_id", u.ID).Msg("update rejected")
		return err
	}

	s.refreshGauge()
	s.logger.Info().Uint32("user_id", u.ID).Msg("user updated")
	return nil
}

func (s *UserService) Delete(id uint32) error {
	err := s.registry.DeleteUser(id)
	metrics.Observe("delete", err)
	if err != nil {
		s.logger.Warn().Err(err).Uint32("user_id", id).Msg("delete rejected")
		return err
	}

	s.refreshGauge()
	s.logger.Info().Uint32("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) Activate(id uint32) error {
	return s.setActive("activate", id, true)
}

func (s *UserService) Deactivate(id uint32) error {
	return s.setActive("deactivate", id, false)
}

// setActive reads the entry, flips its flag and writes it back.
func (s *UserService) setActive(op string, id uint32, active bool) error {
	u, ok := s.registry.GetUser(id)
	if !ok {
		err := fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
		metrics.Observe(op, err)
		s.logger.Warn().Err(err).Uint32("user_id", id).Msg(op + " rejected")
		return err
	}

	if active {
		u.Activate()
	} else {
		u.Deactivate()
	}

	err := s.registry.UpdateUser(u)
	metrics.Observe(op, err)
	if err != nil {
		s.logger.Warn().Err(err).Uint32("user_id", id).Msg(op + " rejected")
		return err
	}

	s.refreshGauge()
	s.logger.Info().Uint32("user_id", id).Bool("is_active", active).Msg("user " + op + "d")
	return nil
}

func (s *UserService) ListActive() []domain.User {
	return s.registry.ListActiveUsers()
}

func (s *UserService) FindByEmail(email string) (domain.User, error) {
	u, ok := s.registry.GetUserByEmail(email)
	if !ok {
		err := fmt.Errorf("email %s: %w", email, domain.ErrUserNotFound)
		metrics.Observe("find_by_email", err)
		return domain.User{}, err
	}
	metrics.Observe("find_by_email", nil)
	return u, nil
}

func (s *UserService) Count() int {
	return s.registry.Len()
}

// Import adds a batch of users using the configured batch mode. On error the
// returned result still reports how many users were committed.
func (s *UserService) Import(users []domain.User) (*ports.ImportResult, error) {
	res := &ports.ImportResult{
		BatchID: uuid.NewString(),
		Mode:    s.mode,
		Total:   len(users),
	}
	log := s.logger.With().Str("batch_id", res.BatchID).Str("mode", string(s.mode)).Logger()

	var err error
	switch s.mode {
	case ports.BatchAtomic:
		res.Added, err = processAtomic(s.registry, users)
	default:
		res.Added, err = processFailFast(s.registry, users)
	}

	mode := string(s.mode)
	metrics.BatchUsersTotal.WithLabelValues(mode, metrics.ResultOK).Add(float64(res.Added))
	metrics.BatchUsersTotal.WithLabelValues(mode, metrics.ResultRejected).Add(float64(res.Total - res.Added))
	s.refreshGauge()

	if err != nil {
		log.Error().Err(err).Int("added", res.Added).Int("total", res.Total).Msg("batch import failed")
		return res, fmt.Errorf("import batch %s: %w", res.BatchID, err)
	}

	log.Info().Int("added", res.Added).Msg("batch imported")
	return res, nil
}

func (s *UserService) refreshGauge() {
	metrics.SetUsers(s.registry.Len(), len(s.registry.ListActiveUsers()))
}
