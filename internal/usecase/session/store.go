package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jaipal-12/villageconnect/internal/adapter/kv"
	"github.com/jaipal-12/villageconnect/internal/domain/user"
)

// Durable record keys. The session store is the only reader and writer of
// both.
const (
	currentUserKey = "currentSessionUser"
	registryKey    = "registeredUsers"
)

// Store manages the single current session and the durable registry of all
// registered users. It is constructed once at startup and handed to the
// transport layer explicitly; there is no ambient singleton.
//
// Every mutating operation persists synchronously before returning and then
// notifies subscribers with a snapshot of the new session state.
type Store struct {
	mu      sync.Mutex
	current *user.User

	storage  kv.Store            // Durable key-value collaborator
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation

	subMu   sync.Mutex
	subs    map[int]func(*user.User)
	nextSub int
}

// New creates a session store over the given durable storage.
func New(storage kv.Store, log *zap.Logger) *Store {
	return &Store{
		storage:  storage,
		log:      log,
		validate: validator.New(),
		subs:     make(map[int]func(*user.User)),
	}
}

var _ Usecase = (*Store)(nil)

// formatValidationError converts validator.ValidationErrors into a human-readable error message.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return fmt.Errorf("validation failed: %s", strings.Join(messages, ", "))
	}
	return err
}

// Restore loads the persisted session, if any. It is invoked once at
// startup and never fails the process: an absent or malformed record
// leaves the session empty.
func (s *Store) Restore(ctx context.Context) {
	raw, ok, err := s.storage.Get(ctx, currentUserKey)
	if err != nil {
		s.log.Warn("failed to read persisted session, starting empty", zap.Error(err))
		return
	}
	if !ok {
		s.log.Debug("no persisted session found")
		return
	}

	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn("persisted session is malformed, starting empty", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()

	s.log.Info("session restored", zap.String("user_id", u.ID), zap.String("email", u.Email))
	s.notify(u.Clone())
}

// Register creates a new user, appends it to the registry, and makes it
// the current session. Registration succeeds for any well-formed profile;
// email uniqueness is deliberately not enforced (duplicate accounts are
// possible, login resolves to the first match).
func (s *Store) Register(ctx context.Context, in RegisterRequest) (*user.User, error) {
	s.log.Info("registering user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	for i := range registry {
		if registry[i].Email == in.Email {
			s.log.Warn("email already registered, creating duplicate account", zap.String("email", in.Email))
			break
		}
	}

	newUser := &user.User{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Village:          in.Village,
		State:            in.State,
		EnrolledServices: []string{},
		JoinedDate:       time.Now().UTC().Format(time.RFC3339),
	}

	registry = append(registry, *newUser)
	if err := s.saveRegistry(ctx, registry); err != nil {
		return nil, err
	}
	if err := s.saveCurrent(ctx, newUser); err != nil {
		return nil, err
	}

	s.current = newUser
	s.log.Info("user registered", zap.String("user_id", newUser.ID))

	s.notify(newUser.Clone())
	return newUser.Clone(), nil
}

// Login resolves the first registered user whose email matches exactly and
// makes it the current session. It returns (nil, nil) when no user
// matches; the caller decides the user-facing messaging. The password is
// intentionally ignored.
func (s *Store) Login(ctx context.Context, in LoginRequest) (*user.User, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	for i := range registry {
		if registry[i].Email == in.Email {
			found := registry[i].Clone()
			if err := s.saveCurrent(ctx, found); err != nil {
				return nil, err
			}
			s.current = found
			s.log.Info("user logged in", zap.String("user_id", found.ID))

			s.notify(found.Clone())
			return found.Clone(), nil
		}
	}

	s.log.Info("login failed, email not registered", zap.String("email", in.Email))
	return nil, nil
}

// Logout clears the current session and removes its durable record. The
// registry of all users is left untouched. Logging out without a session
// is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	if err := s.storage.Remove(ctx, currentUserKey); err != nil {
		return err
	}

	s.log.Info("user logged out", zap.String("user_id", s.current.ID))
	s.current = nil

	s.notify(nil)
	return nil
}

// UpdateProfile merges the patch into the current user, last write wins
// per field. The merged record is persisted both as the session record and
// in place inside the registry. Without a session it is a no-op returning
// (nil, nil).
func (s *Store) UpdateProfile(ctx context.Context, in UpdateProfileRequest) (*user.User, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		s.log.Debug("profile update ignored, no active session")
		return nil, nil
	}

	merged := s.current.Clone()
	if in.Name != "" {
		merged.Name = in.Name
	}
	if in.Email != "" {
		merged.Email = in.Email
	}
	if in.Phone != "" {
		merged.Phone = in.Phone
	}
	if in.Village != "" {
		merged.Village = in.Village
	}
	if in.State != "" {
		merged.State = in.State
	}

	if err := s.persistMerged(ctx, merged); err != nil {
		return nil, err
	}

	s.current = merged
	s.log.Info("profile updated", zap.String("user_id", merged.ID))

	s.notify(merged.Clone())
	return merged.Clone(), nil
}

// EnrollInService appends serviceID to the current user's enrollment list.
// It is idempotent: enrolling twice in the same service leaves the list as
// if enrolled once. Without a session it is a no-op returning (nil, nil).
func (s *Store) EnrollInService(ctx context.Context, serviceID string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		s.log.Debug("enrollment ignored, no active session", zap.String("service_id", serviceID))
		return nil, nil
	}

	if s.current.IsEnrolled(serviceID) {
		s.log.Debug("already enrolled", zap.String("user_id", s.current.ID), zap.String("service_id", serviceID))
		return s.current.Clone(), nil
	}

	merged := s.current.Clone()
	merged.EnrolledServices = append(merged.EnrolledServices, serviceID)

	if err := s.persistMerged(ctx, merged); err != nil {
		return nil, err
	}

	s.current = merged
	s.log.Info("enrolled in service", zap.String("user_id", merged.ID), zap.String("service_id", serviceID))

	s.notify(merged.Clone())
	return merged.Clone(), nil
}

// Current returns a snapshot of the current user, or nil when no session
// is active.
func (s *Store) Current() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Subscribe registers fn to be called with a session snapshot after every
// operation. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(*user.User)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// notify invokes all subscribers with a session snapshot. It only takes
// the subscriber mutex, so it is safe to run while the state mutex is
// still held.
func (s *Store) notify(snapshot *user.User) {
	s.subMu.Lock()
	subs := make([]func(*user.User), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// persistMerged writes the merged record to the session key and replaces
// the matching registry entry. Must be called with the state mutex held.
func (s *Store) persistMerged(ctx context.Context, merged *user.User) error {
	if err := s.saveCurrent(ctx, merged); err != nil {
		return err
	}

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return err
	}
	for i := range registry {
		if registry[i].ID == merged.ID {
			registry[i] = *merged.Clone()
			break
		}
	}
	return s.saveRegistry(ctx, registry)
}

// loadRegistry reads the registered-user registry. Absent or malformed
// data yields an empty registry, matching the loss-tolerant storage
// contract.
func (s *Store) loadRegistry(ctx context.Context) ([]user.User, error) {
	raw, ok, err := s.storage.Get(ctx, registryKey)
	if err != nil {
		s.log.Error("failed to read user registry", zap.Error(err))
		return nil, fmt.Errorf("failed to read user registry: %w", err)
	}
	if !ok {
		return []user.User{}, nil
	}

	var registry []user.User
	if err := json.Unmarshal([]byte(raw), &registry); err != nil {
		s.log.Warn("user registry is malformed, treating as empty", zap.Error(err))
		return []user.User{}, nil
	}
	return registry, nil
}

func (s *Store) saveRegistry(ctx context.Context, registry []user.User) error {
	data, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("failed to encode user registry: %w", err)
	}
	if err := s.storage.Set(ctx, registryKey, string(data)); err != nil {
		s.log.Error("failed to persist user registry", zap.Error(err))
		return fmt.Errorf("failed to persist user registry: %w", err)
	}
	return nil
}

func (s *Store) saveCurrent(ctx context.Context, u *user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	if err := s.storage.Set(ctx, currentUserKey, string(data)); err != nil {
		s.log.Error("failed to persist session record", zap.Error(err))
		return fmt.Errorf("failed to persist session record: %w", err)
	}
	return nil
}
