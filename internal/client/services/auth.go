package services

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/astroerik-coder/agrostock/internal/client/models"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/users"
	"github.com/astroerik-coder/agrostock/internal/common"
	"github.com/astroerik-coder/agrostock/internal/cryptox"
	"github.com/astroerik-coder/agrostock/internal/logging"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing messages.
const (
	msgAllFieldsRequired   = "Todos los campos son obligatorios"
	msgInvalidEmail        = "Correo electrónico inválido"
	msgEmailTaken          = "El correo ya está registrado"
	msgUserNotFound        = "Usuario no encontrado"
	msgWrongPassword       = "Contraseña incorrecta"
	msgCredentialsRequired = "Correo y contraseña son obligatorios"
	msgNoSession           = "No hay una sesión activa"
)

// AuthService defines the credential store operations.
//
// Contract:
//   - Register: validate, reject duplicate emails, store the hashed password.
//   - Login: verify credentials and persist the session marker.
//   - Logout: drop the session marker; idempotent.
//   - CurrentSession: the persisted marker, or nil.
//   - UpdateProfile: rename a user or change their email in place.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
	UpdateProfile(ctx context.Context, s *models.Session, name, email string) (*models.Session, error)
}

type authService struct {
	users  users.Repository
	scheme cryptox.Scheme
	log    logging.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewAuthService constructs an AuthService. New passwords are hashed with
// scheme; stored hashes of any scheme are accepted at login.
func NewAuthService(repo users.Repository, scheme cryptox.Scheme, log logging.Logger) AuthService {
	return &authService{users: repo, scheme: scheme, log: log.With("component", "auth"), now: time.Now}
}

func (a *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, common.Validation("", msgAllFieldsRequired)
	}
	if !emailRe.MatchString(email) {
		return nil, common.Validation("email", msgInvalidEmail)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: cryptox.HashPassword(a.scheme, []byte(password)),
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.users.Update(ctx, func(list []models.User) ([]models.User, error) {
		if findUser(list, email) >= 0 {
			return nil, common.Conflict(msgEmailTaken)
		}
		return append(list, user), nil
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			a.log.Info(ctx, "registration rejected", "email", email, "reason", "email taken")
		}
		return nil, common.Storage("failed to register user", err)
	}

	a.log.Info(ctx, "user registered", "email", email, "scheme", string(a.scheme))
	return &user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, common.Validation("", msgCredentialsRequired)
	}

	list, err := a.users.List(ctx)
	if err != nil {
		return nil, common.Storage("failed to load users", err)
	}
	i := findUser(list, email)
	if i < 0 {
		a.log.Info(ctx, "login failed", "email", email, "reason", "unknown email")
		return nil, common.NotFound(msgUserNotFound)
	}
	if !cryptox.VerifyPassword(list[i].PasswordHash, []byte(password)) {
		a.log.Warn(ctx, "login failed", "email", email, "reason", "wrong password")
		return nil, common.Auth(msgWrongPassword)
	}

	session := models.NewSession(list[i], a.now())
	if err := a.users.SetSession(ctx, session); err != nil {
		return nil, common.Storage("failed to save session", err)
	}

	a.log.Info(ctx, "user logged in", "email", email, "session", session.ID.String())
	return session, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.users.DeleteSession(ctx); err != nil {
		return common.Storage("failed to clear session", err)
	}
	a.log.Info(ctx, "user logged out")
	return nil
}

func (a *authService) CurrentSession(ctx context.Context) (*models.Session, error) {
	s, legacy, err := a.users.GetSession(ctx)
	if err != nil {
		return nil, common.Storage("failed to load session", err)
	}
	if legacy {
		a.log.Warn(ctx, "session restored from legacy key", "key", users.KeyLegacySession)
	}
	return s, nil
}

func (a *authService) UpdateProfile(ctx context.Context, s *models.Session, name, email string) (*models.Session, error) {
	if s == nil {
		return nil, common.Auth(msgNoSession)
	}
	if name == "" || email == "" {
		return nil, common.Validation("", msgAllFieldsRequired)
	}
	if !emailRe.MatchString(email) {
		return nil, common.Validation("email", msgInvalidEmail)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var updated models.User
	err := a.users.Update(ctx, func(list []models.User) ([]models.User, error) {
		i := findUser(list, s.Email)
		if i < 0 {
			return nil, common.NotFound(msgUserNotFound)
		}
		if email != s.Email && findUser(list, email) >= 0 {
			return nil, common.Conflict(msgEmailTaken)
		}
		list[i].Name = name
		list[i].Email = email
		updated = list[i]
		return list, nil
	})
	if err != nil {
		return nil, common.Storage("failed to update profile", err)
	}

	next := *s
	next.User = updated
	if err := a.users.SetSession(ctx, &next); err != nil {
		return nil, common.Storage("failed to save session", err)
	}

	a.log.Info(ctx, "profile updated", "old_email", s.Email, "email", email)
	return &next, nil
}

func findUser(list []models.User, email string) int {
	for i := range list {
		if list[i].Email == email {
			return i
		}
	}
	return -1
}
