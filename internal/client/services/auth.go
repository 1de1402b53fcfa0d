package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tripdeck/internal/client/api"
	"tripdeck/internal/client/models"
	"tripdeck/internal/client/session"
	"tripdeck/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Register: authenticate against the server and persist the
//     returned session so it survives restarts.
//   - Logout: wipe the persisted session.
//   - Current: load the persisted session; nil means unauthenticated.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, form RegisterForm) (*models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
}

// RegisterForm carries the registration fields.
type RegisterForm struct {
	Username string
	FullName string
	Email    string
	DOB      string
	Password string
}

type authService struct {
	api   *api.Client
	store *session.Store
	log   logging.Logger
}

func NewAuthService(apiClient *api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{api: apiClient, store: store, log: log.With("service", "auth")}
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := api.DoJSON[authResponse](ctx, a.api, "/api/auth/login", api.RequestOptions{
		Method: http.MethodPost,
		Body:   map[string]any{"email": email, "password": password},
	})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.store.Save(ctx, &models.Session{Token: resp.Token, User: resp.User}); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &resp.User, nil
}

func (a *authService) Register(ctx context.Context, form RegisterForm) (*models.User, error) {
	resp, err := api.DoJSON[authResponse](ctx, a.api, "/api/auth/register", api.RequestOptions{
		Method: http.MethodPost,
		Body: map[string]any{
			"username": form.Username,
			"fullName": form.FullName,
			"email":    form.Email,
			"dob":      models.ToYMD(form.DOB),
			"password": form.Password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	// Some backends return the user without a token; only a complete pair
	// becomes a session.
	if resp.Token != "" {
		if err := a.store.Save(ctx, &models.Session{Token: resp.Token, User: resp.User}); err != nil {
			return nil, fmt.Errorf("session saving error: %w", err)
		}
	}
	return &resp.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	return a.store.Load(ctx)
}

// TokenExpiry extracts the exp claim from a JWT session token without
// verifying its signature — the client has no key and only uses this for
// status display. ok is false for opaque tokens or tokens without exp.
func TokenExpiry(token string) (expiry time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
