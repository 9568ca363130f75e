// Package auth performs authentication against the finance backend and
// owns the client-side login/logout lifecycle around the session store.
package auth

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/finpanel/go-finance-client/api"
	"github.com/finpanel/go-finance-client/session"
)

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is what the auth endpoint returns on success. ClientID
// and Name are optional; the profile bootstrap resolves a display name
// either way.
type LoginResponse struct {
	Token    string  `json:"token"`
	ClientID *string `json:"clientId,omitempty"`
	Name     *string `json:"name,omitempty"`
}

// RegisterRequest is the signup payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service issues authentication calls through the request gateway.
type Service struct {
	api       *api.Client
	validator *Validator
}

func NewService(apiClient *api.Client) (*Service, error) {
	if apiClient == nil {
		return nil, errors.New("[auth.NewService] api client is required")
	}
	return &Service{
		api:       apiClient,
		validator: NewValidator(),
	}, nil
}

// Login exchanges credentials for a session token. The returned response
// is the input to profile.Bootstrap.Apply.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if err := s.validator.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	body, err := api.JSONBody(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login] encode request")
	}

	var out LoginResponse
	ok, err := s.api.DoInto(ctx, "/auth/login", api.Options{
		Method: http.MethodPost,
		Body:   body,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login] login request")
	}
	if !ok || out.Token == "" {
		return nil, ErrMissingToken
	}
	return &out, nil
}

// Register creates a new account. The backend returns no body the client
// needs; success means the user can proceed to login.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if err := s.validator.ValidateCredentials(email, password); err != nil {
		return err
	}
	if err := s.validator.ValidatePasswordStrength(password); err != nil {
		return err
	}

	body, err := api.JSONBody(RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return errors.Wrap(err, "[Service.Register] encode request")
	}

	if _, err := s.api.Do(ctx, "/auth/register", api.Options{
		Method: http.MethodPost,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.Register] register request")
	}
	return nil
}

// Logout removes the session keys a logout clears (token and display
// identity; clientId and clientName survive until the next login
// overwrites them) and notifies subscribers once.
func Logout(store session.Store) error {
	for _, key := range []string{session.KeyToken, session.KeyUserName, session.KeyUserEmail} {
		if err := store.Delete(key); err != nil {
			return errors.Wrapf(err, "[auth.Logout] delete %q", key)
		}
	}
	store.NotifyProfileUpdated()
	return nil
}

// RequireSession is the navigation guard pages run before rendering an
// authenticated view: both a token and a client id must be persisted.
func RequireSession(store session.Store) (token, clientID string, err error) {
	token, ok := store.Get(session.KeyToken)
	if !ok || token == "" {
		return "", "", ErrNotAuthenticated
	}
	clientID, ok = store.Get(session.KeyClientID)
	if !ok || clientID == "" {
		return "", "", ErrNotAuthenticated
	}
	return token, clientID, nil
}
