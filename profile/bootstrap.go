// Package profile turns a successful login into durable client session
// state: it persists the token and identity, resolves a display name, and
// notifies already-running components that the profile changed.
package profile

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/finpanel/go-finance-client/api"
	"github.com/finpanel/go-finance-client/internal/utils"
	"github.com/finpanel/go-finance-client/session"
)

// Login is the outcome of a successful authentication call. ClientID and
// Name are optional.
type Login struct {
	Email    string
	Token    string
	ClientID string
	Name     string
}

// NameSource tags which branch of the resolution chain produced the
// persisted display name.
type NameSource string

const (
	NameFromAuthResponse  NameSource = "auth_response"
	NameFromProfileLookup NameSource = "profile_lookup"
	NameSynthesized       NameSource = "synthesized"
)

// Resolution is the display identity the bootstrap persisted.
type Resolution struct {
	Name   string
	Email  string
	Source NameSource
}

// clientProfile is the enrichment record at GET /clients/{id}.
type clientProfile struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// An inline or looked-up name shorter than this is treated as unusable
// and the chain falls through to the next source.
const minNameLength = 3

// Bootstrap persists login state into a session store, enriching the
// display identity through the request gateway when a client id is known.
type Bootstrap struct {
	store session.Store
	api   *api.Client
	log   zerolog.Logger
}

type Option func(*Bootstrap)

func WithLogger(log zerolog.Logger) Option {
	return func(b *Bootstrap) {
		b.log = log
	}
}

func New(store session.Store, apiClient *api.Client, options ...Option) (*Bootstrap, error) {
	if store == nil {
		return nil, errors.New("[profile.New] session store is required")
	}
	if apiClient == nil {
		return nil, errors.New("[profile.New] api client is required")
	}

	b := &Bootstrap{
		store: store,
		api:   apiClient,
		log:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(b)
	}
	return b, nil
}

// Apply persists the session and resolves the display identity.
//
// Token and email are written before anything else so a follow-up
// authenticated call issued by the caller never races an empty token.
// Enrichment failure degrades to a synthesized name; it never fails the
// bootstrap. Exactly one profile-updated notification fires on success.
func (b *Bootstrap) Apply(ctx context.Context, login Login) (Resolution, error) {
	if login.Token == "" {
		return Resolution{}, errors.New("[Bootstrap.Apply] token is required")
	}
	if login.Email == "" {
		return Resolution{}, errors.New("[Bootstrap.Apply] email is required")
	}

	if err := b.store.Set(session.KeyToken, login.Token); err != nil {
		return Resolution{}, errors.Wrap(err, "[Bootstrap.Apply] persist token")
	}
	if err := b.store.Set(session.KeyUserEmail, login.Email); err != nil {
		return Resolution{}, errors.Wrap(err, "[Bootstrap.Apply] persist email")
	}
	if login.ClientID != "" {
		if err := b.store.Set(session.KeyClientID, login.ClientID); err != nil {
			return Resolution{}, errors.Wrap(err, "[Bootstrap.Apply] persist client id")
		}
	}

	resolution, clientName := b.resolve(ctx, login)

	if clientName != "" {
		if err := b.store.Set(session.KeyClientName, clientName); err != nil {
			return Resolution{}, errors.Wrap(err, "[Bootstrap.Apply] persist client name")
		}
	}
	if err := b.store.Set(session.KeyUserName, resolution.Name); err != nil {
		return Resolution{}, errors.Wrap(err, "[Bootstrap.Apply] persist display name")
	}
	if err := b.store.Set(session.KeyUserEmail, resolution.Email); err != nil {
		return Resolution{}, errors.Wrap(err, "[Bootstrap.Apply] persist display email")
	}

	b.store.NotifyProfileUpdated()
	return resolution, nil
}

// resolve walks the name precedence chain: inline auth-response name,
// then the per-client profile record, then synthesis from the email.
// The second return value is the profile record's name, persisted under
// its own key when the lookup supplied a usable one.
func (b *Bootstrap) resolve(ctx context.Context, login Login) (Resolution, string) {
	if name := trimmedName(login.Name); name != "" {
		return Resolution{Name: name, Email: login.Email, Source: NameFromAuthResponse}, ""
	}

	if login.ClientID == "" {
		return Resolution{
			Name:   SynthesizeName(login.Email),
			Email:  login.Email,
			Source: NameSynthesized,
		}, ""
	}

	client, err := b.lookupClient(ctx, login.ClientID)
	if err != nil {
		// Degraded but successful login: keep the synthesized identity.
		b.log.Warn().Err(err).
			Str("client_id", login.ClientID).
			Msg("profile lookup failed, falling back to synthesized name")
		return Resolution{
			Name:   SynthesizeName(login.Email),
			Email:  login.Email,
			Source: NameSynthesized,
		}, ""
	}

	email := login.Email
	if client.Email != nil && *client.Email != "" {
		email = *client.Email
	}

	if name := trimmedName(utils.Value(client.Name)); name != "" {
		return Resolution{Name: name, Email: email, Source: NameFromProfileLookup}, name
	}
	return Resolution{
		Name:   SynthesizeName(login.Email),
		Email:  email,
		Source: NameSynthesized,
	}, ""
}

func (b *Bootstrap) lookupClient(ctx context.Context, clientID string) (*clientProfile, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")

	var client clientProfile
	ok, err := b.api.DoInto(ctx, "/clients/"+clientID, api.Options{
		Auth:   true,
		Header: header,
	}, &client)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("[Bootstrap] empty client profile response")
	}
	return &client, nil
}
