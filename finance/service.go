// Package finance is the typed surface over the finance backend's REST
// endpoints: expenses, revenues, goals, standing finance info, and the
// period reports (with or without AI recommendations). Every call goes
// through the request gateway with auth enabled; pages guard for a
// session before reaching this layer.
package finance

import (
	"github.com/pkg/errors"

	"github.com/finpanel/go-finance-client/api"
)

// Service issues finance API calls for one process. It holds no per-call
// state; the gateway re-reads the session token on every request.
type Service struct {
	api *api.Client
}

func NewService(apiClient *api.Client) (*Service, error) {
	if apiClient == nil {
		return nil, errors.New("[finance.NewService] api client is required")
	}
	return &Service{api: apiClient}, nil
}

var (
	ErrIncompleteDateRange = errors.New("date filters require both a start and an end date")
	ErrInvalidPayment      = errors.New("payment method not accepted by the server")
	ErrAmountTooSmall      = errors.New("contribution amount must be at least 0.01")
)
