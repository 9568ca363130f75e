package finance

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/finpanel/go-finance-client/api"
)

// FinanceInfo fetches the client's standing financial profile. A client
// that never filled one in yields (nil, nil).
func (s *Service) FinanceInfo(ctx context.Context, clientID string) (*FinanceInfo, error) {
	var info FinanceInfo
	ok, err := s.api.DoInto(ctx, "/clients/"+clientID+"/finance-infos", api.Options{Auth: true}, &info)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.FinanceInfo]")
	}
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// CreateFinanceInfo records the client's first finance-info entry.
func (s *Service) CreateFinanceInfo(ctx context.Context, clientID string, input FinanceInfoInput) error {
	body, err := api.JSONBody(input)
	if err != nil {
		return errors.Wrap(err, "[Service.CreateFinanceInfo] encode record")
	}
	if _, err := s.api.Do(ctx, "/clients/"+clientID+"/finance-infos", api.Options{
		Method: http.MethodPost,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.CreateFinanceInfo]")
	}
	return nil
}

// UpdateFinanceInfo patches one finance-info record.
func (s *Service) UpdateFinanceInfo(ctx context.Context, clientID, recordID string, input FinanceInfoInput) error {
	body, err := api.JSONBody(input)
	if err != nil {
		return errors.Wrap(err, "[Service.UpdateFinanceInfo] encode record")
	}
	if _, err := s.api.Do(ctx, "/clients/"+clientID+"/finance-infos/"+recordID, api.Options{
		Method: http.MethodPatch,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.UpdateFinanceInfo]")
	}
	return nil
}

// DeleteFinanceInfo removes one finance-info record.
func (s *Service) DeleteFinanceInfo(ctx context.Context, clientID, recordID string) error {
	if _, err := s.api.Do(ctx, "/clients/"+clientID+"/finance-infos/"+recordID, api.Options{
		Method: http.MethodDelete,
		Auth:   true,
	}); err != nil {
		return errors.Wrap(err, "[Service.DeleteFinanceInfo]")
	}
	return nil
}
