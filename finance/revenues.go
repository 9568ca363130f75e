package finance

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/finpanel/go-finance-client/api"
)

// ListRevenues fetches a client's revenues, optionally filtered with the
// same category/date semantics as expenses.
func (s *Service) ListRevenues(ctx context.Context, clientID string, filter ExpenseFilter) ([]Revenue, error) {
	q, err := filter.query()
	if err != nil {
		return nil, err
	}

	var revenues []Revenue
	if _, err := s.api.DoInto(ctx, "/client/"+clientID+"/revenues", api.Options{
		Auth:  true,
		Query: q,
	}, &revenues); err != nil {
		return nil, errors.Wrap(err, "[Service.ListRevenues]")
	}
	return revenues, nil
}

func (s *Service) CreateRevenue(ctx context.Context, clientID string, input RevenueInput) error {
	body, err := api.JSONBody(input)
	if err != nil {
		return errors.Wrap(err, "[Service.CreateRevenue] encode input")
	}
	if _, err := s.api.Do(ctx, "/client/"+clientID+"/revenues", api.Options{
		Method: http.MethodPost,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.CreateRevenue]")
	}
	return nil
}

func (s *Service) UpdateRevenue(ctx context.Context, revenueID string, patch RevenuePatch) error {
	body, err := api.JSONBody(patch)
	if err != nil {
		return errors.Wrap(err, "[Service.UpdateRevenue] encode patch")
	}
	if _, err := s.api.Do(ctx, "/revenues/"+revenueID, api.Options{
		Method: http.MethodPatch,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.UpdateRevenue]")
	}
	return nil
}

// RevenueCategories fetches the category catalog used by revenue forms.
func (s *Service) RevenueCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if _, err := s.api.DoInto(ctx, "/api/categories/revenues", api.Options{Auth: true}, &categories); err != nil {
		return nil, errors.Wrap(err, "[Service.RevenueCategories]")
	}
	return categories, nil
}

func (s *Service) DeleteRevenue(ctx context.Context, revenueID string) error {
	if _, err := s.api.Do(ctx, "/revenues/"+revenueID, api.Options{
		Method: http.MethodDelete,
		Auth:   true,
	}); err != nil {
		return errors.Wrap(err, "[Service.DeleteRevenue]")
	}
	return nil
}
