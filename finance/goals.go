package finance

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/finpanel/go-finance-client/api"
)

var minContribution = decimal.New(1, -2) // 0.01

// ListGoals fetches a client's savings goals.
func (s *Service) ListGoals(ctx context.Context, clientID string) ([]Goal, error) {
	var goals []Goal
	if _, err := s.api.DoInto(ctx, "/clients/"+clientID+"/goals", api.Options{Auth: true}, &goals); err != nil {
		return nil, errors.Wrap(err, "[Service.ListGoals]")
	}
	return goals, nil
}

func (s *Service) CreateGoal(ctx context.Context, clientID string, input GoalInput) error {
	body, err := api.JSONBody(input)
	if err != nil {
		return errors.Wrap(err, "[Service.CreateGoal] encode input")
	}
	if _, err := s.api.Do(ctx, "/clients/"+clientID+"/goals", api.Options{
		Method: http.MethodPost,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.CreateGoal]")
	}
	return nil
}

func (s *Service) UpdateGoal(ctx context.Context, goalID string, patch GoalPatch) error {
	body, err := api.JSONBody(patch)
	if err != nil {
		return errors.Wrap(err, "[Service.UpdateGoal] encode patch")
	}
	if _, err := s.api.Do(ctx, "/goals/"+goalID, api.Options{
		Method: http.MethodPatch,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.UpdateGoal]")
	}
	return nil
}

func (s *Service) DeleteGoal(ctx context.Context, goalID string) error {
	if _, err := s.api.Do(ctx, "/goals/"+goalID, api.Options{
		Method: http.MethodDelete,
		Auth:   true,
	}); err != nil {
		return errors.Wrap(err, "[Service.DeleteGoal]")
	}
	return nil
}

// Contribute adds amount to a goal's accumulated total.
func (s *Service) Contribute(ctx context.Context, goalID string, amount Amount) error {
	if amount.LessThan(minContribution) {
		return ErrAmountTooSmall
	}

	body, err := api.JSONBody(map[string]Amount{"amount": amount})
	if err != nil {
		return errors.Wrap(err, "[Service.Contribute] encode amount")
	}
	if _, err := s.api.Do(ctx, "/goals/"+goalID+"/contribute", api.Options{
		Method: http.MethodPost,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.Contribute]")
	}
	return nil
}
