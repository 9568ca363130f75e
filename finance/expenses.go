package finance

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/finpanel/go-finance-client/api"
)

// Payment method codes the backend accepts.
var PaymentMethods = []string{
	"DINHEIRO",
	"CHEQUE",
	"DEBITO",
	"CREDITO_VISTA",
	"OUTROS",
	"CRIPTOMOEDA",
	"VALE_ALIMENTACAO",
	"TRANSFERENCIA_BANCARIA",
	"CREDITO_PARCELADO",
	"PIX",
	"DEBITO_AUTOMATICO",
	"VALE_REFEICAO",
	"BOLETO",
}

func ValidPaymentMethod(code string) bool {
	for _, m := range PaymentMethods {
		if m == code {
			return true
		}
	}
	return false
}

// ExpenseFilter narrows an expense listing. Dates are yyyy-MM-dd and must
// be provided as a pair.
type ExpenseFilter struct {
	Category  string
	StartDate string
	EndDate   string
}

func (f ExpenseFilter) query() (url.Values, error) {
	if (f.StartDate == "") != (f.EndDate == "") {
		return nil, ErrIncompleteDateRange
	}
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
		q.Set("endDate", f.EndDate)
	}
	return q, nil
}

// ListExpenses fetches a client's expenses, optionally filtered.
func (s *Service) ListExpenses(ctx context.Context, clientID string, filter ExpenseFilter) ([]Expense, error) {
	q, err := filter.query()
	if err != nil {
		return nil, err
	}

	var expenses []Expense
	if _, err := s.api.DoInto(ctx, "/client/"+clientID+"/expenses", api.Options{
		Auth:  true,
		Query: q,
	}, &expenses); err != nil {
		return nil, errors.Wrap(err, "[Service.ListExpenses]")
	}
	return expenses, nil
}

// CreateExpense records a new expense for the client.
func (s *Service) CreateExpense(ctx context.Context, clientID string, input ExpenseInput) error {
	if pm := input.PaymentMethod; pm != nil && *pm != "" && !ValidPaymentMethod(*pm) {
		return ErrInvalidPayment
	}

	body, err := api.JSONBody(input)
	if err != nil {
		return errors.Wrap(err, "[Service.CreateExpense] encode input")
	}
	if _, err := s.api.Do(ctx, "/client/"+clientID+"/expenses", api.Options{
		Method: http.MethodPost,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.CreateExpense]")
	}
	return nil
}

// UpdateExpense applies a sparse patch to one expense.
func (s *Service) UpdateExpense(ctx context.Context, expenseID string, patch ExpensePatch) error {
	body, err := api.JSONBody(patch)
	if err != nil {
		return errors.Wrap(err, "[Service.UpdateExpense] encode patch")
	}
	if _, err := s.api.Do(ctx, "/expenses/"+expenseID, api.Options{
		Method: http.MethodPatch,
		Auth:   true,
		Body:   body,
	}); err != nil {
		return errors.Wrap(err, "[Service.UpdateExpense]")
	}
	return nil
}

// DeleteExpense removes one expense.
func (s *Service) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, err := s.api.Do(ctx, "/expenses/"+expenseID, api.Options{
		Method: http.MethodDelete,
		Auth:   true,
	}); err != nil {
		return errors.Wrap(err, "[Service.DeleteExpense]")
	}
	return nil
}

// ExpenseCategories fetches the category catalog used by expense forms.
func (s *Service) ExpenseCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if _, err := s.api.DoInto(ctx, "/api/categories/expenses", api.Options{Auth: true}, &categories); err != nil {
		return nil, errors.Wrap(err, "[Service.ExpenseCategories]")
	}
	return categories, nil
}
