package finance

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/finpanel/go-finance-client/api"
)

// ReportPeriod bounds a financial report. Both dates are yyyy-MM-dd and
// required; the start must not lie after the end.
type ReportPeriod struct {
	StartDate string
	EndDate   string
}

func (p ReportPeriod) query() (url.Values, error) {
	if p.StartDate == "" || p.EndDate == "" {
		return nil, ErrIncompleteDateRange
	}
	if p.StartDate > p.EndDate {
		return nil, errors.New("report start date is after end date")
	}
	q := url.Values{}
	q.Set("startDate", p.StartDate)
	q.Set("endDate", p.EndDate)
	return q, nil
}

// ExpensesByCategory totals the client's expenses per category over the
// period.
func (s *Service) ExpensesByCategory(ctx context.Context, clientID string, period ReportPeriod) ([]CategoryTotal, error) {
	q, err := period.query()
	if err != nil {
		return nil, err
	}

	var totals []CategoryTotal
	if _, err := s.api.DoInto(ctx, "/client/"+clientID+"/expenses/report", api.Options{
		Auth:  true,
		Query: q,
	}, &totals); err != nil {
		return nil, errors.Wrap(err, "[Service.ExpensesByCategory]")
	}
	return totals, nil
}

// RevenuesByCategory totals the client's revenues per category over the
// period.
func (s *Service) RevenuesByCategory(ctx context.Context, clientID string, period ReportPeriod) ([]CategoryTotal, error) {
	q, err := period.query()
	if err != nil {
		return nil, err
	}

	var totals []CategoryTotal
	if _, err := s.api.DoInto(ctx, "/client/"+clientID+"/revenues/report", api.Options{
		Auth:  true,
		Query: q,
	}, &totals); err != nil {
		return nil, errors.Wrap(err, "[Service.RevenuesByCategory]")
	}
	return totals, nil
}

// FinancialReport builds the period report for a client.
func (s *Service) FinancialReport(ctx context.Context, clientID string, period ReportPeriod) (*FinancialReport, error) {
	q, err := period.query()
	if err != nil {
		return nil, err
	}

	var report FinancialReport
	ok, err := s.api.DoInto(ctx, "/client/"+clientID+"/financial-report", api.Options{
		Auth:  true,
		Query: q,
	}, &report)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.FinancialReport]")
	}
	if !ok {
		return nil, nil
	}
	return &report, nil
}

// FinancialReportWithRecommendations builds the period report and asks
// the AI recommendation endpoint to annotate it. shapTopK bounds how many
// feature-attribution signals back each recommendation; values below 1
// fall back to the default of 5.
func (s *Service) FinancialReportWithRecommendations(ctx context.Context, clientID string, period ReportPeriod, shapTopK int) (*ReportWithRecommendations, error) {
	q, err := period.query()
	if err != nil {
		return nil, err
	}
	if shapTopK < 1 {
		shapTopK = 5
	}
	q.Set("shapTopK", strconv.Itoa(shapTopK))

	var out ReportWithRecommendations
	ok, err := s.api.DoInto(ctx, "/client/"+clientID+"/financial-report/with-recommendations", api.Options{
		Auth:  true,
		Query: q,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.FinancialReportWithRecommendations]")
	}
	if !ok {
		return nil, nil
	}
	// Some backend versions report the flag without the list; trust the
	// list when they disagree.
	if out.HasRecommendations && len(out.Recommendations) == 0 && out.RecommendationsCount == 0 {
		out.HasRecommendations = false
	}
	return &out, nil
}
