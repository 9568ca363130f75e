package finance

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Dashboard aggregates the four data sets the landing view renders. Any
// section may be missing when its fetch failed; Partial reports that.
type Dashboard struct {
	FinanceInfo *FinanceInfo
	Expenses    []Expense
	Revenues    []Revenue
	Goals       []Goal
	Partial     bool
}

// Dashboard fetches finance info, expenses, revenues and goals
// concurrently. A failed section is logged and left empty rather than
// failing the whole view; only context cancellation aborts the fan-out.
func (s *Service) Dashboard(ctx context.Context, clientID string, log zerolog.Logger) (*Dashboard, error) {
	var (
		mu sync.Mutex
		d  Dashboard
	)

	tolerate := func(section string, fn func() error) func() error {
		return func() error {
			if err := fn(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Warn().Err(err).Str("section", section).Msg("dashboard section failed")
				mu.Lock()
				d.Partial = true
				mu.Unlock()
			}
			return nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(tolerate("finance_info", func() error {
		info, err := s.FinanceInfo(gctx, clientID)
		if err != nil {
			return err
		}
		mu.Lock()
		d.FinanceInfo = info
		mu.Unlock()
		return nil
	}))
	g.Go(tolerate("expenses", func() error {
		expenses, err := s.ListExpenses(gctx, clientID, ExpenseFilter{})
		if err != nil {
			return err
		}
		mu.Lock()
		d.Expenses = expenses
		mu.Unlock()
		return nil
	}))
	g.Go(tolerate("revenues", func() error {
		revenues, err := s.ListRevenues(gctx, clientID, ExpenseFilter{})
		if err != nil {
			return err
		}
		mu.Lock()
		d.Revenues = revenues
		mu.Unlock()
		return nil
	}))
	g.Go(tolerate("goals", func() error {
		goals, err := s.ListGoals(gctx, clientID)
		if err != nil {
			return err
		}
		mu.Lock()
		d.Goals = goals
		mu.Unlock()
		return nil
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
