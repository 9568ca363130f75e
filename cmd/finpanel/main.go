package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/finpanel/go-finance-client/api"
	"github.com/finpanel/go-finance-client/auth"
	"github.com/finpanel/go-finance-client/finance"
	"github.com/finpanel/go-finance-client/internal/config"
	"github.com/finpanel/go-finance-client/profile"
	"github.com/finpanel/go-finance-client/session"
	"github.com/finpanel/go-finance-client/token"
)

const usage = `usage: finpanel <command> [flags]

commands:
  login      -email -password        authenticate and persist the session
  whoami                             show the persisted identity
  dashboard                          fetch the landing view data
  expenses   [-category] [-from -to] list expenses
  logout                             clear the session
`

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := run(log, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(log zerolog.Logger, args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "load .env")
	}

	c := config.New()
	if err := config.Validate(c); err != nil {
		return err
	}

	if len(args) == 0 {
		displayAppname(c.GetAppName())
		fmt.Print(usage)
		return nil
	}

	store, err := session.NewFileStore(filepath.Join(c.GetDataFolder(), "session.json"))
	if err != nil {
		return err
	}

	apiClient, err := api.New(c, store, api.WithLogger(log))
	if err != nil {
		return err
	}

	ctx := context.Background()
	if timeout := c.GetRequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch cmd := args[0]; cmd {
	case "login":
		return loginCmd(ctx, log, store, apiClient, args[1:])
	case "whoami":
		return whoamiCmd(store)
	case "dashboard":
		return dashboardCmd(ctx, log, store, apiClient)
	case "expenses":
		return expensesCmd(ctx, store, apiClient, args[1:])
	case "logout":
		return auth.Logout(store)
	default:
		fmt.Print(usage)
		return errors.Errorf("unknown command %q", cmd)
	}
}

func loginCmd(ctx context.Context, log zerolog.Logger, store session.Store, apiClient *api.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authService, err := auth.NewService(apiClient)
	if err != nil {
		return err
	}
	res, err := authService.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	bootstrap, err := profile.New(store, apiClient, profile.WithLogger(log))
	if err != nil {
		return err
	}

	login := profile.Login{Email: *email, Token: res.Token}
	if res.ClientID != nil {
		login.ClientID = *res.ClientID
	}
	if res.Name != nil {
		login.Name = *res.Name
	}

	resolution, err := bootstrap.Apply(ctx, login)
	if err != nil {
		return err
	}
	log.Info().
		Str("name", resolution.Name).
		Str("source", string(resolution.Source)).
		Msg("logged in")
	return nil
}

func whoamiCmd(store session.Store) error {
	tok, clientID, err := auth.RequireSession(store)
	if err != nil {
		return err
	}

	name, _ := store.Get(session.KeyUserName)
	email, _ := store.Get(session.KeyUserEmail)
	fmt.Printf("%s <%s> (client %s)\n", name, email, clientID)

	if claims, ok := token.Decode(tok); ok && !claims.ExpiresAt.IsZero() {
		fmt.Printf("token expires %s\n", claims.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

func dashboardCmd(ctx context.Context, log zerolog.Logger, store session.Store, apiClient *api.Client) error {
	_, clientID, err := auth.RequireSession(store)
	if err != nil {
		return err
	}

	svc, err := finance.NewService(apiClient)
	if err != nil {
		return err
	}
	d, err := svc.Dashboard(ctx, clientID, log)
	if err != nil {
		return err
	}

	if d.FinanceInfo != nil {
		fmt.Printf("income: %s  net worth: %s\n",
			finance.FormatAmount(d.FinanceInfo.Income.Decimal),
			finance.FormatAmount(d.FinanceInfo.NetWorth.Decimal))
	}
	fmt.Printf("%d expenses, %d revenues, %d goals\n", len(d.Expenses), len(d.Revenues), len(d.Goals))
	if d.Partial {
		fmt.Println("(some sections were unavailable)")
	}
	return nil
}

func expensesCmd(ctx context.Context, store session.Store, apiClient *api.Client, args []string) error {
	fs := flag.NewFlagSet("expenses", flag.ExitOnError)
	category := fs.String("category", "", "filter by category code")
	from := fs.String("from", "", "start date (yyyy-MM-dd)")
	to := fs.String("to", "", "end date (yyyy-MM-dd)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, clientID, err := auth.RequireSession(store)
	if err != nil {
		return err
	}

	svc, err := finance.NewService(apiClient)
	if err != nil {
		return err
	}
	expenses, err := svc.ListExpenses(ctx, clientID, finance.ExpenseFilter{
		Category:  *category,
		StartDate: *from,
		EndDate:   *to,
	})
	if err != nil {
		return err
	}

	for _, e := range expenses {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		fmt.Printf("%s  %12s  %s\n", e.DatePaid, finance.FormatAmount(e.Amount.Decimal), description)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
