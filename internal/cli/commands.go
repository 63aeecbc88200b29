// Package cli implements the exercise command line: one-off calls against
// the site API, account housekeeping and the pricing helper.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/themizzi/exercise-e2e/internal/account"
	"github.com/themizzi/exercise-e2e/internal/api"
	"github.com/themizzi/exercise-e2e/internal/dataset"
	"github.com/themizzi/exercise-e2e/internal/models"
	"github.com/themizzi/exercise-e2e/internal/pricing"
)

// NewApp returns the exercise application. load is called by every command
// that talks to the site or the ledger.
func NewApp(version string, load Loader) *cli.App {
	return &cli.App{
		Name:    "exercise",
		Usage:   "Drive the automationexercise.com API and manage test accounts",
		Version: version,
		Commands: []*cli.Command{
			ProductsCommand(load),
			BrandsCommand(load),
			SearchCommand(load),
			VerifyLoginCommand(load),
			CreateAccountCommand(load),
			DeleteAccountCommand(load),
			SweepCommand(load),
			TotalCommand(),
		},
	}
}

// ProductsCommand returns the products command
func ProductsCommand(load Loader) *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "List every product",
		Action: withDeps(load, func(ctx context.Context, c *cli.Context, deps *Deps) error {
			resp, err := deps.API.ListProducts(ctx)
			if err != nil {
				return err
			}
			return printExpected(c.App.Writer, resp, http.StatusOK)
		}),
	}
}

// BrandsCommand returns the brands command
func BrandsCommand(load Loader) *cli.Command {
	return &cli.Command{
		Name:  "brands",
		Usage: "List every brand",
		Action: withDeps(load, func(ctx context.Context, c *cli.Context, deps *Deps) error {
			resp, err := deps.API.ListBrands(ctx)
			if err != nil {
				return err
			}
			return printExpected(c.App.Writer, resp, http.StatusOK)
		}),
	}
}

// SearchCommand returns the search command
func SearchCommand(load Loader) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalogue",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "term", Usage: "search term", Required: true},
		},
		Action: withDeps(load, func(ctx context.Context, c *cli.Context, deps *Deps) error {
			resp, err := deps.API.SearchProduct(ctx, c.String("term"))
			if err != nil {
				return err
			}
			return printExpected(c.App.Writer, resp, http.StatusOK)
		}),
	}
}

// VerifyLoginCommand returns the verify-login command
func VerifyLoginCommand(load Loader) *cli.Command {
	return &cli.Command{
		Name:  "verify-login",
		Usage: "Check a credential pair",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: withDeps(load, func(ctx context.Context, c *cli.Context, deps *Deps) error {
			resp, err := deps.API.VerifyLogin(ctx, c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			return printExpected(c.App.Writer, resp, http.StatusOK)
		}),
	}
}

// CreatedAccount is printed by create-account
type CreatedAccount struct {
	RunID    string `json:"run_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Seed     int64  `json:"seed"`
}

// CreateAccountCommand returns the create-account command
func CreateAccountCommand(load Loader) *cli.Command {
	return &cli.Command{
		Name:  "create-account",
		Usage: "Create a generated account through the API and record it in the ledger",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Usage: "factory seed, 0 derives one from the clock"},
		},
		Action: withDeps(load, func(ctx context.Context, c *cli.Context, deps *Deps) error {
			factory := dataset.NewFactory(c.Int64("seed"))
			manager := account.NewManager(models.NewRunID(), deps.API, deps.Ledger, deps.Log)

			lease, err := manager.Acquire(ctx, factory.User())
			if err != nil {
				return err
			}
			user := lease.User()
			return printJSON(c.App.Writer, CreatedAccount{
				RunID:    manager.RunID(),
				Email:    user.Email,
				Password: user.Password,
				Name:     user.Name,
				Seed:     factory.Seed(),
			})
		}),
	}
}

// DeleteAccountCommand returns the delete-account command
func DeleteAccountCommand(load Loader) *cli.Command {
	return &cli.Command{
		Name:  "delete-account",
		Usage: "Delete an account through the API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: withDeps(load, func(ctx context.Context, c *cli.Context, deps *Deps) error {
			email := c.String("email")
			resp, err := deps.API.DeleteAccount(ctx, email, c.String("password"))
			if err != nil {
				return err
			}
			if err := printExpected(c.App.Writer, resp, http.StatusOK); err != nil {
				return err
			}

			err = deps.Ledger.UpdateAccountStatus(ctx, email, models.AccountStatusDeleted, "")
			if err != nil && !errors.Is(err, models.ErrAccountNotFound) {
				return fmt.Errorf("account deleted but ledger not updated: %w", err)
			}
			return nil
		}),
	}
}

// SweepCommand returns the sweep command
func SweepCommand(load Loader) *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "Delete every account the ledger still lists as outstanding",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "min-age", Usage: "skip live accounts touched more recently than this (default SWEEP_MIN_AGE_MINUTES)"},
		},
		Action: withDeps(load, func(ctx context.Context, c *cli.Context, deps *Deps) error {
			minAge := deps.Config.SweepMinAge
			if c.IsSet("min-age") {
				minAge = c.Duration("min-age")
			}
			sweeper := account.NewSweeper(deps.API, deps.Ledger, deps.Log, deps.Config.SweepConcurrency, deps.Config.SweepRatePerSec, minAge)
			report, err := sweeper.Sweep(ctx)
			if perr := printJSON(c.App.Writer, report); perr != nil && err == nil {
				err = perr
			}
			if err != nil {
				return err
			}
			if len(report.Failed) > 0 {
				return fmt.Errorf("%d accounts could not be deleted", len(report.Failed))
			}
			return nil
		}),
	}
}

// TotalCommand returns the total command
func TotalCommand() *cli.Command {
	return &cli.Command{
		Name:  "total",
		Usage: "Print the expected line total for a price and quantity",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "price", Usage: `unit price, e.g. "Rs. 1000"`, Required: true},
			&cli.IntFlag{Name: "quantity", Value: 1},
		},
		Action: func(c *cli.Context) error {
			total, err := pricing.CalculateExpectedTotal(c.String("price"), c.Int("quantity"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, total)
			return err
		},
	}
}

type depsAction func(ctx context.Context, c *cli.Context, deps *Deps) error

func withDeps(load Loader, action depsAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		deps, err := load()
		if err != nil {
			return err
		}
		defer deps.Close()

		ctx, cancel := WithShutdown(c.Context, nil, deps.Log)
		defer cancel()

		return action(ctx, c, deps)
	}
}

// printExpected prints the decoded body, then reports a responseCode other than want
func printExpected(w io.Writer, resp *http.Response, want int) error {
	env, err := api.Expect(resp, want)
	if env == nil {
		return err
	}
	if perr := printJSON(w, env); perr != nil {
		return perr
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
