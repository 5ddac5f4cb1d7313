package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/cashmap/internal/core/domain"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func newSeedCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the built-in categories and system rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rt, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				inserted, err := svc.MappingRule.SeedSystemRules(ctx)
				if err != nil {
					return fmt.Errorf("seeding rules: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "inserted %d system rules\n", inserted)
				return nil
			})
		},
	}
}

func newWaterfallCommand(rt Runtime) *cobra.Command {
	var owner string
	var period string

	cmd := &cobra.Command{
		Use:   "waterfall",
		Short: "Print the budget waterfall for an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.BudgetPeriod(strings.ToUpper(period))
			if !p.IsValid() {
				return fmt.Errorf("unknown period %q: want WEEKLY, FORTNIGHTLY or MONTHLY", period)
			}
			return withServices(cmd, rt, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				waterfall, err := svc.Budget.GetWaterfall(ctx, owner, p)
				if err != nil {
					return fmt.Errorf("building waterfall: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), waterfall)
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", cliOwner, "owner ID")
	cmd.Flags().StringVar(&period, "period", string(domain.PeriodFortnightly), "WEEKLY, FORTNIGHTLY or MONTHLY")

	return cmd
}

func newMigrateCommand(rt Runtime) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or with --down, revert) the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.Migrate(cmd.Context(), down); err != nil {
				return fmt.Errorf("migrating: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "revert every migration")

	return cmd
}
