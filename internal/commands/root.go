package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/platform/bootstrap"
	"github.com/SscSPs/cashmap/internal/platform/config"
	"github.com/spf13/cobra"
)

// ServiceOpener builds the service container for one command run. The
// returned func releases whatever the container holds.
type ServiceOpener func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)

// Migrator moves the schema in the given direction.
type Migrator func(ctx context.Context, down bool) error

// Runtime is what the commands need from the outside world.
type Runtime struct {
	Open    ServiceOpener
	Migrate Migrator
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(rt Runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cashmap",
		Short: "Import, categorise and budget from bank statements",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newDetectCommand(rt),
		newImportCommand(rt),
		newSeedCommand(rt),
		newWaterfallCommand(rt),
		newMigrateCommand(rt),
		newTokenCommand(),
	)

	return rootCmd
}

// DefaultRuntime wires the commands to the configured database and
// integrations.
func DefaultRuntime(logger *slog.Logger) Runtime {
	return Runtime{
		Open: func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return nil, nil, fmt.Errorf("loading config: %w", err)
			}
			app, err := bootstrap.New(ctx, cfg, logger)
			if err != nil {
				return nil, nil, err
			}
			return app.Services, app.Close, nil
		},
		Migrate: func(ctx context.Context, down bool) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return bootstrap.Migrate(cfg, logger, down)
		},
	}
}

func withServices(cmd *cobra.Command, rt Runtime, fn func(ctx context.Context, svc *portssvc.ServiceContainer) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, closeFn, err := rt.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, svc)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readStatement(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}
	return content, nil
}
