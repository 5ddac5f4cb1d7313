package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/cashmap/internal/core/domain"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/spf13/cobra"
)

// cliOwner is the owner used when --owner is not given.
const cliOwner = "local"

func newDetectCommand(rt Runtime) *cobra.Command {
	var file string
	var owner string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect a statement's column mapping and preview its first rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readStatement(file)
			if err != nil {
				return err
			}
			return withServices(cmd, rt, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				result, err := svc.Import.DetectFormat(ctx, owner, content)
				if err != nil {
					return fmt.Errorf("detecting format: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), dto.ToDetectResponse(result))
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "statement CSV (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&owner, "owner", cliOwner, "owner ID")

	return cmd
}

func newImportCommand(rt Runtime) *cobra.Command {
	var file string
	var owner string
	var org string
	var mappingFile string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a statement, detecting its mapping unless one is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readStatement(file)
			if err != nil {
				return err
			}

			var mapping *domain.ColumnMapping
			if mappingFile != "" {
				raw, err := os.ReadFile(mappingFile)
				if err != nil {
					return fmt.Errorf("reading mapping: %w", err)
				}
				parsed, err := domain.ParseColumnMapping(raw)
				if err != nil {
					return fmt.Errorf("parsing mapping: %w", err)
				}
				mapping = &parsed
			}

			var orgID *string
			if org != "" {
				orgID = &org
			}

			return withServices(cmd, rt, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				if mapping == nil {
					result, err := svc.Import.DetectFormat(ctx, owner, content)
					if err != nil {
						return fmt.Errorf("detecting format: %w", err)
					}
					mapping = &result.Mapping
				}

				summary, err := svc.Import.ImportStatement(ctx, dto.ImportRequest{
					OwnerID:        owner,
					OrganisationID: orgID,
					Filename:       filepath.Base(file),
					Content:        content,
					Mapping:        *mapping,
				})
				if err != nil {
					return fmt.Errorf("importing statement: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), summary)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "statement CSV (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&owner, "owner", cliOwner, "owner ID")
	cmd.Flags().StringVar(&org, "org", "", "adviser organisation whose rules apply")
	cmd.Flags().StringVar(&mappingFile, "mapping", "", "column mapping JSON file; detected when omitted")

	return cmd
}
