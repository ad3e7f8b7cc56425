package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artcheck/artcheck/internal/adapters/outbound/tui"
	"github.com/artcheck/artcheck/internal/domain"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the article catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := domain.DefaultCatalog()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCatalog(catalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the catalog as JSON")

	return cmd
}
