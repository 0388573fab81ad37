package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/flowcanvas/pkg/flow"
)

// NewPaletteCommand creates the palette command, which lists the step catalog
// the editor offers, including any display overrides from palette.yaml.
func NewPaletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the available step types",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := flow.NewRegistry()
			overridePath := GetPaletteOverridePath()
			if _, err := os.Stat(overridePath); err == nil {
				if err := registry.ApplyOverrideFile(overridePath); err != nil {
					return fmt.Errorf("failed to apply palette overrides: %w", err)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TYPE\tSECTION\tLABEL\tDESCRIPTION")
			for _, cfg := range registry.Configs() {
				section := "flow step"
				if flow.IsLogicType(cfg.Type) {
					section = "logic block"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cfg.Type, section, cfg.Label, cfg.Description)
			}
			return w.Flush()
		},
	}
	return cmd
}
