package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/flowcanvas/pkg/editor"
	"github.com/dshills/flowcanvas/pkg/errors"
	"github.com/dshills/flowcanvas/pkg/flow"
	"github.com/dshills/flowcanvas/pkg/tui"
)

// NewEditCommand creates the edit command, which opens the canvas editor.
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the visual workflow canvas",
		Long: `Open the interactive canvas editor. Add steps from the palette, connect
them, and configure each step through its dialog.

Display labels and descriptions for node types can be customized via
palette.yaml in the configuration directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := flow.NewRegistry()
			overridePath := GetPaletteOverridePath()
			if _, err := os.Stat(overridePath); err == nil {
				if err := registry.ApplyOverrideFile(overridePath); err != nil {
					return fmt.Errorf("failed to apply palette overrides: %w", err)
				}
			}

			app, err := tui.NewApp(editor.WithRegistry(registry))
			if err != nil {
				return fmt.Errorf("failed to start editor: %w", err)
			}
			defer func() {
				if cerr := app.Close(); cerr != nil {
					log.Printf("editor shutdown: %v", cerr)
				}
			}()

			sessionID := app.Builder().Session().SessionID().String()
			if err := app.Run(); err != nil {
				return errors.NewOperationalError("running canvas editor", sessionID, "", err)
			}
			return nil
		},
	}
	return cmd
}
