package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellpick/internal/app"
	"github.com/doeshing/shellpick/internal/infrastructure/cli/helpers"
)

// NewInfoCommand creates the info command
func NewInfoCommand(container *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show operating system details",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := container.HostDetector.Detect(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to detect host: %w", err)
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			helpers.RenderHostInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
