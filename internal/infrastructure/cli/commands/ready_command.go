package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/shellpick/internal/application/launch"
)

// NewReadyCommand creates the ready command
func NewReadyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ready [folder]",
		Short: "Emit the open-folder event for the launch argument",
		Long:  "Prints {\"event\":\"open-folder\",\"payload\":...} where payload is the folder, or \"none\" when no folder was given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch.Emit(cmd.OutOrStdout(), launch.Resolve(args))
		},
	}
}
