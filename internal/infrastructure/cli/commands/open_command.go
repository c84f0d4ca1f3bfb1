package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/shellpick/internal/app"
	"github.com/doeshing/shellpick/internal/application/launch"
	"github.com/doeshing/shellpick/internal/application/open"
)

// NewOpenCommand creates the open command
func NewOpenCommand(container *app.Container) *cobra.Command {
	var shell string
	var force bool

	cmd := &cobra.Command{
		Use:   "open [folder]",
		Short: "Start a detected shell, optionally in a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return container.OpenService.Open(cmd.Context(), open.Request{
				Shell:  shell,
				Launch: launch.Resolve(args),
				Force:  force,
			})
		},
	}

	cmd.Flags().StringVarP(&shell, "shell", "s", "", "Shell to start (name or path, defaults to the first detected)")
	cmd.Flags().BoolVar(&force, "force", false, "Start the shell even if it was not detected")
	return cmd
}
