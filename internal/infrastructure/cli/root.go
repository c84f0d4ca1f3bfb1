package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellpick/internal/app"
	"github.com/doeshing/shellpick/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, app.Options{
		Verbose:    opts.Verbose,
		ConfigPath: opts.ConfigPath,
	})
	if err != nil {
		return nil, err
	}
	container.Clipboard = NewClipboard()

	return newRootCmd(container), nil
}

func newRootCmd(container *app.Container) *cobra.Command {
	var listOpts commands.ListOptions

	root := &cobra.Command{
		Use:   "shellpick",
		Short: "shellpick - list the shells installed on this host",
		Long: "shellpick enumerates the command-line shells a user can start on this host.\n" +
			"On Windows it probes PATH for known interpreters; elsewhere it reads /etc/shells.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunList(cmd, container, listOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	commands.AddListFlags(root, &listOpts)

	root.AddCommand(commands.NewListCommand(container))
	root.AddCommand(commands.NewGreetCommand())
	root.AddCommand(commands.NewReadyCommand())
	root.AddCommand(commands.NewOpenCommand(container))
	root.AddCommand(commands.NewInfoCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
