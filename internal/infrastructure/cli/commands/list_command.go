package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellpick/internal/app"
	"github.com/doeshing/shellpick/internal/application/enumerate"
	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/infrastructure/cli/helpers"
	"github.com/doeshing/shellpick/internal/infrastructure/watch"
)

// ListOptions holds flags of the list command.
type ListOptions struct {
	JSON     bool
	Strategy string
	Copy     bool
	Watch    bool
}

// NewListCommand creates the list command
func NewListCommand(container *app.Container) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the shells installed on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunList(cmd, container, opts)
		},
	}

	AddListFlags(cmd, &opts)
	return cmd
}

// AddListFlags registers list flags on cmd; the root command reuses them.
func AddListFlags(cmd *cobra.Command, opts *ListOptions) {
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "Discovery strategy (auto|windows|posix|none), default from config")
	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "Copy the list to the clipboard")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Keep running and print the list again when it changes")
}

// RunList enumerates shells and renders them.
func RunList(cmd *cobra.Command, container *app.Container, opts ListOptions) error {
	svc := container.Enumerator
	if opts.Strategy != "" {
		var err error
		if svc, err = container.NewEnumerator(opts.Strategy); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.Watch {
		return watchList(cmd.Context(), out, container, svc, opts)
	}

	list := svc.List(cmd.Context())
	if err := render(out, list, opts); err != nil {
		return err
	}
	if opts.Copy {
		return copyList(cmd.ErrOrStderr(), container, list)
	}
	return nil
}

func watchList(ctx context.Context, out io.Writer, container *app.Container, svc *enumerate.Service, opts ListOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w := &watch.Watcher{
		List:     svc.Scan,
		Paths:    watch.Paths(container.Config.Discovery, svc.Strategy.Name(), container.Env),
		Relevant: watch.Filter(container.Config.Discovery, svc.Strategy.Name()),
		Logger:   container.Logger,
	}
	var renderErr error
	err := w.Run(ctx, func(list domain.ShellList) {
		svc.Record(list)
		if renderErr == nil {
			renderErr = render(out, list, opts)
		}
		if !opts.JSON {
			fmt.Fprintln(out)
		}
	})
	if err != nil {
		return err
	}
	return renderErr
}

func render(out io.Writer, list domain.ShellList, opts ListOptions) error {
	if opts.JSON {
		return helpers.RenderShellListJSON(out, list)
	}
	helpers.RenderShellList(out, list, helpers.IsTerminal(out))
	return nil
}

func copyList(errOut io.Writer, container *app.Container, list domain.ShellList) error {
	if container.Clipboard == nil || !container.Clipboard.Enabled() {
		return errors.New(ErrClipboardUnavailable)
	}
	if list.Empty() {
		return nil
	}
	if err := container.Clipboard.Copy(strings.Join(list.Strings(), "\n")); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	fmt.Fprintln(errOut, MsgCopiedToClipboard)
	return nil
}
