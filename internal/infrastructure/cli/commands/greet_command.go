package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellpick/internal/application/greet"
)

// NewGreetCommand creates the greet command
func NewGreetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting (backend liveness check)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), greet.Format(strings.Join(args, " ")))
			return nil
		},
	}
}
