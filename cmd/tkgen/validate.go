package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tkgen/pkg/ir"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <ir>",
		Short: "Check a tkir document for structural errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			doc, err := ir.Decode(data)
			if err != nil {
				return fmt.Errorf("tkgen: %s: %w", name, err)
			}
			if err := doc.Validate(); err != nil {
				return fmt.Errorf("tkgen: %s: %w", name, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d widgets, %d handlers, %d bindings)\n",
				name, len(doc.Widgets), len(doc.Handlers), len(doc.DataBindings))
			return err
		},
	}
}
