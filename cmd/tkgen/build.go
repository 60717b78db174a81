package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tkgen/pkg/ir"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		format string
		output string
		preset string
	)
	cmd := &cobra.Command{
		Use:   "build <source>",
		Short: "Build the tkir document for a source tree",
		Long: `Build parses a JSON or YAML source tree and prints the normalized tkir
document. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := ir.ParseEncoding(format)
			if err != nil {
				return err
			}
			req, err := a.readRequest(args[0], false)
			if err != nil {
				return err
			}
			orch, err := a.newOrchestrator(pipelineConfig{preset: preset})
			if err != nil {
				return err
			}
			doc, err := orch.Build(cmd.Context(), req)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := ir.Write(&buf, doc, enc); err != nil {
				return err
			}
			return writeOutput(output, cmd.OutOrStdout(), buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(ir.EncodingJSON), "document encoding: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset patch file applied to the source tree")
	return cmd
}
