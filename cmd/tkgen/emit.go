package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/orchestrator"
	"github.com/goliatone/go-tkgen/pkg/targets"
)

type emitFlags struct {
	output string
	preset string
}

func newEmitCmd(a *app) *cobra.Command {
	var flags emitFlags
	cmd := &cobra.Command{
		Use:   "emit <source|ir>",
		Short: "Emit a GUI program for a language and toolkit",
		Long: `Emit builds the source tree (or reads a tkir document) and composes the
output for the requested target. Use "-" to read from stdin.

Without --target or --language an interactive terminal is asked to pick a
supported pair; otherwise tcl+tk is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEmit(cmd, args[0], flags)
		},
	}

	f := cmd.Flags()
	f.StringP(keyTarget, "t", "", "target as language+toolkit (e.g. python+tk)")
	f.StringP(keyLanguage, "l", "", "output language")
	f.StringP(keyToolkit, "k", "", "toolkit (defaults to the language's default)")
	f.Bool(keyComments, false, "include the banner and section comments")
	f.String(keyIndent, "", `indent unit: "tab", a space count, or a literal string`)
	f.Bool(keyHighlight, false, "syntax highlight output written to a terminal")
	f.String(keyStyle, defaultStyle, "chroma style used by --highlight")
	f.StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	f.StringVar(&flags.preset, "preset", "", "preset patch file applied to the source tree")
	for _, key := range []string{keyTarget, keyLanguage, keyToolkit, keyComments, keyIndent, keyHighlight, keyStyle} {
		_ = a.v.BindPFlag(key, f.Lookup(key))
	}
	return cmd
}

func (a *app) runEmit(cmd *cobra.Command, arg string, flags emitFlags) error {
	req, err := a.readRequest(arg, true)
	if err != nil {
		return err
	}

	orch, err := a.newOrchestrator(pipelineConfig{
		compose: compose.Options{
			IncludeComments: a.v.GetBool(keyComments),
			IndentUnit:      indentUnit(a.v.GetString(keyIndent)),
		},
		preset: flags.preset,
	})
	if err != nil {
		return err
	}

	req.Target = a.v.GetString(keyTarget)
	req.Language = a.v.GetString(keyLanguage)
	req.Toolkit = a.v.GetString(keyToolkit)
	if req.Target == "" && req.Language == "" && a.interactive() {
		target, err := a.chooseTarget(orch.Registry())
		if err != nil {
			return err
		}
		req.Target = target
	}

	result, err := orch.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	a.logger.Debug("tkgen: emitted",
		zap.String("target", result.Target.String()),
		zap.Int("widgets", len(result.Document.Widgets)),
		zap.Int("warnings", len(result.Warnings)),
	)

	if flags.output == "" && a.v.GetBool(keyHighlight) {
		var buf bytes.Buffer
		if err := highlight(&buf, result.Source, result.Target.Language, a.v.GetString(keyStyle)); err == nil {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		a.logger.Debug("tkgen: highlighting unavailable, writing plain output")
	}
	return writeOutput(flags.output, cmd.OutOrStdout(), []byte(result.Source))
}

// chooseTarget asks for one of the supported pairs, defaulting to the
// pipeline default.
func (a *app) chooseTarget(reg *compose.Registry) (string, error) {
	var options []string
	for _, pair := range targets.Matrix(reg) {
		if pair.Supported {
			options = append(options, pair.String())
		}
	}
	if len(options) == 0 {
		return "", fmt.Errorf("tkgen: no supported targets registered")
	}
	def := options[0]
	for _, option := range options {
		if strings.EqualFold(option, orchestrator.DefaultTarget) {
			def = option
		}
	}
	return a.prompter.Select("Target", options, def)
}
