package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-tkgen/internal/logging"
)

// Configuration keys shared by flags, the config file and TKGEN_* variables.
const (
	keyLanguage     = "language"
	keyToolkit      = "toolkit"
	keyTarget       = "target"
	keyComments     = "comments"
	keyVerbose      = "verbose"
	keyIndent       = "indent"
	keyTheme        = "theme"
	keyThemeVariant = "theme_variant"
	keyMaxDepth     = "max_depth"
	keyHighlight    = "highlight"
	keyStyle        = "style"
)

const configName = ".tkgen"

type app struct {
	v           *viper.Viper
	logger      *zap.Logger
	prompter    Prompter
	stdin       io.Reader
	interactive func() bool
	configFile  string
}

func newApp() *app {
	return &app{
		v:           viper.New(),
		logger:      zap.NewNop(),
		prompter:    surveyPrompter{},
		stdin:       os.Stdin,
		interactive: stdinIsTerminal,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tkgen",
		Short: "Generate GUI programs from UI source trees",
		Long: `tkgen normalizes a UI source tree (JSON or YAML) into the tkir
intermediate document and emits it for a language and toolkit pair.

Examples:
  tkgen emit ui.json --target tcl+tk
  tkgen emit ui.yaml --language python --comments -o app.py
  tkgen build ui.json --format yaml
  tkgen targets`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default .tkgen.yaml in the working or home directory)")
	flags.BoolP(keyVerbose, "v", false, "log debug output to stderr")
	flags.Int("max-depth", 0, "maximum widget nesting depth (0 keeps the default)")
	flags.String(keyTheme, "", "theme manifest (YAML or JSON) supplying default colors")
	flags.String("theme-variant", "", "theme variant to select")
	_ = a.v.BindPFlag(keyVerbose, flags.Lookup(keyVerbose))
	_ = a.v.BindPFlag(keyMaxDepth, flags.Lookup("max-depth"))
	_ = a.v.BindPFlag(keyTheme, flags.Lookup(keyTheme))
	_ = a.v.BindPFlag(keyThemeVariant, flags.Lookup("theme-variant"))

	root.AddCommand(
		newBuildCmd(a),
		newEmitCmd(a),
		newTargetsCmd(a),
		newValidateCmd(a),
	)
	return root
}

func (a *app) setup() error {
	a.v.SetEnvPrefix("TKGEN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	} else {
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("tkgen: read config: %w", err)
		}
	}

	a.logger = logging.New(a.v.GetBool(keyVerbose))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("tkgen: using config file", zap.String("path", filepath.Clean(used)))
	}
	return nil
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
