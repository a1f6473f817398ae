// Package cli implements the topology command line tool.
package cli

import (
	"io"
	"log/slog"

	"github.com/born-ml/topology/internal/arch"
	"github.com/born-ml/topology/internal/loader"
	"github.com/spf13/cobra"
)

// Version is reported by the version subcommand.
const Version = "v0.1.0-dev"

// app carries the resolved configuration into subcommands.
type app struct {
	flags  Config
	cfg    *Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand returns the command tree. Results go to stdout, logs and
// errors to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "topology",
		Short:         "Validate, order, extend and instantiate layer graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := NewConfig(a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, a.stderr)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.LogFormat, "log-format", "text", "log format (text, json)")
	pf.StringVar(&a.flags.InputFormat, "format", "", "input format (json, yaml, hcl); detected from the extension by default")
	pf.StringVarP(&a.flags.Output, "output", "o", "", "output format (text, json, yaml, hcl)")
	pf.BoolVar(&a.flags.Strict, "strict", false, "also report cycles and disconnected layers explicitly")
	pf.IntVarP(&a.flags.Workers, "workers", "w", 1, "concurrent layer constructors for build")
	pf.StringVarP(&a.flags.Query, "query", "q", "", "JSONPath selector applied to extended output")

	root.AddCommand(
		a.validateCmd(),
		a.orderCmd(),
		a.extendCmd(),
		a.convertCmd(),
		a.buildCmd(),
		a.diagnoseCmd(),
		a.fingerprintCmd(),
		a.typesCmd(),
		a.versionCmd(),
	)
	return root
}

// Execute runs the command tree with args and prints any error to stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
	}
	return err
}

func (a *app) load(path string) (arch.Description, error) {
	var (
		d   arch.Description
		err error
	)
	if a.cfg.InputFormat != "" {
		f, _ := loader.ParseFormat(a.cfg.InputFormat)
		d, err = loader.LoadAs(path, f)
	} else {
		d, err = loader.Load(path)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Loaded description.", "path", path, "layers", len(d))
	return d, nil
}

func (a *app) extend(path string) (*arch.Extended, error) {
	d, err := a.load(path)
	if err != nil {
		return nil, err
	}
	return arch.ExtendWithOptions(d, arch.ExtendOptions{Strict: a.cfg.Strict})
}

func (a *app) write(data []byte) error {
	_, err := a.stdout.Write(data)
	return err
}
