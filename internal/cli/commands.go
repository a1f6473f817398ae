package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/born-ml/topology/internal/arch"
	"github.com/born-ml/topology/internal/build"
	"github.com/born-ml/topology/internal/inspect"
	"github.com/born-ml/topology/internal/layers"
	"github.com/born-ml/topology/internal/loader"
	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a description for structural errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := arch.Validate(d); err != nil {
				return err
			}
			if a.cfg.Strict {
				if err := arch.CheckConnectivity(d); err != nil {
					return err
				}
			}
			a.logger.Info("Description is valid.", "path", args[0], "layers", len(d))
			_, err = fmt.Fprintf(a.stdout, "%s: ok (%d layers)\n", args[0], len(d))
			return err
		},
	}
}

func (a *app) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order FILE",
		Short: "Print the canonical layer order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.extend(args[0])
			if err != nil {
				return err
			}
			names := x.Names()
			if !a.cfg.structured() {
				_, err := fmt.Fprintln(a.stdout, strings.Join(names, "\n"))
				return err
			}
			list := make([]any, len(names))
			for i, n := range names {
				list[i] = n
			}
			data, err := loader.EncodeValue(list, a.cfg.outputFormat(loader.FormatJSON))
			if err != nil {
				return err
			}
			return a.write(data)
		},
	}
}

func (a *app) extendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extend FILE",
		Short: "Print the extended description, optionally filtered by --query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.extend(args[0])
			if err != nil {
				return err
			}
			f := a.cfg.outputFormat(loader.FormatJSON)

			if a.cfg.Query == "" {
				data, err := loader.EncodeExtended(x, f)
				if err != nil {
					return err
				}
				return a.write(data)
			}

			matches, err := inspect.Query(x, a.cfg.Query)
			if err != nil {
				return err
			}
			a.logger.Debug("Evaluated query.", "query", a.cfg.Query, "matches", len(matches))
			data, err := loader.EncodeValue(matches, f)
			if err != nil {
				return err
			}
			return a.write(data)
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a description in the --output format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			data, err := loader.EncodeDescription(d, a.cfg.outputFormat(loader.FormatJSON))
			if err != nil {
				return err
			}
			return a.write(data)
		},
	}
}

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build FILE",
		Short: "Instantiate every layer with the built-in layer types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			net, err := build.Instantiate(d, layers.NewRegistry(), build.Options{
				Logger:  a.logger,
				Workers: a.cfg.Workers,
				Strict:  a.cfg.Strict,
			})
			if err != nil {
				return err
			}
			a.logger.Info("Network instantiated.", "layers", net.Len(), "workers", a.cfg.Workers)

			if a.cfg.structured() {
				rows := make([]any, 0, net.Len())
				for name, l := range net.All() {
					rows = append(rows, map[string]any{
						"name":     name,
						"type":     l.Type(),
						"in_size":  l.InSize(),
						"out_size": l.OutSize(),
					})
				}
				data, err := loader.EncodeValue(rows, a.cfg.outputFormat(loader.FormatJSON))
				if err != nil {
					return err
				}
				return a.write(data)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tIN\tOUT")
			for name, l := range net.All() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", name, l.Type(), l.InSize(), l.OutSize())
			}
			return tw.Flush()
		},
	}
}

func (a *app) diagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose FILE",
		Short: "Report every structural and connectivity problem found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}

			var problems []error
			if err := arch.Validate(d); err != nil {
				problems = append(problems, err)
			} else {
				if err := arch.CheckConnectivity(d); err != nil {
					problems = append(problems, err)
				}
				if _, err := arch.CanonicalOrder(d); err != nil {
					problems = append(problems, err)
				}
			}

			if len(problems) == 0 {
				_, err := fmt.Fprintf(a.stdout, "%s: no problems found\n", args[0])
				return err
			}
			for _, p := range problems {
				fmt.Fprintf(a.stdout, "%s: %v\n", args[0], p)
			}
			return &problemsError{count: len(problems), errs: problems}
		},
	}
}

func (a *app) fingerprintCmd() *cobra.Command {
	var expect string
	cmd := &cobra.Command{
		Use:   "fingerprint FILE",
		Short: "Print the SHA-256 of the canonical extended description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.extend(args[0])
			if err != nil {
				return err
			}
			if expect != "" {
				if err := loader.VerifyFingerprint(x, expect); err != nil {
					return err
				}
			}
			sum, err := loader.FingerprintHex(x)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%s  %s\n", sum, args[0])
			return err
		},
	}
	cmd.Flags().StringVar(&expect, "expect", "", "fail unless the fingerprint equals this hex digest")
	return cmd
}

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the built-in layer types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.stdout, strings.Join(layers.NewRegistry().SupportedTypes(), "\n"))
			return err
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "topology %s\n", Version)
			return err
		},
	}
}

// problemsError summarizes diagnose findings that were already printed.
// The individual problems stay reachable through errors.Is and errors.As.
type problemsError struct {
	count int
	errs  []error
}

func (e *problemsError) Error() string {
	if e.count == 1 {
		return "1 problem found"
	}
	return fmt.Sprintf("%d problems found", e.count)
}

func (e *problemsError) Unwrap() []error {
	return e.errs
}
