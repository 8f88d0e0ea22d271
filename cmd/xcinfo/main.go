// xcinfo inspects the libxc functional tables.
//
// Usage:
//
//	xcinfo version                     - libxc version and citation
//	xcinfo list                        - every available functional
//	xcinfo show <id-or-name>...        - metadata of one or more functionals
//	xcinfo browse                      - interactive, filterable catalog
//	xcinfo serve [--addr :8080]        - JSON API over HTTP
//
// Output of version, list and show is selected with --format
// (table, plain, json or yaml). XCINFO_FORMAT sets the default.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feather-lang/libxc"
)

// options holds the flags shared by every subcommand.
type options struct {
	format    string
	verbose   bool
	polarized bool
	addr      string

	log *zap.Logger
}

func (o *options) polarization() libxc.Polarization {
	if o.polarized {
		return libxc.Polarized
	}
	return libxc.Unpolarized
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{log: zap.NewNop()}

	defaultFormat := os.Getenv("XCINFO_FORMAT")
	if defaultFormat == "" {
		defaultFormat = formatTable
	}

	root := &cobra.Command{
		Use:           "xcinfo",
		Short:         "Inspect the libxc exchange-correlation functional tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(opts.format) {
				return fmt.Errorf("unknown format %q", opts.format)
			}
			log, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.log = log
			libxc.SetLogger(log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.format, "format", defaultFormat, "output format: table, plain, json or yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log native handle activity")
	root.PersistentFlags().BoolVar(&opts.polarized, "polarized", false, "initialize spin-polarized functionals")

	root.AddCommand(
		newVersionCommand(opts),
		newListCommand(opts),
		newShowCommand(opts),
		newBrowseCommand(opts),
		newServeCommand(opts),
	)
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the libxc version and citation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(cmd.OutOrStdout(), opts.format)
			return r.library(libxc.LibraryInfo())
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every available functional",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(cmd.OutOrStdout(), opts.format)
			return r.catalog(libxc.Catalog())
		},
	}
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-name>...",
		Short: "Show the metadata of functionals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]libxc.Info, 0, len(args))
			for _, arg := range args {
				info, err := describe(arg, opts.polarization())
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			r := newRenderer(cmd.OutOrStdout(), opts.format)
			return r.infos(infos)
		},
	}
}

// open initializes the functional named by key. A key that parses as an
// integer is an ID and must be one of the available functionals; anything
// else is a name.
func open(key string, polarization libxc.Polarization) (*libxc.Functional, error) {
	id, err := strconv.ParseInt(key, 10, 32)
	if err != nil {
		return libxc.NewFromName(key, polarization)
	}
	if _, err := libxc.FunctionalName(int32(id)); err != nil {
		return nil, err
	}
	return libxc.New(int32(id), polarization)
}

// describe opens key, snapshots its metadata and releases it.
func describe(key string, polarization libxc.Polarization) (libxc.Info, error) {
	f, err := open(key, polarization)
	if err != nil {
		return libxc.Info{}, err
	}
	defer f.Close()
	return f.Info(), nil
}
