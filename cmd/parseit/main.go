// FILE: lixenwraith/parseit/cmd/parseit/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/parseit"
)

// rootFlags holds resolver settings shared by all subcommands
type rootFlags struct {
	folder     string
	priority   []string
	prefix     string
	noUpper    bool
	noEstimate bool
	noRecurse  bool
	cache      bool
	envFile    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "parseit",
		Short:        "Resolve configuration keys from CLI args, env vars and config files",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.folder, "folder", "f", "", "config folder to scan (default: working directory)")
	pf.StringSliceVarP(&flags.priority, "priority", "p", nil, "comma-separated source priority (default: cli_args,env_vars,json,...,xml)")
	pf.StringVar(&flags.prefix, "prefix", "", "environment variable prefix")
	pf.BoolVar(&flags.noUpper, "no-upper", false, "do not uppercase environment variable names")
	pf.BoolVar(&flags.noEstimate, "no-estimate", false, "return raw values without type estimation")
	pf.BoolVar(&flags.noRecurse, "no-recurse", false, "do not scan subfolders")
	pf.BoolVar(&flags.cache, "cache", false, "cache parsed file contents")
	pf.StringVar(&flags.envFile, "env-file", "", "load environment variables from a .env file first")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log discovery and resolution details")

	root.AddCommand(newGetCmd(flags), newExplainCmd(flags), newFilesCmd(flags))
	return root
}

func newGetCmd(flags *rootFlags) *cobra.Command {
	var (
		defaultValue string
		required     bool
	)

	cmd := &cobra.Command{
		Use:   "get KEY [-- ARGS...]",
		Short: "Print the resolved value of KEY as JSON",
		Long: "Print the resolved value of KEY as JSON.\n" +
			"Arguments after -- are searched as the cli_args source.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.build(forwardedArgs(cmd, args))
			if err != nil {
				return err
			}

			var opts []parseit.ResolveOption
			if cmd.Flags().Changed("default") {
				opts = append(opts, parseit.WithDefault(defaultValue))
			}
			if required {
				opts = append(opts, parseit.Required())
			}

			value, err := r.Resolve(args[0], opts...)
			if err != nil {
				return err
			}

			out, err := gojson.Marshal(value)
			if err != nil {
				return fmt.Errorf("failed to encode value: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "value returned when no source defines KEY")
	cmd.Flags().BoolVarP(&required, "required", "r", false, "fail when no source defines KEY")
	return cmd
}

func newExplainCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain KEY [-- ARGS...]",
		Short: "List every source defining KEY, winner first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.build(forwardedArgs(cmd, args))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), r.Explain(args[0]))
			return nil
		},
	}
}

func newFilesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "Print the discovered config files as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.build([]string{})
			if err != nil {
				return err
			}

			out, err := gojson.MarshalIndent(r.Files(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode file index: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

// forwardedArgs returns the arguments given after "--"
func forwardedArgs(cmd *cobra.Command, args []string) []string {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return []string{}
	}
	return args[dash:]
}

// build creates a resolver from the command-line settings
func (f *rootFlags) build(cliArgs []string) (*parseit.Resolver, error) {
	if f.envFile != "" {
		if err := godotenv.Load(f.envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file '%s': %w", f.envFile, err)
		}
	}

	logger := zap.NewNop()
	if f.verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	b := parseit.NewBuilder().
		WithEnvPrefix(f.prefix).
		WithForceEnvUppercase(!f.noUpper).
		WithTypeEstimate(!f.noEstimate).
		WithRecurse(!f.noRecurse).
		WithFileCache(f.cache).
		WithArgs(cliArgs).
		WithLogger(logger)

	if f.folder != "" {
		b.WithFolder(f.folder)
	}
	if len(f.priority) > 0 {
		sources := make([]parseit.Source, 0, len(f.priority))
		for _, p := range f.priority {
			sources = append(sources, parseit.Source(strings.TrimSpace(p)))
		}
		b.WithPriority(sources...)
	}

	return b.Build()
}
