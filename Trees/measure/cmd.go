package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "WAVL"

	keyNodes     = "nodes"
	keyOps       = "ops"
	keySeed      = "seed"
	keyImpl      = "impl"
	keyDot       = "dot"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

type measureConfiguration struct {
	Nodes     int
	Ops       int
	Seed      int64
	Impl      string
	DotFile   string
	LogLevel  string
	LogFormat string
}

func newMeasureCmd(out io.Writer) *cobra.Command {
	config := &measureConfiguration{}
	var cmd = &cobra.Command{
		Use:   "measure",
		Short: "Measures the rebalancing work of an ordered set under a random workload",
		Long: `Fills an ordered set with random keys, runs random inserts, lookups and removals on it and
reports per operation type the average number of rotations and visited nodes.
Every flag can also be set through the environment, e.g. --log-level through WAVL_LOG_LEVEL.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(cmd.Context(), config, out)
		},
	}
	config.addConfigurationFlags(cmd)
	return cmd
}

func (c *measureConfiguration) addConfigurationFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&c.Nodes, keyNodes, 1_000_000, "number of distinct keys to fill the set with")
	cmd.Flags().IntVar(&c.Ops, keyOps, 0, "number of random operations after the fill (default is nodes/5)")
	cmd.Flags().Int64Var(&c.Seed, keySeed, 0, "seed of the random source, time based when 0")
	cmd.Flags().StringVar(&c.Impl, keyImpl, implWAVL, fmt.Sprintf("ordered set implementation, one of: %s", strings.Join(impls, ", ")))
	cmd.Flags().StringVar(&c.DotFile, keyDot, "", "write the final tree in Graphviz DOT format to this file (wavl only)")
	cmd.Flags().StringVar(&c.LogLevel, keyLogLevel, "info", "logging level, one of: debug, info, warn, error")
	cmd.Flags().StringVar(&c.LogFormat, keyLogFormat, "console", "log format, one of: console, json")
}

// initializeConfig binds the flags to ENV variables.
func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	// a flag like --nodes binds to an environment variable WAVL_NODES.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to WAVL_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
			}
		}
	})
	return errors.Join(bindFlagErr...)
}

func newLogger(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
	}
	switch strings.ToLower(format) {
	case "json":
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func runMeasure(ctx context.Context, config *measureConfiguration, out io.Writer) error {
	log, err := newLogger(out, config.LogLevel, config.LogFormat)
	if err != nil {
		return err
	}
	if config.Nodes <= 0 {
		return fmt.Errorf("invalid %s %d, must be positive", keyNodes, config.Nodes)
	}
	ops := config.Ops
	if ops <= 0 {
		ops = config.Nodes / 5
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	set, err := newSet(config.Impl, config.Nodes)
	if err != nil {
		return err
	}
	var dw interface{ WriteDot(io.Writer) error }
	if config.DotFile != "" {
		var ok bool
		if dw, ok = set.(interface{ WriteDot(io.Writer) error }); !ok {
			return fmt.Errorf("implementation %q can't be written as DOT", config.Impl)
		}
	}
	log.Debug().Str("impl", config.Impl).Int(keyNodes, config.Nodes).Int(keyOps, ops).Int64(keySeed, seed).Msg("starting")

	w := &workload{nodes: config.Nodes, ops: ops, rng: rand.New(rand.NewSource(seed))}
	r, err := w.run(ctx, config.Impl, set)
	if err != nil {
		return err
	}
	r.log(log)

	if dw != nil {
		if err := writeDot(config.DotFile, dw); err != nil {
			return fmt.Errorf("writing %s: %w", config.DotFile, err)
		}
		log.Info().Str("file", config.DotFile).Msg("tree written")
	}
	return nil
}

func writeDot(path string, dw interface{ WriteDot(io.Writer) error }) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return errors.Join(dw.WriteDot(f), f.Close())
}
