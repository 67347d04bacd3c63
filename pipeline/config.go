package pipeline

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.codegraph.dev/jsoncodegen/backend"
)

// Flags holds CLI flag names for pipeline configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Lang   string
	Config string
}

// Config holds CLI flag values for pipeline configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewPipeline] to create a [Pipeline].
type Config struct {
	Flags  Flags
	Lang   string
	Config string
	Logger *slog.Logger
	Events chan<- StageEvent
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Lang:   "lang",
		Config: "config",
	}

	return &Config{Flags: f, Logger: slog.Default()}
}

// RegisterFlags adds pipeline flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Lang, c.Flags.Lang, "l", "",
		"target backend (see --lang completions for the registered set)")
	flags.StringVar(&c.Config, c.Flags.Config, "",
		"path to a YAML run configuration adding reserved identifiers and identifier limits")
}

// RegisterCompletions registers shell completions for pipeline flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Lang,
		cobra.FixedCompletions(backend.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Lang, err)
	}

	return nil
}

// NewPipeline builds a [Pipeline] from the configured flag values, loading
// and validating the run configuration file when --config is set.
func (c *Config) NewPipeline() (*Pipeline, error) {
	if c.Lang == "" {
		return nil, fmt.Errorf("%w: --%s is required", ErrInvalidOption, c.Flags.Lang)
	}

	if _, ok := backend.Lookup(c.Lang); !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnsupportedLanguage, c.Lang, backend.Names())
	}

	opts := []Option{WithLang(c.Lang)}

	if c.Logger != nil {
		opts = append(opts, WithLogger(c.Logger))
	}

	if c.Events != nil {
		opts = append(opts, WithEvents(c.Events))
	}

	if c.Config != "" {
		data, err := os.ReadFile(c.Config)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		rc, err := LoadRunConfig(data)
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithRunConfig(rc))
	}

	return New(opts...), nil
}
