package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jmath/jmath/internal/config"
	"github.com/jmath/jmath/internal/logging"
	"github.com/jmath/jmath/internal/store"
)

// v merges flags, environment and the optional config file.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "jmath",
	Short: "AI math tutor",
	Long:  "J-Math: step-by-step solutions, concept explanations, practice problems and concept maps from a language model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("provider", "", "LLM provider: openrouter, openai, anthropic, gemini or mock (overrides JMATH_LLM_PROVIDER)")
	pf.String("model", "", "Model for the OpenRouter provider (overrides OPENROUTER_MODEL)")
	pf.String("db", "", "Path to SQLite database file for the LLM request log (overrides JMATH_DB)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.Duration("timeout", 0, "Ceiling for each outbound completion request")
	pf.Int("retry-attempts", 1, "Completion attempts per request; 1 disables retries")

	// BindPFlag only fails on a nil flag.
	_ = v.BindPFlag("provider", pf.Lookup("provider"))
	_ = v.BindPFlag("model", pf.Lookup("model"))
	_ = v.BindPFlag("db", pf.Lookup("db"))
	_ = v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = v.BindPFlag("timeout", pf.Lookup("timeout"))
	_ = v.BindPFlag("retry_attempts", pf.Lookup("retry-attempts"))

	serveCmd.Flags().String("listen", "", "Address to listen on (overrides JMATH_LISTEN)")
	_ = v.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	// `jmath` alone serves, so it takes serve's flags too.
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	cobra.OnInitialize(func() {
		if path, _ := rootCmd.PersistentFlags().GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
	})

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration and builds the process logger.
func loadConfig() (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(cfg.LogLevel, os.Stderr), nil
}

// errNoEventLog is returned by the llm subcommands when no database is set.
// serve records only when --db or JMATH_DB names one.
var errNoEventLog = errors.New("no event log configured: set --db or JMATH_DB to the database jmath serve records to")

// resolveDBPath returns the database path from --db, JMATH_DB or the config
// file.
func resolveDBPath() (string, error) {
	p := v.GetString("db")
	if p == "" {
		return "", errNoEventLog
	}
	return p, store.EnsureDir(p)
}
