package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trucite/trucite/internal/model"
)

var (
	cfgFile string
	verbose bool
	cfg     *model.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trucite",
	Short: "TruCite - claim extraction and verification engine",
	Long: `TruCite ingests free-form text, extracts discrete factual claims,
fingerprints the input for audit purposes, scores it for credibility,
and cross-references claims against a known-fact index.

The current scoring strategy is a documented placeholder: it reports the
same score and verdict for every input until a real credibility model
replaces it. Treat every verdict accordingly.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		return initLogger(cfg.Log)
	},
}

// Execute runs the root command
func Execute() error {
	defer func() {
		_ = zap.L().Sync()
	}()
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("trucite v0.2.0")
	},
	// Version must work without config or logger.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

func init() {
	cobra.OnInitialize(initViper)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.trucite/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initViper reads in the config file and TRUCITE_* environment variables
func initViper() {
	// AutomaticEnv only resolves keys viper already knows, so every config
	// key must be registered before TRUCITE_* variables can override it.
	seedDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.trucite")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TRUCITE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// seedDefaults registers every config key with viper so that config file
// entries and TRUCITE_* environment variables resolve against them.
func seedDefaults(c *model.Config) {
	viper.SetDefault("server.port", c.Server.Port)
	viper.SetDefault("server.rate_per_second", c.Server.RatePerSecond)
	viper.SetDefault("server.rate_burst", c.Server.RateBurst)
	viper.SetDefault("server.allowed_origins", c.Server.AllowedOrigins)
	viper.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	viper.SetDefault("store.driver", c.Store.Driver)
	viper.SetDefault("store.dsn", c.Store.DSN)
	viper.SetDefault("store.queue_size", c.Store.QueueSize)
	viper.SetDefault("store.sink_workers", c.Store.SinkWorkers)
	viper.SetDefault("cache.enabled", c.Cache.Enabled)
	viper.SetDefault("cache.ttl", c.Cache.TTL)
	viper.SetDefault("engine.version", c.Engine.Version)
	viper.SetDefault("engine.scorer", c.Engine.Scorer)
	viper.SetDefault("log.level", c.Log.Level)
	viper.SetDefault("log.format", c.Log.Format)
}

// loadConfig layers the config file and environment over the defaults
func loadConfig() (*model.Config, error) {
	c := model.DefaultConfig()
	if err := viper.Unmarshal(c); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return c, nil
}

// initLogger installs the global zap logger
func initLogger(lc model.LogConfig) error {
	var zapCfg zap.Config
	if lc.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
