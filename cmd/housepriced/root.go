package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"housepriced/internal/config"
	"housepriced/internal/logging"
	"housepriced/internal/store"
)

// options holds the persistent flags. Empty values leave the config alone.
type options struct {
	configPath  string
	addr        string
	modelsDir   string
	logLevel    string
	logFormat   string
	store       string
	corsOrigins string

	getenv func(string) string
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	opts := &options{getenv: getenv}
	root := &cobra.Command{
		Use:           "housepriced",
		Short:         "House price prediction service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml, .json, .toml); defaults to CONFIG_PATH")
	pf.StringVar(&opts.addr, "addr", "", "HTTP listen address (default :5000)")
	pf.StringVar(&opts.modelsDir, "models-dir", "", "Directory holding the model artifacts (default ./models)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error|off")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: json|console")
	pf.StringVar(&opts.store, "store", "", "Prediction store: mongo|sqlite|badger|memory|none")
	pf.StringVar(&opts.corsOrigins, "cors-origins", "", "Comma separated CORS origins (default *)")

	root.AddCommand(
		newServeCmd(opts),
		newPredictCmd(opts),
		newModelsCmd(opts),
		newPingDBCmd(opts),
	)
	return root
}

// load resolves the configuration: file, then .env and environment, then flags.
func (o *options) load() (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	var cfg config.Config
	path := o.configPath
	if path == "" {
		path = o.getenv(config.EnvConfigPath)
	}
	if path != "" {
		c, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = c
	}
	cfg = cfg.ApplyEnv(o.getenv)

	if o.addr != "" {
		cfg.Addr = o.addr
	}
	if o.modelsDir != "" {
		cfg.ModelsDir = o.modelsDir
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	if o.store != "" {
		cfg.Store.Backend = o.store
	}
	if o.corsOrigins != "" {
		cfg.CORS.Origins = config.SplitCSV(o.corsOrigins)
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	return logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})
}

// storeConfig maps the file/env store section onto store.Config.
func storeConfig(cfg config.Config, log zerolog.Logger) store.Config {
	s := cfg.Store
	return store.Config{
		Backend:         s.Backend,
		MongoURI:        s.MongoURI,
		Database:        s.Database,
		Collection:      s.Collection,
		Path:            s.Path,
		WriteTimeout:    time.Duration(s.WriteTimeoutMS) * time.Millisecond,
		BreakerFailures: uint32(s.BreakerFailures),
		BreakerCooldown: time.Duration(s.BreakerCooldownSeconds) * time.Second,
		Logger:          log,
	}
}
