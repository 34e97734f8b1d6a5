package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"housepriced/internal/common/fsutil"
)

// Defaults applied by WithDefaults.
const (
	DefaultAddr                   = ":5000"
	DefaultModelsDir              = "models"
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "json"
	DefaultMaxBodyBytes           = 1 << 20
	DefaultShutdownTimeoutSeconds = 10
)

// Environment variables read by ApplyEnv.
const (
	EnvMongoURI    = "MONGO_URI"
	EnvAddr        = "HOUSEPRICED_ADDR"
	EnvModelsDir   = "HOUSEPRICED_MODELS_DIR"
	EnvLogLevel    = "HOUSEPRICED_LOG_LEVEL"
	EnvLogFormat   = "HOUSEPRICED_LOG_FORMAT"
	EnvStore       = "HOUSEPRICED_STORE"
	EnvStorePath   = "HOUSEPRICED_STORE_PATH"
	EnvCORSOrigins = "HOUSEPRICED_CORS_ORIGINS"
	EnvConfigPath  = "CONFIG_PATH"
)

// WithDefaults returns c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ModelsDir == "" {
		c.ModelsDir = DefaultModelsDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.ShutdownTimeoutSeconds == 0 {
		c.ShutdownTimeoutSeconds = DefaultShutdownTimeoutSeconds
	}
	return c
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if !fsutil.PathExists(p) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables on c. getenv is usually os.Getenv.
func (c Config) ApplyEnv(getenv func(string) string) Config {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Store.MongoURI, EnvMongoURI)
	set(&c.Addr, EnvAddr)
	set(&c.ModelsDir, EnvModelsDir)
	set(&c.LogLevel, EnvLogLevel)
	set(&c.LogFormat, EnvLogFormat)
	set(&c.Store.Backend, EnvStore)
	set(&c.Store.Path, EnvStorePath)
	if v := strings.TrimSpace(getenv(EnvCORSOrigins)); v != "" {
		c.CORS.Origins = SplitCSV(v)
	}
	return c
}

// SplitCSV splits a comma-separated list, trimming blanks.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %s %s", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Addr); err != nil {
			return fmt.Errorf("invalid config: addr %q: %w", c.Addr, err)
		}
	}
	return nil
}
