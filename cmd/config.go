package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	pkgerrors "github.com/pkg/errors"
)

// DefaultConfigFile is read when present; every key may also come from the
// environment or a .env file.
const DefaultConfigFile = "config.yaml"

// Config holds the process settings. Keys are the upper-case environment
// variable names lower-cased, so HTTP_PORT is http_port in config.yaml.
type Config struct {
	HTTPPort string `koanf:"http_port" validate:"required,numeric"`

	// MongoURI carries the database name in its path; "galapagos" when absent.
	MongoURI string `koanf:"mongo_uri" validate:"required,uri"`

	Neo4jURI      string `koanf:"neo4j_uri"      validate:"required,uri"`
	Neo4jUser     string `koanf:"neo4j_user"     validate:"required"`
	Neo4jPassword string `koanf:"neo4j_password" validate:"required"`
	Neo4jDatabase string `koanf:"neo4j_database"`

	LogLevel  string `koanf:"log_level"  validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogPretty bool   `koanf:"log_pretty"`

	ReconcileSchedule string `koanf:"reconcile_schedule"`
}

func defaultConfig() Config {
	return Config{
		HTTPPort:          "8080",
		LogLevel:          "info",
		ReconcileSchedule: "@every 1m",
	}
}

// LoadConfig layers, from lowest to highest precedence: defaults, the YAML
// file at path (skipped when missing), a .env file in the working directory
// and the process environment. The result is validated.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, pkgerrors.Wrap(err, "load .env")
	}

	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, pkgerrors.Wrapf(err, "read config file %s", path)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(key), value
		},
	}), nil); err != nil {
		return Config{}, pkgerrors.Wrap(err, "load environment")
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, pkgerrors.Wrap(err, "unmarshal config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, pkgerrors.Wrap(err, "invalid config")
	}

	return cfg, nil
}
