package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	pkgconfig "github.com/weiawesome/rowid/pkg/config"
	"github.com/weiawesome/rowid/pkg/rowid"
)

type Config struct {
	HTTP  ServerConfig `mapstructure:"http"`
	GRPC  ServerConfig `mapstructure:"grpc"`
	RowID RowIDConfig  `mapstructure:"rowid"`
	Batch BatchConfig  `mapstructure:"batch"`
	Log   LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string
	Port int
}

type RowIDConfig struct {
	Alphabet         string `mapstructure:"alphabet"`
	RandomnessLength int    `mapstructure:"randomness_length"`
}

type BatchConfig struct {
	MaxCount int `mapstructure:"max_count"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// ConfigFileEnv names an explicit config file. When set, Load reads that file
// instead of searching ./config.
const ConfigFileEnv = "CONFIG_FILE"

// Load reads the file named by CONFIG_FILE, or ./config/config.yaml if
// present, then the environment.
func Load() (*Config, error) {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return LoadFile(path)
	}
	return LoadFrom("./config")
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir string) (*Config, error) {
	v, err := pkgconfig.Load(dir, "config")
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// LoadFile is Load with an explicit config file, which must exist.
func LoadFile(path string) (*Config, error) {
	v, err := pkgconfig.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	// Set defaults
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8090)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50053)
	v.SetDefault("rowid.alphabet", rowid.DefaultAlphabet)
	v.SetDefault("rowid.randomness_length", rowid.DefaultRandomnessLength)
	v.SetDefault("batch.max_count", 1000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("http.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("rowid.alphabet", "ROWID_ALPHABET")
	v.BindEnv("rowid.randomness_length", "ROWID_RANDOMNESS_LENGTH")
	v.BindEnv("batch.max_count", "BATCH_MAX_COUNT")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// Builder returns a rowid.Builder carrying the configured alphabet and
// randomness length. Validation happens in Finalize.
func (c RowIDConfig) Builder() rowid.Builder {
	return rowid.NewBuilder().
		WithAlphabet(c.Alphabet).
		WithDefaultRandomnessLength(c.RandomnessLength)
}
