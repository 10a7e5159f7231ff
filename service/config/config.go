package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// -- Host and HTTP --

	Host string `env:"DOCPRESS_HOST"`
	Port int    `env:"DOCPRESS_PORT" envDefault:"3000"`

	// -- Database --

	DatabaseDSN  string `env:"DOCPRESS_DATABASE_DSN" envDefault:"docpress.db"`
	DatabaseType string `env:"DOCPRESS_DATABASE_TYPE" envDefault:"sqlite"`

	// -- Rendering defaults --

	// DefaultPageWidth is used when a render request omits one.
	DefaultPageWidth uint `env:"DOCPRESS_DEFAULT_PAGE_WIDTH" envDefault:"80"`

	// -- Render queue worker --

	RenderQueuePollIntervalMS int `env:"DOCPRESS_RENDER_POLL_INTERVAL_MS" envDefault:"200"`
	RenderBatchSize           int `env:"DOCPRESS_RENDER_BATCH_SIZE" envDefault:"40"`

	// -- Render cache --

	// RedisAddr is the address of an optional render cache. Empty
	// disables caching entirely.
	RedisAddr string `env:"DOCPRESS_REDIS_ADDR" envDefault:""`
	RedisTTL  int    `env:"DOCPRESS_REDIS_TTL_SECONDS" envDefault:"3600"`

	// -- Layout profiles --

	// ProfilesFile, if set, points to a YAML/JSON file of named page
	// layout profiles, loaded independently of the env-var config
	// above.
	ProfilesFile string `env:"DOCPRESS_PROFILES_FILE" envDefault:""`

	// -- Testing --

	TestRenderBacklog int `env:"TEST_RENDER_BACKLOG" envDefault:"4"`
}

type ConfigOptions struct {
	EnvFilePath string
}

// ParseConfig parses environment variables, optionally loaded first
// from opt.EnvFilePath, to a valid Config.
func ParseConfig(opt *ConfigOptions) (*Config, error) {
	if opt != nil && opt.EnvFilePath != "" {
		// Load variables from a file to the environment of the process
		if err := godotenv.Load(opt.EnvFilePath); err != nil {
			log.Printf("Could not load environment variables from file.\n%s\nIf running inside a docker container this can be ignored.\n\n", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
