package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. When MONGO_URI is unset the
// server runs against in-memory services with JSON snapshots under
// DATA_DIR.
type Config struct {
	ServerAddress   string `env:"SERVER_ADDRESS" envDefault:":3000"`
	MongoURI        string `env:"MONGO_URI"`
	MongoDatabase   string `env:"MONGO_DB" envDefault:"dating_network"`
	DataDir         string `env:"DATA_DIR" envDefault:"./data"`
	UploadDir       string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	MaxUploadSizeMB int64  `env:"MAX_UPLOAD_SIZE_MB" envDefault:"10"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
