package filelike

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Default driver used to open streams by name (local, memory)
	Driver string `env:"FILELIKE_DRIVER,default:local"`

	// Local driver configuration
	LocalBasePath string `env:"FILELIKE_LOCAL_BASE_PATH,default:."`

	// Copy engine tuning
	BlockSize     int   `env:"FILELIKE_BLOCK_SIZE,default:8192"`
	HighWaterMark int   `env:"FILELIKE_HIGH_WATER_MARK,default:16384"`
	MaxBufferSize int64 `env:"FILELIKE_MAX_BUFFER_SIZE,default:2147483647"`

	// Checksum algorithm used when none is given explicitly
	ChecksumAlgorithm string `env:"FILELIKE_CHECKSUM_ALGORITHM,default:xxhash"`

	// Log level for the command line tool (trace, debug, info, warn, error)
	LogLevel string `env:"FILELIKE_LOG_LEVEL,default:info"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CopierOptions translates the tuning fields into Copier options
func (c *Config) CopierOptions() []Option {
	return []Option{
		WithBlockSize(c.BlockSize),
		WithHighWaterMark(c.HighWaterMark),
		WithMaxBufferSize(c.MaxBufferSize),
	}
}
