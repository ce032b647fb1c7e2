package filelike

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance state. Init replaces the Copier behind the package-level
// ReadAll, SendFile and Checksum functions.
var (
	defaultMu   sync.Mutex
	defaultOnce sync.Once
	defaultErr  error
)

// Builder provides a way to create Copier instances with custom env prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Config loads the configuration using the builder's prefix
func (b *Builder) Config() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init initializes the global Copier using the builder's prefix
func (b *Builder) Init() error {
	cfg, err := b.Config()
	if err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Copier using the builder's prefix
func (b *Builder) New() (*Copier, error) {
	cfg, err := b.Config()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New creates a Copier from a validated config
func New(cfg *Config) (*Copier, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return NewCopier(cfg.CopierOptions()...), nil
}

// Init initializes the global Copier. Without a config it is loaded from
// the environment. Only the first call has an effect until Reset.
func Init(configs ...*Config) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		var c *Copier
		c, defaultErr = New(cfg)
		if defaultErr == nil {
			defaultCopier.Store(c)
		}
	})
	return defaultErr
}

// InitFromEnv initializes the global instance from environment variables (convenience method)
func InitFromEnv() error {
	return Init()
}

// Default returns the global Copier
func Default() *Copier {
	return defaultCopier.Load()
}

// Reset restores the default tuning of the global Copier (for testing)
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultCopier.Store(NewCopier())
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// NewFromEnv creates a Copier from environment variables (convenience constructor)
func NewFromEnv() (*Copier, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if cfg.Driver == "" {
		return errors.New("driver is required")
	}

	switch cfg.Driver {
	case "local":
		if cfg.LocalBasePath == "" {
			return errors.New("local base path is required for local driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown driver: %s", cfg.Driver)
	}

	if cfg.BlockSize <= 0 {
		return fmt.Errorf("block size must be positive (got %d)", cfg.BlockSize)
	}
	if cfg.HighWaterMark < cfg.BlockSize {
		return fmt.Errorf("high water mark %d is below block size %d", cfg.HighWaterMark, cfg.BlockSize)
	}
	if cfg.MaxBufferSize <= 0 {
		return fmt.Errorf("max buffer size must be positive (got %d)", cfg.MaxBufferSize)
	}

	if cfg.ChecksumAlgorithm != "" {
		if _, err := NewHasher(ChecksumAlgorithm(cfg.ChecksumAlgorithm)); err != nil {
			return err
		}
	}

	return nil
}
