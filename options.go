package mtxconv

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/arloliu/mtxconv/ingest"
	"github.com/arloliu/mtxconv/internal/options"
	"github.com/arloliu/mtxconv/mtx"
	"github.com/arloliu/mtxconv/zone"
)

// Config holds conversion settings. Package options are collected here and
// applied when the stages run, so option errors surface from Convert.
type Config struct {
	authority   string
	comma       rune
	flexible    bool
	parallelism int
	host        binary.ByteOrder
	logger      *zap.Logger
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		comma:  ',',
		logger: zap.NewNop(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures Convert.
type Option = options.Option[*Config]

// WithZoneAuthority reads the zone list from the CSV file at path instead of
// deriving it from the input. An empty path keeps the derived list.
func WithZoneAuthority(path string) Option {
	return options.NoError(func(c *Config) {
		c.authority = path
	})
}

// WithComma sets the field delimiter of the input and of the authority file.
func WithComma(r rune) Option {
	return options.NoError(func(c *Config) {
		c.comma = r
	})
}

// WithFlexibleRows accepts input rows whose field count differs from the first row.
func WithFlexibleRows() Option {
	return options.NoError(func(c *Config) {
		c.flexible = true
	})
}

// WithParallelism limits the goroutines of the data-parallel stages.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return options.NoError(func(c *Config) {
		c.parallelism = n
	})
}

// WithHostOrder overrides the detected host byte order used by the writer.
func WithHostOrder(order binary.ByteOrder) Option {
	return options.NoError(func(c *Config) {
		c.host = order
	})
}

// WithLogger sets the logger receiving stage progress. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	})
}

func (c *Config) ingestOptions() []ingest.Option {
	opts := []ingest.Option{ingest.WithComma(c.comma)}
	if c.flexible {
		opts = append(opts, ingest.WithFlexibleRows())
	}

	return opts
}

func (c *Config) zoneOptions() []zone.Option {
	return []zone.Option{
		zone.WithComma(c.comma),
		zone.WithParallelism(c.parallelism),
	}
}

func (c *Config) mtxOptions() []mtx.Option {
	opts := []mtx.Option{mtx.WithParallelism(c.parallelism)}
	if c.host != nil {
		opts = append(opts, mtx.WithHostOrder(c.host))
	}

	return opts
}
