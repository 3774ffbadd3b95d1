package mtx

import (
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/arloliu/mtxconv/endian"
	"github.com/arloliu/mtxconv/internal/options"
)

// Config holds encoder settings.
type Config struct {
	host        binary.ByteOrder
	parallelism int
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		host:        endian.CheckEndianness(),
		parallelism: runtime.GOMAXPROCS(0),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures an Encoder.
type Option = options.Option[*Config]

// WithHostOrder overrides the detected byte order of the host.
//
// binary.BigEndian forces per-element conversion on any machine. The output
// bytes are the same for both orders.
func WithHostOrder(order binary.ByteOrder) Option {
	return options.New(func(c *Config) error {
		if order != binary.LittleEndian && order != binary.BigEndian {
			return fmt.Errorf("unsupported host byte order: %v", order)
		}
		c.host = order

		return nil
	})
}

// WithParallelism limits the goroutines used for byte order conversion.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return options.NoError(func(c *Config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.parallelism = n
	})
}
