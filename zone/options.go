package zone

import (
	"fmt"
	"runtime"
	"unicode/utf8"

	"github.com/arloliu/mtxconv/internal/options"
)

// DefaultChunkSize is the number of triples scanned by one goroutine when
// extracting zones. Inputs up to this size are scanned sequentially.
const DefaultChunkSize = 256 * 1024

// Config holds resolver settings.
type Config struct {
	comma       rune
	parallelism int
	chunkSize   int
}

func newConfig() *Config {
	return &Config{
		comma:       ',',
		parallelism: runtime.GOMAXPROCS(0),
		chunkSize:   DefaultChunkSize,
	}
}

// Option configures the resolver.
type Option = options.Option[*Config]

// WithComma sets the field delimiter of the authority file. The default is ','.
func WithComma(r rune) Option {
	return options.New(func(c *Config) error {
		if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
			return fmt.Errorf("invalid delimiter %q", r)
		}
		c.comma = r

		return nil
	})
}

// WithParallelism limits the goroutines used to extract zones from triples.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return options.NoError(func(c *Config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.parallelism = n
	})
}

// WithChunkSize sets how many triples one goroutine scans.
func WithChunkSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", n)
		}
		c.chunkSize = n

		return nil
	})
}
