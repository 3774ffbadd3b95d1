package ingest

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/mtxconv/internal/options"
)

// Config holds the reader settings.
type Config struct {
	comma    rune
	flexible bool
}

func newConfig() *Config {
	return &Config{comma: ','}
}

// Option configures the reader.
type Option = options.Option[*Config]

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) Option {
	return options.New(func(c *Config) error {
		if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
			return fmt.Errorf("invalid delimiter %q", r)
		}
		c.comma = r

		return nil
	})
}

// WithFlexibleRows accepts rows whose field count differs from the first row.
//
// By default such rows are dropped. With flexible rows a sparse row uses its
// first three fields and a rectangular row contributes the cells that have a
// matching destination.
func WithFlexibleRows() Option {
	return options.NoError(func(c *Config) {
		c.flexible = true
	})
}
