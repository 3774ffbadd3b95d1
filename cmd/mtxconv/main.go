// Command mtxconv converts origin-destination CSV files into MTX containers.
//
// Usage:
//
//	mtxconv convert <input.csv> <output.mtx[.gz|.zst|.s2|.lz4|.xz]> [zones.csv]
//	mtxconv inspect <file.mtx>
//	mtxconv version
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/arloliu/mtxconv"
	"github.com/arloliu/mtxconv/compress"
	"github.com/arloliu/mtxconv/format"
	"github.com/arloliu/mtxconv/internal/logger"
	"github.com/arloliu/mtxconv/mtx"
)

const version = "0.1.0"

// stdout receives command output.
var stdout io.Writer = os.Stdout

// CLI defines the command-line interface for mtxconv.
type CLI struct {
	LogMode  string `name:"log-mode" help:"Log format: dev (console) or prod (JSON)" enum:"dev,prod" default:"dev"`
	LogLevel string `name:"log-level" help:"Minimum log level (debug, info, warn, error)" default:"info"`

	Convert ConvertCmd `cmd:"" help:"Convert a CSV file into an MTX container"`
	Inspect InspectCmd `cmd:"" help:"Print the header and a summary of an MTX container"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ConvertCmd converts one CSV input.
type ConvertCmd struct {
	Input  string `arg:"" help:"CSV input, sparse (origin,destination,value) or rectangular" type:"existingfile"`
	Output string `arg:"" help:"Output path, the suffix selects compression" type:"path"`
	Zones  string `arg:"" optional:"" help:"Zone authority CSV, first column holds the zone ids" type:"path"`

	Delimiter   string `short:"d" help:"Field delimiter, a single character or 'tab'" default:","`
	Flexible    bool   `help:"Accept rows whose field count differs from the first row"`
	Parallelism int    `short:"j" help:"Worker goroutines for parallel stages (0 = all CPUs)" default:"0"`
}

func (c *ConvertCmd) Run(ctx context.Context, log *logger.Logger) error {
	comma, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return err
	}

	log = log.With("input", c.Input, "output", c.Output)
	log.Debug("starting conversion",
		"zones_file", c.Zones,
		"delimiter", string(comma),
		"flexible", c.Flexible,
		"parallelism", c.Parallelism,
	)

	opts := []mtxconv.Option{
		mtxconv.WithZoneAuthority(c.Zones),
		mtxconv.WithComma(comma),
		mtxconv.WithParallelism(c.Parallelism),
		mtxconv.WithLogger(log.Desugar()),
	}
	if c.Flexible {
		opts = append(opts, mtxconv.WithFlexibleRows())
	}

	res, err := mtxconv.Convert(ctx, c.Input, c.Output, opts...)
	if err != nil {
		return err
	}

	if res.Dropped() > 0 {
		log.Warn("input contained unusable data",
			"dropped_rows", res.Read.DroppedRows,
			"dropped_cells", res.Read.DroppedCells,
			"unknown_zone_triples", res.Assembly.Dropped,
		)
	}

	log.Info("conversion complete",
		"layout", res.Layout.String(),
		"zones", res.Zones,
		"triples", res.Triples,
		"dropped", res.Dropped(),
		"compression", res.Written.Compression.String(),
		"bytes", res.Written.Bytes,
	)

	return nil
}

// InspectCmd summarizes an existing container.
type InspectCmd struct {
	File string `arg:"" help:"MTX container, optionally compressed" type:"existingfile"`
}

func (c *InspectCmd) Run() error {
	file, err := mtx.ReadFile(c.File)
	if err != nil {
		return err
	}

	h := file.Header
	s := file.Summary()

	fmt.Fprintf(stdout, "file:        %s\n", c.File)
	fmt.Fprintf(stdout, "compression: %s\n", describeCompression(compress.ForPath(c.File)))
	fmt.Fprintf(stdout, "magic:       0x%08X\n", h.Magic)
	fmt.Fprintf(stdout, "version:     %d\n", h.Version)
	fmt.Fprintf(stdout, "type:        %d\n", h.Type)
	fmt.Fprintf(stdout, "dimensions:  %d x %d\n", h.OriginSize, h.DestinationSize)
	fmt.Fprintf(stdout, "zones:       %d\n", s.ZoneCount)
	if s.ZoneCount > 0 {
		fmt.Fprintf(stdout, "zone range:  %d .. %d\n", s.FirstZone, s.LastZone)
	}
	fmt.Fprintf(stdout, "sum:         %g\n", s.Sum)
	fmt.Fprintf(stdout, "non-zero:    %d\n", s.NonZero)
	fmt.Fprintf(stdout, "checksum:    %016x\n", file.Checksum)

	return nil
}

func describeCompression(ct format.CompressionType) string {
	suffix := compress.Suffix(ct)
	if suffix == "" {
		return ct.String()
	}

	return fmt.Sprintf("%s (%s)", ct, suffix)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "mtxconv version %s\n", version)
	return nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("mtxconv"),
		kong.Description("Convert origin-destination CSV data into MTX matrix containers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	log, err := logger.New(cli.LogMode, cli.LogLevel)
	kctx.FatalIfErrorf(err)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(log)

	if err := kctx.Run(); err != nil {
		log.Error("command failed", "command", kctx.Command(), "error", err)
		log.Sync()
		stop()
		os.Exit(1)
	}
}
