// Package mtxconv converts origin-destination CSV data into MTX containers.
//
// An MTX container is a little-endian binary file holding a square float32
// matrix labelled by the same zone list on both axes. The conversion runs in
// four stages:
//
//   - ingest: read the CSV input and detect its layout from the first row
//     (three fields select the sparse origin,destination,value layout, any other
//     count selects the rectangular cross-tab layout)
//   - zone: resolve the zone list, either from an authority file or from the
//     ids found in the data
//   - matrix: place every triple at (rank(origin), rank(destination)), later
//     triples overwriting earlier ones
//   - mtx: write the container, compressed when the output path ends in a
//     known suffix (.gz, .zst, .s2, .lz4, .xz)
//
// Rows that do not parse and triples referring to zones outside the zone list
// are dropped and counted, never reported as errors.
//
// # Basic Usage
//
//	res, err := mtxconv.Convert(ctx, "flows.csv", "flows.mtx.gz",
//	    mtxconv.WithZoneAuthority("zones.csv"),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Zones, res.Dropped)
//
// # Package Structure
//
// Convert wires the ingest, zone, matrix and mtx packages together. Use those
// packages directly for finer control, for example to encode into an arbitrary
// io.Writer with mtx.NewEncoder.
package mtxconv

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/mtxconv/format"
	"github.com/arloliu/mtxconv/ingest"
	"github.com/arloliu/mtxconv/matrix"
	"github.com/arloliu/mtxconv/mtx"
	"github.com/arloliu/mtxconv/zone"
)

// maxLoggedIDs caps the zone ids listed in a single log entry.
const maxLoggedIDs = 20

// Result summarizes one conversion.
type Result struct {
	// Layout is the detected input layout.
	Layout format.Layout
	// Zones is the matrix dimension.
	Zones int
	// Triples is the number of triples read from the input.
	Triples int
	// Read holds the row level counters of the input reader.
	Read ingest.Stats
	// Assembly holds the applied and dropped triple counts.
	Assembly matrix.Stats
	// Written describes the output container.
	Written mtx.WriteStats
}

// Dropped returns the number of rows, cells and triples that were discarded.
// Suppressed zero cells are not counted.
func (r *Result) Dropped() int {
	return r.Read.DroppedRows + r.Read.DroppedCells + r.Assembly.Dropped
}

// Convert reads the CSV file at input and writes an MTX container to output.
//
// The context is checked between stages; a cancelled conversion leaves no
// output file behind unless writing had already completed.
//
// Parameters:
//   - ctx: Context for cancellation
//   - input: Path of the CSV input
//   - output: Path of the container, its suffix selects the compression
//   - opts: Conversion options
//
// Returns:
//   - *Result: Conversion counters
//   - error: Invalid option, unreadable input or authority file, or an output failure
func Convert(ctx context.Context, input, output string, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	log := cfg.logger.With(zap.String("input", input), zap.String("output", output))

	read, err := ingest.ReadFile(input, cfg.ingestOptions()...)
	if err != nil {
		return nil, err
	}
	log.Debug("input read",
		zap.Stringer("layout", read.Layout),
		zap.Int("records", read.Stats.Records),
		zap.Int("triples", len(read.Triples)),
		zap.Int("dropped_rows", read.Stats.DroppedRows),
		zap.Int("dropped_cells", read.Stats.DroppedCells),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zones, err := zone.Resolve(cfg.authority, read.Triples, cfg.zoneOptions()...)
	if err != nil {
		return nil, err
	}
	log.Debug("zones resolved",
		zap.Int("zones", zones.Len()),
		zap.Bool("authority", cfg.authority != ""),
		zap.Bool("unique", zones.IsStrictlyAscending()),
	)
	if dups := zones.Duplicates(); len(dups) > 0 {
		log.Warn("zone authority contains duplicate ids, the last occurrence of each id receives its cells",
			zap.Int("duplicates", len(dups)),
			zap.Int32s("ids", dups[:min(len(dups), maxLoggedIDs)]),
		)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, assembly := matrix.Assemble(read.Triples, zones)
	log.Debug("matrix assembled",
		zap.Int("applied", assembly.Applied),
		zap.Int("dropped", assembly.Dropped),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	written, err := mtx.WriteFile(output, zones, m, cfg.mtxOptions()...)
	if err != nil {
		return nil, err
	}
	log.Debug("container written",
		zap.Stringer("compression", written.Compression),
		zap.Int64("bytes", written.Bytes),
		zap.String("checksum", fmt.Sprintf("%016x", written.Checksum)),
	)

	return &Result{
		Layout:   read.Layout,
		Zones:    zones.Len(),
		Triples:  len(read.Triples),
		Read:     read.Stats,
		Assembly: assembly,
		Written:  *written,
	}, nil
}
