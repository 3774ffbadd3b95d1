package zone

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/arloliu/mtxconv/format"
	"github.com/arloliu/mtxconv/internal/options"
	"golang.org/x/sync/errgroup"
)

// Resolve returns the zone Set for a conversion.
//
// A non-empty authorityPath is read with ReadAuthorityFile. Otherwise the Set
// is derived from triples with FromTriples.
func Resolve(authorityPath string, triples []format.Triple, opts ...Option) (Set, error) {
	if authorityPath != "" {
		return ReadAuthorityFile(authorityPath, opts...)
	}

	return FromTriples(triples, opts...)
}

// ReadAuthorityFile reads a zone authority file.
func ReadAuthorityFile(path string, opts ...Option) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zone authority: %w", err)
	}
	defer f.Close()

	return ReadAuthority(f, opts...)
}

// ReadAuthority reads zone ids from the first field of every row after the
// header row.
//
// Rows whose first field is not an int32, rows with a field count different
// from the header and rows that are not valid CSV are dropped. The ids are
// sorted ascending and duplicates are kept.
func ReadAuthority(r io.Reader, opts ...Option) (Set, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	zones := Set{}
	header := true
	for {
		rec, err := cr.Read()
		if err != nil {
			var pe *csv.ParseError
			switch {
			case errors.Is(err, io.EOF):
				slices.Sort(zones)
				return zones, nil
			case errors.As(err, &pe):
				header = false
				continue
			default:
				return nil, fmt.Errorf("read zone authority: %w", err)
			}
		}

		if header {
			header = false
			continue
		}

		if id, ok := format.ParseZoneID(rec[0]); ok {
			zones = append(zones, id)
		}
	}
}

// FromTriples returns the sorted union of all origins and destinations.
//
// Large inputs are split into chunks that are scanned in parallel. Each chunk
// yields a sorted unique id list and the lists are merged by set union, so the
// result does not depend on scheduling.
func FromTriples(triples []format.Triple, opts ...Option) (Set, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(triples) <= cfg.chunkSize || cfg.parallelism == 1 {
		return Set(uniqueIDs(triples)), nil
	}

	chunkCount := (len(triples) + cfg.chunkSize - 1) / cfg.chunkSize
	partial := make([][]int32, chunkCount)

	var g errgroup.Group
	g.SetLimit(cfg.parallelism)

	for i := range chunkCount {
		start := i * cfg.chunkSize
		end := min(start+cfg.chunkSize, len(triples))
		g.Go(func() error {
			partial[i] = uniqueIDs(triples[start:end])
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, p := range partial {
		total += len(p)
	}

	merged := make([]int32, 0, total)
	for _, p := range partial {
		merged = append(merged, p...)
	}

	return Set(sortedUnique(merged)), nil
}

// uniqueIDs returns the sorted distinct zone ids referenced by triples.
func uniqueIDs(triples []format.Triple) []int32 {
	seen := make(map[int32]struct{})
	for _, t := range triples {
		seen[t.Origin] = struct{}{}
		seen[t.Destination] = struct{}{}
	}

	ids := make([]int32, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
