package ingest

import (
	"iter"

	"github.com/arloliu/mtxconv/format"
)

// sparseTriples yields one triple per row whose first three fields parse.
// Zero values are kept.
func sparseTriples(rows iter.Seq[[]string], stats *Stats) iter.Seq[format.Triple] {
	return func(yield func(format.Triple) bool) {
		for rec := range rows {
			if len(rec) < sparseFieldCount {
				stats.DroppedRows++
				continue
			}

			origin, ok1 := format.ParseZoneID(rec[0])
			destination, ok2 := format.ParseZoneID(rec[1])
			value, ok3 := format.ParseValue(rec[2])
			if !ok1 || !ok2 || !ok3 {
				stats.DroppedRows++
				continue
			}

			if !yield(format.Triple{Origin: origin, Destination: destination, Value: value}) {
				return
			}
		}
	}
}

// rectangularTriples yields one triple per non-zero cell of a cross-tab.
//
// Destination ids come from header[1:], with non-numeric entries removed, so
// a later id moves into the position of a dropped one. Cell k of a row maps to
// destinations[k].
func rectangularTriples(header []string, rows iter.Seq[[]string], stats *Stats) iter.Seq[format.Triple] {
	destinations := parseDestinations(header)

	return func(yield func(format.Triple) bool) {
		if len(destinations) == 0 {
			return
		}

		for rec := range rows {
			if len(rec) == 0 {
				stats.DroppedRows++
				continue
			}

			origin, ok := format.ParseZoneID(rec[0])
			if !ok {
				stats.DroppedRows++
				continue
			}

			for k, cell := range rec[1:] {
				if k >= len(destinations) {
					stats.DroppedCells += len(rec) - 1 - k
					break
				}

				value, ok := format.ParseValue(cell)
				if !ok {
					stats.DroppedCells++
					continue
				}
				if value == 0 {
					stats.ZeroCells++
					continue
				}

				if !yield(format.Triple{Origin: origin, Destination: destinations[k], Value: value}) {
					return
				}
			}
		}
	}
}

func parseDestinations(header []string) []int32 {
	if len(header) < 2 {
		return nil
	}

	destinations := make([]int32, 0, len(header)-1)
	for _, field := range header[1:] {
		if id, ok := format.ParseZoneID(field); ok {
			destinations = append(destinations, id)
		}
	}

	return destinations
}
