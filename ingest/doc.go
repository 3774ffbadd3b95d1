// Package ingest reads origin-destination CSV files into triples.
//
// The layout of a file is detected once, from its first row:
//
//   - exactly 3 fields: sparse layout, every row is origin,destination,value
//   - any other count: rectangular layout, the first row holds destination
//     zone ids after a label cell and every following row holds an origin
//     zone id followed by one value per destination
//
// A leading UTF-8 byte order mark is ignored. Parsing is lenient. Rows and cells that fail to parse are dropped and
// counted in Stats, never reported as errors. Only failures of the underlying
// file or stream abort a read.
//
// The two layouts differ in how zeros are handled: a sparse row with value 0
// produces a triple, a rectangular cell with value 0 does not.
//
// # Usage
//
//	res, err := ingest.ReadFile("flows.csv")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Layout, len(res.Triples), res.Stats.DroppedRows)
package ingest
