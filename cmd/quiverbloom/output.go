package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/tphakala/go-quiverbloom"
	"github.com/tphakala/go-quiverbloom/internal/mathutil"
)

// writeCSV writes one "i,x,y" row per point. Coordinates use the shortest
// representation that round-trips, so infinities appear as +Inf or -Inf.
func writeCSV(w io.Writer, f *quiverbloom.Frame) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)
	if err := cw.Write([]string{"i", "x", "y"}); err != nil {
		return err
	}

	row := make([]string, 3)
	for i := range f.Len() {
		x, y := f.Point(i)
		row[0] = strconv.Itoa(i)
		row[1] = strconv.FormatFloat(x, 'g', -1, 64)
		row[2] = strconv.FormatFloat(y, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

// frameJSON is the JSON shape of a frame. JSON has no infinities, so
// coordinates that are not finite are encoded as null.
type frameJSON struct {
	Algorithm int        `json:"algorithm"`
	Name      string     `json:"name"`
	T         float64    `json:"t"`
	Points    int        `json:"points"`
	X         []*float64 `json:"x"`
	Y         []*float64 `json:"y"`
}

func writeJSON(w io.Writer, f *quiverbloom.Frame) error {
	a := f.Algorithm()
	out := frameJSON{
		Algorithm: int(a),
		Name:      a.String(),
		T:         f.Time(),
		Points:    f.Len(),
		X:         nullable(f.X()),
		Y:         nullable(f.Y()),
	}

	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

// nullable returns pointers into a copy of s, with nil for non-finite values.
func nullable(s []float64) []*float64 {
	vals := append([]float64(nil), s...)
	out := make([]*float64, len(vals))
	for i := range vals {
		if mathutil.IsFinite(vals[i]) {
			out[i] = &vals[i]
		}
	}
	return out
}
