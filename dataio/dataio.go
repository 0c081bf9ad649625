package dataio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dmatrix/accumulator"
	"github.com/katalvlaran/dmatrix/partition"
	"github.com/katalvlaran/dmatrix/row"
)

const dashGlyph = "-"

// LoadTrainingSet reads the FeatureMatrix, ImageMatrix and Ranges blocks
// from r and returns the resulting Dataset. The three blocks may appear
// in any order and must each appear at least once; a block that appears
// again replaces the earlier one.
//
// Complexity: O(N·(Q+R)) time and space.
func LoadTrainingSet(r io.Reader) (*partition.Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var features, labels [][]int64
	var minR, maxR []int64
	var q, rr int
	haveFeatures, haveLabels, haveRanges := false, false, false

	for {
		header, ok, err := nextHeader(sc)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch header {
		case "FeatureMatrix":
			n, cols, err := readSizeLine(sc)
			if err != nil {
				return nil, err
			}
			features, err = readIntBlock(sc, n, cols)
			if err != nil {
				return nil, err
			}
			q = cols
			haveFeatures = true
		case "ImageMatrix":
			n, cols, err := readSizeLine(sc)
			if err != nil {
				return nil, err
			}
			labels, err = readIntBlock(sc, n, cols)
			if err != nil {
				return nil, err
			}
			rr = cols
			haveLabels = true
		case "Ranges":
			cols, err := readCountLine(sc)
			if err != nil {
				return nil, err
			}
			minR, maxR, err = readRangeBlock(sc, cols)
			if err != nil {
				return nil, err
			}
			haveRanges = true
		default:
			return nil, fmt.Errorf("dataio: %w: unknown block %q", ErrMalformedHeader, header)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}

	if !haveFeatures || !haveLabels || !haveRanges {
		return nil, fmt.Errorf("dataio: %w: missing required block", ErrDimensionMismatch)
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("dataio: %w: FeatureMatrix and ImageMatrix row counts differ", ErrDimensionMismatch)
	}
	if len(minR) != q {
		return nil, fmt.Errorf("dataio: %w: ranges declared for %d columns, features have %d", ErrMissingRange, len(minR), q)
	}

	ds := &partition.Dataset{
		N: len(features), Q: q, R: rr, Dash: row.Dash,
		Features: features, Labels: labels,
		Min: minR, Max: maxR,
	}
	for i, f := range features {
		for k, v := range f {
			if v == row.Dash {
				continue
			}
			if v < minR[k] || v > maxR[k] {
				return nil, fmt.Errorf("dataio: %w: row %d column %d value %d outside [%d, %d]",
					ErrValueOutOfRange, i, k, v, minR[k], maxR[k])
			}
		}
	}
	return ds, nil
}

// WriteResult writes acc's rows and column weights in the same
// space-separated, dash-glyphed format LoadTrainingSet reads. When
// noTransfer is false, it first echoes ds's FeatureMatrix block, mirroring
// the original driver's default of copying input data blocks forward
// into the output file.
//
// Complexity: O(len(acc.Rows())·acc.Width() + ds.N·ds.Q) time.
func WriteResult(w io.Writer, acc accumulator.Accumulator, ds *partition.Dataset, noTransfer bool) error {
	bw := bufio.NewWriter(w)

	if !noTransfer && ds != nil {
		if err := writeIntBlock(bw, "FeatureMatrix", ds.Features); err != nil {
			return err
		}
	}

	rows := acc.Rows()
	values := make([][]int64, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	if err := writeIntBlock(bw, "DifferenceMatrix", values); err != nil {
		return err
	}

	fmt.Fprintln(bw, "# ColumnWeights")
	fmt.Fprintln(bw, acc.Width())
	weights := acc.ColumnWeights()
	parts := make([]string, len(weights))
	for i, v := range weights {
		parts[i] = strconv.FormatInt(v, 10)
	}
	fmt.Fprintln(bw, strings.Join(parts, " "))

	return bw.Flush()
}

func nextHeader(sc *bufio.Scanner) (string, bool, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			return "", false, fmt.Errorf("dataio: %w: expected block header, got %q", ErrMalformedHeader, line)
		}
		return strings.TrimSpace(strings.TrimPrefix(line, "#")), true, nil
	}
	return "", false, nil
}

func readSizeLine(sc *bufio.Scanner) (n, cols int, err error) {
	if !sc.Scan() {
		return 0, 0, fmt.Errorf("dataio: %w: missing size line", ErrMalformedHeader)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("dataio: %w: size line must have 2 fields", ErrMalformedHeader)
	}
	n, err1 := strconv.Atoi(fields[0])
	cols, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("dataio: %w: non-integer size line", ErrMalformedHeader)
	}
	return n, cols, nil
}

func readCountLine(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("dataio: %w: missing count line", ErrMalformedHeader)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, fmt.Errorf("dataio: %w: non-integer count line", ErrMalformedHeader)
	}
	return n, nil
}

func readIntBlock(sc *bufio.Scanner, n, cols int) ([][]int64, error) {
	out := make([][]int64, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("dataio: %w: expected %d rows, got %d", ErrDimensionMismatch, n, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != cols {
			return nil, fmt.Errorf("dataio: %w: row %d has %d fields, want %d", ErrDimensionMismatch, i, len(fields), cols)
		}
		vals := make([]int64, cols)
		for k, f := range fields {
			v, err := parseValue(f)
			if err != nil {
				return nil, err
			}
			vals[k] = v
		}
		out[i] = vals
	}
	return out, nil
}

func readRangeBlock(sc *bufio.Scanner, cols int) (minR, maxR []int64, err error) {
	minR = make([]int64, cols)
	maxR = make([]int64, cols)
	seen := make([]bool, cols)
	for i := 0; i < cols; i++ {
		if !sc.Scan() {
			return nil, nil, fmt.Errorf("dataio: %w: expected %d range lines, got %d", ErrMissingRange, cols, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, nil, fmt.Errorf("dataio: %w: range line must be \"column min max\"", ErrMalformedHeader)
		}
		col, err1 := strconv.Atoi(fields[0])
		lo, err2 := strconv.ParseInt(fields[1], 10, 64)
		hi, err3 := strconv.ParseInt(fields[2], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || col < 0 || col >= cols {
			return nil, nil, fmt.Errorf("dataio: %w: malformed range line", ErrMalformedHeader)
		}
		if seen[col] {
			return nil, nil, fmt.Errorf("dataio: %w: column %d", ErrDuplicateRange, col)
		}
		seen[col] = true
		minR[col], maxR[col] = lo, hi
	}
	return minR, maxR, nil
}

func parseValue(f string) (int64, error) {
	if f == dashGlyph {
		return row.Dash, nil
	}
	v, err := strconv.ParseInt(f, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("dataio: %w: %q is not an integer or %q", ErrDimensionMismatch, f, dashGlyph)
	}
	return v, nil
}

func writeIntBlock(w *bufio.Writer, name string, rows [][]int64) error {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	fmt.Fprintf(w, "# %s\n", name)
	fmt.Fprintf(w, "%d %d\n", len(rows), cols)
	for _, r := range rows {
		parts := make([]string, len(r))
		for k, v := range r {
			if v == row.Dash {
				parts[k] = dashGlyph
			} else {
				parts[k] = strconv.FormatInt(v, 10)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
	return nil
}
