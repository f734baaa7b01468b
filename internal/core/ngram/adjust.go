package ngram

import (
	"math"
	"time"
)

// Adjust slices a normalized series to the requested display window and
// smooths it. Steps, in order:
//
//  1. window bounds: lower = max(WindowFloor, mid-(periodSize+MinDays)d),
//     upper = min(today, mid+(periodSize-1)d), both inclusive
//  2. keep only rows inside [lower, upper]
//  3. null out every Sunday row (the corpus has no Sunday editions)
//  4. trailing rolling mean over smooth rows, at least one valid
//     observation required, so leading rows average over what exists
//  5. remaining nulls become zero
//  6. truncate every value toward zero to an integer
//
// Pure: the input series is never mutated, and identical arguments always
// produce identical output. An empty input yields an empty series.
func Adjust(s Series, mid time.Time, periodSize, smooth int, today time.Time) Series {
	if s.Empty() {
		return Series{}
	}
	if periodSize < 1 {
		periodSize = MaxDays
	}
	if smooth < 1 {
		smooth = 1
	}

	lower, upper := Window(mid, periodSize, today)

	src := s.Clone()
	src.sortByDate()

	out := Series{Words: src.Words}
	for i, d := range src.Dates {
		d = Day(d)
		if d.Before(lower) || d.After(upper) {
			continue
		}
		row := src.Values[i]
		if d.Weekday() == time.Sunday {
			row = nanRow(len(row))
		}
		out.Dates = append(out.Dates, d)
		out.Values = append(out.Values, row)
	}
	if len(out.Dates) == 0 {
		return Series{}
	}

	out.Values = rollingMean(out.Values, len(out.Words), smooth)

	for i := range out.Values {
		for j, v := range out.Values[i] {
			if isNaN(v) {
				v = 0
			}
			out.Values[i][j] = math.Trunc(v)
		}
	}
	return out
}

// Window computes the inclusive display bounds around mid: the lower bound
// never precedes WindowFloor and the upper bound never passes today
func Window(mid time.Time, periodSize int, today time.Time) (lower, upper time.Time) {
	if periodSize < 1 {
		periodSize = MaxDays
	}
	mid = Day(mid)
	lower = mid.AddDate(0, 0, -(periodSize + MinDays))
	if lower.Before(WindowFloor) {
		lower = WindowFloor
	}
	upper = mid.AddDate(0, 0, periodSize-1)
	if d := Day(today); upper.After(d) {
		upper = d
	}
	return lower, upper
}

// rollingMean applies a trailing positional mean per column: row i averages
// the non-null cells of rows [i-window+1, i]. A window with no valid cell
// stays NaN for the zero fill to catch.
func rollingMean(rows [][]float64, cols, window int) [][]float64 {
	if window <= 1 {
		return rows
	}
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = make([]float64, cols)
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		for j := 0; j < cols; j++ {
			var sum float64
			var n int
			for k := lo; k <= i; k++ {
				if v := rows[k][j]; !isNaN(v) {
					sum += v
					n++
				}
			}
			if n == 0 {
				out[i][j] = math.NaN()
				continue
			}
			out[i][j] = sum / float64(n)
		}
	}
	return out
}

func nanRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.NaN()
	}
	return row
}
