package ngram

import "time"

// Reference is a per-date aggregate total used as a normalization denominator
type Reference map[time.Time]float64

// SumColumns collapses a fetched comparison series into a Reference by
// summing every word column per date
func SumColumns(s Series) Reference {
	if s.Empty() {
		return nil
	}
	ref := make(Reference, len(s.Dates))
	for i, d := range s.Dates {
		var tot float64
		for _, v := range s.Values[i] {
			if !isNaN(v) {
				tot += v
			}
		}
		ref[Day(d)] = tot
	}
	return ref
}

// Normalize divides every word count by the per-date reference total,
// turning raw counts into relative frequencies. With no reference it is the
// identity transform. A zero or missing reference total on a date yields
// zero values on that date rather than NaN or Inf.
func Normalize(raw Series, ref Reference) Series {
	if raw.Empty() {
		return Series{}
	}
	out := raw.Clone()
	if len(ref) == 0 {
		return out
	}
	for i, d := range out.Dates {
		tot := ref[Day(d)]
		for j, v := range out.Values[i] {
			if isNaN(v) {
				continue
			}
			if tot == 0 {
				out.Values[i][j] = 0
				continue
			}
			out.Values[i][j] = v / tot
		}
	}
	return out
}
