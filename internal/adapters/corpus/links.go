package corpus

import (
	"net/url"
	"time"
)

const searchBaseDefault = "https://www.nb.no/search"

// SearchURL builds a deep link into the national library newspaper search
// for one word over an inclusive date range. base falls back to the public
// search UI when empty.
func SearchURL(base, word string, start, end time.Time) string {
	if base == "" {
		base = searchBaseDefault
	}
	q := url.Values{}
	q.Set("q", word)
	q.Set("fromDate", start.Format(compactDate))
	q.Set("toDate", end.Format(compactDate))
	return base + "?mediatype=aviser&" + q.Encode()
}
