package corpus

// ngramRequest is the wire form of a counts query against the corpus API
type ngramRequest struct {
	Wordbag []string  `json:"wordbag"`
	Period  [2]string `json:"period"` // compact dates, e.g. ["20210701","20260101"]
	Title   string    `json:"title,omitempty"`
}

// ngramResponse maps ISO date -> word -> occurrence count.
// Counts arrive as floats because the upstream serializes from a frame;
// they are integral in practice.
type ngramResponse map[string]map[string]float64
