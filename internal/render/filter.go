package render

// Criteria holds the row filters for one scan. An empty filter string means
// that filter is not set. Matching is exact: case-sensitive, no trimming
// beyond what Decode already applied.
type Criteria struct {
	Application   string
	Renderer      string
	IncludeFailed bool
}

// Accept reports whether rec passes the criteria. Every set name filter must
// match, and failed renders are rejected unless IncludeFailed is set.
func (c Criteria) Accept(rec Record) bool {
	if c.Application != "" && rec.Application != c.Application {
		return false
	}
	if c.Renderer != "" && rec.Renderer != c.Renderer {
		return false
	}
	return rec.Succeeded || c.IncludeFailed
}
