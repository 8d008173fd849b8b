// Package domain contains the core data structures and domain logic for the application.
package domain

// Target identifies one account to query. Account is the short name used to
// address the listing endpoints; Label is the name its stats are grouped and
// reported under. Several targets may share one label.
type Target struct {
	Account string
	Label   string
}

// Stats holds the aggregated counts for one account or label.
// It is the core domain entity of this application.
type Stats struct {
	Repos int `json:"repos"`
	Stars int `json:"stars"`
}

// Add folds another stats value into s.
func (s *Stats) Add(o Stats) {
	s.Repos += o.Repos
	s.Stars += o.Stars
}

// Row is one line of the final report: a display label and its summed stats.
type Row struct {
	Label string `json:"name"`
	Stats
}
