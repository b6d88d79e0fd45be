package workspace

import "github.com/hannajonsd/granular-imports/transform"

// FileResult is the outcome of rewriting one file
type FileResult struct {
	Path       string
	Changed    bool
	Written    bool
	Output     []byte
	Patch      string
	Imports    []transform.ImportReport
	Normalized int
	Err        error
}

// Summary aggregates the results of one run
type Summary struct {
	Results []FileResult
	Changed int
	Failed  int
}

// Add records r in the summary
func (s *Summary) Add(r FileResult) {
	s.Results = append(s.Results, r)
	switch {
	case r.Err != nil:
		s.Failed++
	case r.Changed:
		s.Changed++
	}
}
