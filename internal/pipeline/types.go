package pipeline

import "aqcalc/internal/segment"

// Unit is one line or sentence with its AQ value. Text is the sanitized
// display text; it keeps accents and case.
type Unit struct {
	Text  string `json:"text" yaml:"text"`
	Value int    `json:"value" yaml:"value"`
}

// UnitFailure describes a unit that could not be scored.
type UnitFailure struct {
	Index int    `json:"index" yaml:"index"`
	Text  string `json:"text" yaml:"text"`
	Error string `json:"error" yaml:"error"`
	err   error
}

// Err returns the underlying scoring error.
func (f UnitFailure) Err() error { return f.err }

// ResultSet is the ordered outcome of one run.
type ResultSet struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Mode     segment.Mode  `json:"mode" yaml:"mode"`
	Units    []Unit        `json:"units" yaml:"units"`
	Failures []UnitFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Len returns the number of scored units.
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Units)
}
