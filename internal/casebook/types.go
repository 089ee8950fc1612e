package casebook

import (
	"errors"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for loading and running casebooks.
var (
	// ErrUnknownOp is returned for a case naming an unsupported operation.
	ErrUnknownOp = errors.New("casebook: unknown operation")

	// ErrBadInput is returned when a case input or expectation cannot be decoded.
	ErrBadInput = errors.New("casebook: malformed case")

	// ErrNoExpectation is returned for a case with neither expect nor error.
	ErrNoExpectation = errors.New("casebook: case has no expectation")

	// ErrEmptyBook is returned when a casebook file holds no cases.
	ErrEmptyBook = errors.New("casebook: no cases")
)

// Book is one decoded casebook file.
type Book struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`

	// Source is where the book was read from; not part of the file.
	Source string `yaml:"-"`
}

// Case is a single invocation with its expected outcome.
type Case struct {
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	Input  yaml.Node `yaml:"input"`
	Expect yaml.Node `yaml:"expect"`
	Error  string    `yaml:"error"`
}

// hasExpect reports whether the expect key was present, including `expect: null`.
func (c *Case) hasExpect() bool {
	return c.Expect.Kind != 0
}

// Status is the outcome of one case.
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

// Result records what one case produced.
type Result struct {
	Book    string        `json:"book" yaml:"book"`
	Case    string        `json:"case" yaml:"case"`
	Op      string        `json:"op" yaml:"op"`
	Status  Status        `json:"status" yaml:"status"`
	Want    string        `json:"want" yaml:"want"`
	Got     string        `json:"got" yaml:"got"`
	Detail  string        `json:"detail,omitempty" yaml:"detail,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// Report aggregates the results of a run.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Passed  int      `json:"passed" yaml:"passed"`
	Failed  int      `json:"failed" yaml:"failed"`
	Errored int      `json:"errored" yaml:"errored"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Errored == 0
}

// add appends res and updates the counters.
func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusPass:
		r.Passed++
	case StatusFail:
		r.Failed++
	default:
		r.Errored++
	}
}
