package casebook

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"
)

// RunOptions narrows and controls a run.
type RunOptions struct {
	// Ops, if non-empty, restricts the run to these operation names.
	Ops []string
	// FailFast stops after the first case that does not pass.
	FailFast bool
}

// Run executes every case of every book in order and returns the report.
// It returns early with ctx.Err() if ctx is cancelled between cases.
func Run(ctx context.Context, books []*Book, opts RunOptions, logger *slog.Logger) (*Report, error) {
	filter := make(map[string]bool, len(opts.Ops))
	for _, name := range opts.Ops {
		if _, err := lookupOp(name); err != nil {
			return nil, err
		}
		filter[name] = true
	}

	rep := &Report{}
	for _, book := range books {
		logger.Debug("running casebook", "book", book.Name, "source", book.Source, "cases", len(book.Cases))
		for i := range book.Cases {
			select {
			case <-ctx.Done():
				return rep, ctx.Err()
			default:
			}

			c := &book.Cases[i]
			if len(filter) > 0 && !filter[c.Op] {
				continue
			}
			res := runCase(book.Name, c)
			logger.Debug("case finished", "book", book.Name, "case", res.Case, "status", res.Status, "elapsed", res.Elapsed)
			rep.add(res)
			if opts.FailFast && res.Status != StatusPass {
				return rep, nil
			}
		}
	}

	return rep, nil
}

// runCase evaluates a single case and never returns an error: problems with
// the case itself become StatusError results.
func runCase(book string, c *Case) Result {
	res := Result{Book: book, Case: c.Name, Op: c.Op}
	if res.Case == "" {
		res.Case = c.Op
	}

	op, err := lookupOp(c.Op)
	if err != nil {
		return errored(res, err)
	}

	var want any
	switch {
	case c.Error != "":
		res.Want = "error: " + c.Error
	case c.hasExpect():
		if want, err = op.expect(&c.Expect); err != nil {
			return errored(res, fmt.Errorf("%w: expect: %v", ErrBadInput, err))
		}
		res.Want = render(want)
	default:
		return errored(res, ErrNoExpectation)
	}

	start := time.Now()
	got, runErr := op.run(&c.Input)
	res.Elapsed = time.Since(start)

	if runErr != nil {
		kind := ErrorKind(runErr)
		res.Got = "error: " + kind
		if kind == "bad_input" {
			return errored(res, runErr)
		}
		res.Detail = runErr.Error()
		res.Status = StatusFail
		if c.Error != "" && kind == c.Error {
			res.Status = StatusPass
		}
		return res
	}

	res.Got = render(got)
	res.Status = StatusFail
	if c.Error == "" && sameValue(got, want, op.Nullable) {
		res.Status = StatusPass
	}

	return res
}

func errored(res Result, err error) Result {
	res.Status = StatusError
	res.Detail = err.Error()

	return res
}

// sameValue is reflect.DeepEqual, except that nil and empty slices of the
// same type compare equal unless nullable is set, in which case nil means
// "absent" and only matches nil.
func sameValue(got, want any, nullable bool) bool {
	g, w := reflect.ValueOf(got), reflect.ValueOf(want)
	if !nullable && g.Kind() == reflect.Slice && w.Kind() == reflect.Slice && g.Type() == w.Type() {
		if g.Len() == 0 && w.Len() == 0 {
			return true
		}
	}

	return reflect.DeepEqual(got, want)
}

// render prints v, spelling nil slices as null.
func render(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Slice && rv.IsNil()) {
		return "null"
	}

	return fmt.Sprint(v)
}
