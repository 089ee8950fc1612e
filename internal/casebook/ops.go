package casebook

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patterns/bsearch"
	"github.com/katalvlaran/patterns/gridgraph"
	"github.com/katalvlaran/patterns/intervals"
	"github.com/katalvlaran/patterns/lookup"
	"github.com/katalvlaran/patterns/sorting"
	"github.com/katalvlaran/patterns/stack"
	"github.com/katalvlaran/patterns/topo"
	"github.com/katalvlaran/patterns/window"
)

// Op describes one runnable operation.
type Op struct {
	Name string
	// Keys lists the input mapping keys the operation reads.
	Keys []string
	// Nullable ops report absence as a nil slice, which must match
	// `expect: null` and not `expect: []`.
	Nullable bool

	run    func(in *yaml.Node) (any, error)
	expect func(n *yaml.Node) (any, error)
}

// expectAs decodes an expectation into T.
func expectAs[T any](n *yaml.Node) (any, error) {
	var v T
	if err := n.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// decodeInput decodes a case input mapping into T, wrapping failures in ErrBadInput.
func decodeInput[T any](in *yaml.Node) (T, error) {
	var v T
	if in.Kind == 0 {
		return v, fmt.Errorf("%w: missing input", ErrBadInput)
	}
	if err := in.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	return v, nil
}

func toIntervals(raw [][]int) ([]intervals.Interval, error) {
	out := make([]intervals.Interval, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: interval %d has %d values, want 2", ErrBadInput, i, len(p))
		}
		out[i] = intervals.Interval{Start: p[0], End: p[1]}
	}

	return out, nil
}

func toPoint(raw []int, role string) (gridgraph.Point, error) {
	if len(raw) != 2 {
		return gridgraph.Point{}, fmt.Errorf("%w: %s needs [row, col], got %v", ErrBadInput, role, raw)
	}

	return gridgraph.Point{Row: raw[0], Col: raw[1]}, nil
}

func toPrereqs(raw [][]int) ([]topo.Prereq, error) {
	out := make([]topo.Prereq, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: prerequisite %d has %d values, want 2", ErrBadInput, i, len(p))
		}
		out[i] = topo.Prereq{Course: p[0], Requires: p[1]}
	}

	return out, nil
}

type numsInput struct {
	Nums []int `yaml:"nums"`
}

type textInput struct {
	S string `yaml:"s"`
}

type intervalsInput struct {
	Intervals [][]int `yaml:"intervals"`
}

type graphInput struct {
	Num     int     `yaml:"num"`
	Prereqs [][]int `yaml:"prereqs"`
}

var registry = map[string]Op{
	"pair_sum": {
		Keys:     []string{"nums", "target"},
		Nullable: true,
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[struct {
				Nums   []int `yaml:"nums"`
				Target int   `yaml:"target"`
			}](in)
			if err != nil {
				return nil, err
			}
			p, ok := lookup.PairSum(v.Nums, v.Target)
			if !ok {
				return []int(nil), nil
			}
			return []int{p.I, p.J}, nil
		},
		expect: expectAs[[]int],
	},
	"longest_unique": {
		Keys: []string{"s"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[textInput](in)
			if err != nil {
				return nil, err
			}
			return window.LongestUniqueLength(v.S), nil
		},
		expect: expectAs[int],
	},
	"merge_intervals": {
		Keys: []string{"intervals"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[intervalsInput](in)
			if err != nil {
				return nil, err
			}
			ivs, err := toIntervals(v.Intervals)
			if err != nil {
				return nil, err
			}
			merged := intervals.Merge(ivs)
			out := make([][]int, len(merged))
			for i, iv := range merged {
				out[i] = []int{iv.Start, iv.End}
			}
			return out, nil
		},
		expect: expectAs[[][]int],
	},
	"min_overlap": {
		Keys: []string{"intervals"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[intervalsInput](in)
			if err != nil {
				return nil, err
			}
			ivs, err := toIntervals(v.Intervals)
			if err != nil {
				return nil, err
			}
			return intervals.MinOverlapCount(ivs), nil
		},
		expect: expectAs[int],
	},
	"is_balanced": {
		Keys: []string{"s"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[textInput](in)
			if err != nil {
				return nil, err
			}
			return stack.IsBalanced(v.S), nil
		},
		expect: expectAs[bool],
	},
	"next_greater": {
		Keys: []string{"nums"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[numsInput](in)
			if err != nil {
				return nil, err
			}
			return stack.NextGreater(v.Nums), nil
		},
		expect: expectAs[[]int],
	},
	"search": {
		Keys: []string{"xs", "target"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[struct {
				Xs     []int `yaml:"xs"`
				Target int   `yaml:"target"`
			}](in)
			if err != nil {
				return nil, err
			}
			return bsearch.Search(v.Xs, v.Target), nil
		},
		expect: expectAs[int],
	},
	"bounds": {
		Keys: []string{"xs", "x"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[struct {
				Xs []int `yaml:"xs"`
				X  int   `yaml:"x"`
			}](in)
			if err != nil {
				return nil, err
			}
			lo, hi := bsearch.Bounds(v.Xs, v.X)
			return []int{lo, hi}, nil
		},
		expect: expectAs[[]int],
	},
	"smallest_divisor": {
		Keys: []string{"nums", "threshold"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[struct {
				Nums      []int `yaml:"nums"`
				Threshold int   `yaml:"threshold"`
			}](in)
			if err != nil {
				return nil, err
			}
			return bsearch.SmallestDivisor(v.Nums, v.Threshold)
		},
		expect: expectAs[int],
	},
	"grid_path": {
		Keys: []string{"grid", "start", "goal"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[struct {
				Grid  [][]int `yaml:"grid"`
				Start []int   `yaml:"start"`
				Goal  []int   `yaml:"goal"`
			}](in)
			if err != nil {
				return nil, err
			}
			start, err := toPoint(v.Start, "start")
			if err != nil {
				return nil, err
			}
			goal, err := toPoint(v.Goal, "goal")
			if err != nil {
				return nil, err
			}
			return gridgraph.ShortestPath(v.Grid, start, goal)
		},
		expect: expectAs[int],
	},
	"can_finish": {
		Keys: []string{"num", "prereqs"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[graphInput](in)
			if err != nil {
				return nil, err
			}
			prereqs, err := toPrereqs(v.Prereqs)
			if err != nil {
				return nil, err
			}
			return topo.CanFinish(v.Num, prereqs)
		},
		expect: expectAs[bool],
	},
	"topo_order": {
		Keys: []string{"num", "prereqs"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[graphInput](in)
			if err != nil {
				return nil, err
			}
			prereqs, err := toPrereqs(v.Prereqs)
			if err != nil {
				return nil, err
			}
			return topo.Order(v.Num, prereqs)
		},
		expect: expectAs[[]int],
	},
	"merge_sort": {
		Keys: []string{"nums"},
		run: func(in *yaml.Node) (any, error) {
			v, err := decodeInput[numsInput](in)
			if err != nil {
				return nil, err
			}
			return sorting.MergeSort(v.Nums), nil
		},
		expect: expectAs[[]int],
	},
}

// Ops returns every supported operation sorted by name.
func Ops() []Op {
	out := make([]Op, 0, len(registry))
	for name, op := range registry {
		op.Name = name
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// lookupOp finds an operation by name.
func lookupOp(name string) (Op, error) {
	op, ok := registry[name]
	if !ok {
		return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	op.Name = name

	return op, nil
}

// errorKinds maps core sentinel errors to the short names used in casebooks.
var errorKinds = []struct {
	kind string
	err  error
}{
	{"empty", bsearch.ErrEmptyInput},
	{"non_positive", bsearch.ErrNonPositive},
	{"threshold", bsearch.ErrThresholdTooSmall},
	{"empty_grid", gridgraph.ErrEmptyGrid},
	{"non_rectangular", gridgraph.ErrNonRectangular},
	{"out_of_bounds", gridgraph.ErrOutOfBounds},
	{"blocked", gridgraph.ErrBlockedCell},
	{"negative_count", topo.ErrNegativeCount},
	{"node_range", topo.ErrNodeOutOfRange},
	{"cycle", topo.ErrCycleDetected},
	{"bad_input", ErrBadInput},
}

// ErrorKind returns the casebook name of err, or "" if err is nil or unknown.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}

	return ""
}
