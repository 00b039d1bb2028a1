package localedir

import (
	"fmt"
	"strings"
)

type Status int

const (
	Unchanged Status = iota
	Updated
	Created
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "Unchanged"
	case Updated:
		return "Updated"
	case Created:
		return "Created"
	case Skipped:
		return "Skipped"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome for one locale.
type Result struct {
	Lang   string
	Path   string
	Status Status
	// Err is set for Failed, and for Skipped when the catalog is missing.
	Err error
	// Diff is the unified diff of the change, when one was asked for.
	Diff string
}

func (r *Result) String() string {
	if r.Status == Failed {
		return fmt.Sprintf("Error processing %s: %v", r.Lang, r.Err)
	}
	return fmt.Sprintf("%s %s", r.Status, r.Lang)
}

// Report holds results in processing order.
type Report struct {
	DryRun  bool
	Results []Result
}

// Count returns the number of results with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Status == s {
			n++
		}
	}
	return n
}

func (r *Report) Failed() []Result {
	var res []Result
	for _, x := range r.Results {
		if x.Status == Failed {
			res = append(res, x)
		}
	}
	return res
}

// Summary is a one line account of r.
func (r *Report) Summary() string {
	var parts []string
	for _, s := range []Status{Updated, Created, Unchanged, Skipped, Failed} {
		if n := r.Count(s); n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(s.String())))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "no locales")
	}
	res := strings.Join(parts, ", ")
	if r.DryRun {
		res += " (dry run)"
	}
	return res
}
