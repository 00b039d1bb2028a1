package libdiff

// Hunk is a run of changed lines with surrounding context.  Line numbers
// are 1 based.
type Hunk struct {
	FromLine, FromCount int
	ToLine, ToCount     int
	Lines               []Line
}

// Hunks groups lines into hunks with context unchanged lines around each
// change.  Changes separated by at most 2*context unchanged lines share a
// hunk.
func Hunks(lines []Line, context int) []Hunk {
	var res []Hunk
	i := 0
	for i < len(lines) {
		for i < len(lines) && lines[i].Op == Equal {
			i++
		}
		if i == len(lines) {
			break
		}
		start := max(0, i-context)
		end := i
		for {
			for end < len(lines) && lines[end].Op != Equal {
				end++
			}
			gap := end
			for gap < len(lines) && lines[gap].Op == Equal {
				gap++
			}
			if gap == len(lines) || gap-end > 2*context {
				break
			}
			end = gap
		}
		stop := min(len(lines), end+context)
		res = append(res, makeHunk(lines, start, stop))
		i = stop
	}
	return res
}

func makeHunk(lines []Line, start, stop int) Hunk {
	h := Hunk{FromLine: 1, ToLine: 1, Lines: lines[start:stop]}
	for _, ln := range lines[:start] {
		if ln.Op != Insert {
			h.FromLine++
		}
		if ln.Op != Delete {
			h.ToLine++
		}
	}
	for _, ln := range h.Lines {
		if ln.Op != Insert {
			h.FromCount++
		}
		if ln.Op != Delete {
			h.ToCount++
		}
	}
	if h.FromCount == 0 {
		h.FromLine--
	}
	if h.ToCount == 0 {
		h.ToLine--
	}
	return h
}
