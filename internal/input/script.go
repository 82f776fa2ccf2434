package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment holds one snapshot for a number of frames.
type Segment struct {
	Snapshot Snapshot
	Frames   int
}

// Script is a canned input sequence for the headless simulator.
type Script []Segment

// ParseScript reads a comma-separated list of segments. Each segment is a set of held keys
// (l, r, j, or d for the debug toggle; "." for none) with an optional "*N" frame count:
//
//	r*60,rj,.*120,l*30
func ParseScript(s string) (Script, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out Script
	for i, part := range strings.Split(s, ",") {
		keys, count, hasCount := strings.Cut(strings.TrimSpace(part), "*")
		if keys == "" {
			return nil, fmt.Errorf("segment %d: empty, use \".\" for no keys", i)
		}
		seg := Segment{Frames: 1}
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("segment %d: bad frame count %q", i, count)
			}
			seg.Frames = n
		}
		for _, k := range keys {
			switch k {
			case 'l':
				seg.Snapshot.Left = true
			case 'r':
				seg.Snapshot.Right = true
			case 'j':
				seg.Snapshot.Jump = true
			case 'd':
				seg.Snapshot.ToggleDebug = true
			case '.':
			default:
				return nil, fmt.Errorf("segment %d: unknown key %q", i, k)
			}
		}
		out = append(out, seg)
	}
	return out, nil
}

// Frames is the script's total length.
func (s Script) Frames() int {
	n := 0
	for _, seg := range s {
		n += seg.Frames
	}
	return n
}

// At returns the snapshot for frame (0-based). Frames past the end get no input.
func (s Script) At(frame int) Snapshot {
	for _, seg := range s {
		if frame < seg.Frames {
			return seg.Snapshot
		}
		frame -= seg.Frames
	}
	return Snapshot{}
}
