package dial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRotation is returned for tokens that are not
// "L<distance>" or "R<distance>" with a non-negative distance.
var ErrMalformedRotation = errors.New("dial: malformed rotation token")

const (
	// Positions is the number of dial positions (0 through Positions-1).
	Positions = 100
	// Start is the position the dial points at before any rotation.
	Start = 50
)

// Direction of a rotation.
type Direction byte

const (
	// Left decrements the position on each click.
	Left Direction = 'L'
	// Right increments the position on each click.
	Right Direction = 'R'
)

// Rotation is a single instruction: turn Dir by Distance clicks.
type Rotation struct {
	Dir      Direction
	Distance int
}

// ParseRotation parses one "L68"/"R1000" token.
func ParseRotation(tok string) (Rotation, error) {
	tok = strings.TrimSpace(tok)
	if len(tok) < 2 {
		return Rotation{}, fmt.Errorf("%w: %q", ErrMalformedRotation, tok)
	}
	dir := Direction(tok[0])
	if dir != Left && dir != Right {
		return Rotation{}, fmt.Errorf("%w: %q", ErrMalformedRotation, tok)
	}
	dist, err := strconv.Atoi(tok[1:])
	if err != nil || dist < 0 {
		return Rotation{}, fmt.Errorf("%w: %q", ErrMalformedRotation, tok)
	}

	return Rotation{Dir: dir, Distance: dist}, nil
}

// ParseRotations parses one rotation per line, skipping blank lines.
// The error, if any, carries the 1-based line number.
func ParseRotations(lines []string) ([]Rotation, error) {
	out := make([]Rotation, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rot, err := ParseRotation(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, rot)
	}

	return out, nil
}

// Apply returns the position reached after rotating from pos.
// Complexity: O(1), independent of Distance.
func Apply(pos int, rot Rotation) int {
	if rot.Dir == Left {
		return ((pos-rot.Distance)%Positions + Positions) % Positions
	}

	return (pos + rot.Distance) % Positions
}

// zeroClicks counts the clicks within rot (from pos) that land exactly
// on 0. The first qualifying click is found modularly; each further full
// lap contributes one more. Complexity: O(1).
func zeroClicks(pos int, rot Rotation) int {
	if rot.Distance == 0 {
		return 0
	}
	// first is the click index (1-based) at which the pointer reads 0.
	var first int
	if rot.Dir == Left {
		first = pos
	} else {
		first = Positions - pos
	}
	if first == 0 {
		// Already on 0: the next visit is a full lap away.
		first = Positions
	}
	if rot.Distance < first {
		return 0
	}

	return (rot.Distance-first)/Positions + 1
}

// Landings counts the rotations after which the pointer rests on 0,
// starting from Start. (Part 1.)
func Landings(rots []Rotation) int {
	pos, count := Start, 0
	for _, rot := range rots {
		pos = Apply(pos, rot)
		if pos == 0 {
			count++
		}
	}

	return count
}

// Crossings counts every click that lands the pointer on 0 across the
// whole sequence, passes mid-rotation included, starting from Start.
// (Part 2.)
func Crossings(rots []Rotation) int {
	pos, count := Start, 0
	for _, rot := range rots {
		count += zeroClicks(pos, rot)
		pos = Apply(pos, rot)
	}

	return count
}
