package circuit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/adventkit/ilp"
)

// Sentinel errors for parsing and solving.
var (
	// ErrMalformedMachine is returned for lines that do not match
	// "[pattern] (i,j,..) .. {t,t,..}" or that index nonexistent lights.
	ErrMalformedMachine = errors.New("circuit: malformed machine line")

	// ErrTooManyLights is returned when a pattern has more than 64
	// lights and no longer fits the state mask.
	ErrTooManyLights = errors.New("circuit: too many lights for state mask")

	// ErrUnreachable is returned by MinPresses when no press sequence
	// produces the target pattern.
	ErrUnreachable = errors.New("circuit: target pattern unreachable")
)

// Button is the set of slot indices one press acts on: it toggles
// those lights and feeds one unit into those voltage slots.
type Button struct {
	Slots []int
	mask  uint64
}

// Machine is one parsed input line.
type Machine struct {
	Lights  int     // number of light/voltage slots
	Target  uint64  // target pattern, bit i set when light i must be on
	Buttons []Button
	Voltage []int64 // per-slot voltage target
}

// ParseMachine parses a single machine line.
func ParseMachine(line string) (Machine, error) {
	var m Machine
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 3 {
		return m, fmt.Errorf("%w: %q", ErrMalformedMachine, line)
	}

	pattern, ok := strings.CutPrefix(fields[0], "[")
	if !ok {
		return m, fmt.Errorf("%w: missing [pattern] in %q", ErrMalformedMachine, line)
	}
	pattern, ok = strings.CutSuffix(pattern, "]")
	if !ok {
		return m, fmt.Errorf("%w: missing [pattern] in %q", ErrMalformedMachine, line)
	}
	if len(pattern) > 64 {
		return m, fmt.Errorf("%w: %d lights", ErrTooManyLights, len(pattern))
	}
	m.Lights = len(pattern)
	for i, c := range pattern {
		switch c {
		case '#':
			m.Target |= 1 << i
		case '.':
		default:
			return m, fmt.Errorf("%w: pattern char %q", ErrMalformedMachine, c)
		}
	}

	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "("):
			body, ok := strings.CutSuffix(strings.TrimPrefix(f, "("), ")")
			if !ok {
				return m, fmt.Errorf("%w: button %q", ErrMalformedMachine, f)
			}
			b, err := parseButton(body, m.Lights)
			if err != nil {
				return m, err
			}
			m.Buttons = append(m.Buttons, b)
		case strings.HasPrefix(f, "{"):
			body, ok := strings.CutSuffix(strings.TrimPrefix(f, "{"), "}")
			if !ok {
				return m, fmt.Errorf("%w: voltage %q", ErrMalformedMachine, f)
			}
			for _, tok := range strings.Split(body, ",") {
				v, err := strconv.ParseInt(tok, 10, 64)
				if err != nil {
					return m, fmt.Errorf("%w: voltage %q", ErrMalformedMachine, f)
				}
				m.Voltage = append(m.Voltage, v)
			}
		default:
			return m, fmt.Errorf("%w: token %q", ErrMalformedMachine, f)
		}
	}
	if len(m.Buttons) == 0 || len(m.Voltage) != m.Lights {
		return m, fmt.Errorf("%w: %q", ErrMalformedMachine, line)
	}

	return m, nil
}

// parseButton parses the comma-separated slot list of one button.
func parseButton(body string, lights int) (Button, error) {
	var b Button
	for _, tok := range strings.Split(body, ",") {
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 0 || idx >= lights {
			return b, fmt.Errorf("%w: button slot %q", ErrMalformedMachine, tok)
		}
		b.Slots = append(b.Slots, idx)
		b.mask |= 1 << idx
	}

	return b, nil
}

// ParseMachines parses one machine per non-blank line.
func ParseMachines(lines []string) ([]Machine, error) {
	out := make([]Machine, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// MinPresses returns the fewest button presses turning every light from
// off to the target pattern. Breadth-first over light patterns, each
// pattern visited once; the press count grows by one per layer, so the
// first generation of the target is minimal.
func (m Machine) MinPresses() (int64, error) {
	if m.Target == 0 {
		return 0, nil
	}

	visited := map[uint64]bool{0: true}
	frontier := []uint64{0}
	for presses := int64(1); len(frontier) > 0; presses++ {
		var next []uint64
		for _, state := range frontier {
			for _, b := range m.Buttons {
				ns := state ^ b.mask
				if ns == m.Target {
					return presses, nil
				}
				if !visited[ns] {
					visited[ns] = true
					next = append(next, ns)
				}
			}
		}
		frontier = next
	}

	return 0, ErrUnreachable
}

// MinVoltagePresses returns the fewest total presses hitting every
// voltage target exactly. One ilp equality per slot: the press counters
// of the buttons acting on that slot sum to its target.
func (m Machine) MinVoltagePresses(solver ilp.Solver) (int64, error) {
	sys, err := ilp.NewSystem(len(m.Buttons))
	if err != nil {
		return 0, err
	}
	for slot, target := range m.Voltage {
		var vars []int
		for bi, b := range m.Buttons {
			if b.mask&(1<<slot) != 0 {
				vars = append(vars, bi)
			}
		}
		if err := sys.AddEquality(vars, target); err != nil {
			return 0, err
		}
	}

	got, err := solver.Minimize(sys)
	if err != nil {
		return 0, err
	}

	return got.Total(), nil
}
