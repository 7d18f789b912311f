package pattern

import (
	"errors"
)

// A Pattern represents a fixed-length sequence of boolean steps, where
// true marks a pulse (onset) and false marks a rest, together with a
// cursor used for traversal. The zero value is an empty pattern ready
// to use.
type Pattern struct {
	steps  []bool
	cursor int
}

// New creates and initializes a new Pattern of the given length, with
// pulses onsets distributed as evenly as possible across the steps and
// the result rotated by rotation positions. It is equivalent to calling
// WithLength followed by Pulses and Rotate. The pulse step runs even
// when pulses is 0, in which case every step is left false and no
// rotation offset correction is applied.
func New(length, pulses, rotation int) *Pattern {
	p := WithLength(length)
	p.Pulses(pulses)
	p.Rotate(rotation)
	return p
}

// WithLength creates and initializes a new Pattern of the given length
// with every step set to false and the cursor on the first step. A
// negative length is treated as 0.
func WithLength(length int) *Pattern {
	if length < 0 {
		length = 0
	}
	return &Pattern{steps: make([]bool, length)}
}

// FromSlice creates and initializes a new Pattern using a copy of bits
// as its steps.
func FromSlice(bits []bool) *Pattern {
	steps := make([]bool, len(bits))
	copy(steps, bits)
	return &Pattern{steps: steps}
}

// Pulses regenerates the steps in place so that exactly min(pulses, Len())
// of them are true, spaced as evenly as possible across the pattern. A
// pulse count greater than the length is silently clamped to the length
// and a negative count is treated as 0, leaving every step false. The
// cursor is not moved.
func (p *Pattern) Pulses(pulses int) {
	length := len(p.steps)
	if pulses < 0 {
		pulses = 0
	}
	if pulses > length {
		pulses = length
	}
	bucket := 0
	for i := 0; i < length; i++ {
		bucket += pulses
		if bucket >= length {
			bucket -= length
			p.steps[i] = true
		} else {
			p.steps[i] = false
		}
	}
	// Align the first pulse on the first step.
	if pulses > 0 {
		p.rotateRight(length/pulses - 1)
	}
}

// Rotate circularly shifts the steps by rotation positions. A positive
// rotation shifts toward higher indices, delaying the pattern, and a
// negative rotation shifts toward lower indices. The shift amount is
// reduced modulo the length; rotating an empty pattern is a no-op. The
// cursor is not moved.
func (p *Pattern) Rotate(rotation int) {
	p.rotateRight(rotation)
}

// Clear sets every step to false. The length and the cursor are
// unchanged.
func (p *Pattern) Clear() {
	for i := range p.steps {
		p.steps[i] = false
	}
}

// Resize sets the number of steps to length, truncating the steps or
// extending them with false values as needed. A negative length is
// treated as 0. If the cursor no longer fits in the new range it is
// clamped to the new length.
func (p *Pattern) Resize(length int) {
	if length < 0 {
		length = 0
	}
	for len(p.steps) < length {
		p.steps = append(p.steps, false)
	}
	p.steps = p.steps[:length]
	if p.cursor > length {
		p.cursor = length
	}
}

// AsSlice returns a copy of the steps.
func (p *Pattern) AsSlice() []bool {
	steps := make([]bool, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// Len returns the number of steps.
func (p *Pattern) Len() int {
	return len(p.steps)
}

// Cursor returns the current cursor position. The position equals Len()
// when a finite traversal has consumed the last step but Next has not
// yet reported the end of the traversal.
func (p *Pattern) Cursor() int {
	return p.cursor
}

// Step returns the step at index i. The second return value is false
// if i is out of range.
func (p *Pattern) Step(i int) (bool, bool) {
	if i < 0 || i >= len(p.steps) {
		return false, false
	}
	return p.steps[i], true
}

// MoveCursor sets the cursor to i, clamping it into the valid index
// range. On an empty pattern the cursor stays on 0.
func (p *Pattern) MoveCursor(i int) {
	if len(p.steps) == 0 {
		p.cursor = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.steps) {
		i = len(p.steps) - 1
	}
	p.cursor = i
}

// Reset moves the cursor back to the first step.
func (p *Pattern) Reset() {
	p.cursor = 0
}

// Next returns the step at the cursor and advances the cursor by one.
// Once every step has been returned the second return value is false
// and the cursor moves back to the first step, so that the following
// call starts a new traversal.
func (p *Pattern) Next() (bool, bool) {
	if p.cursor < len(p.steps) {
		v := p.steps[p.cursor]
		p.cursor++
		return v, true
	}
	p.cursor = 0
	return false, false
}

// NextLooped returns the step at the cursor and advances the cursor by
// one, wrapping back to the first step after the last one so that the
// traversal never ends. It returns an error if the pattern has no
// steps.
func (p *Pattern) NextLooped() (bool, error) {
	if len(p.steps) == 0 {
		return false, errors.New("empty pattern")
	}
	// A finite traversal can leave the cursor one past the end.
	if p.cursor >= len(p.steps) {
		p.cursor = 0
	}
	v := p.steps[p.cursor]
	p.cursor++
	if p.cursor == len(p.steps) {
		p.cursor = 0
	}
	return v, nil
}

// rotateRight shifts the steps toward higher indices by n positions,
// wrapping around. The shift amount is reduced modulo the length, so a
// negative n shifts toward lower indices.
func (p *Pattern) rotateRight(n int) {
	length := len(p.steps)
	if length == 0 {
		return
	}
	n = (n%length + length) % length
	if n == 0 {
		return
	}
	rotated := make([]bool, length)
	for i, v := range p.steps {
		rotated[(i+n)%length] = v
	}
	copy(p.steps, rotated)
}

// clone returns a copy of p.
func (p *Pattern) clone() *Pattern {
	c := Pattern{
		steps:  make([]bool, len(p.steps)),
		cursor: p.cursor,
	}
	copy(c.steps, p.steps)
	return &c
}
