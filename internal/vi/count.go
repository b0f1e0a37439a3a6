package vi

import "math"

// countState accumulates a count prefix digit by digit. Backspace pops
// the most recent digit, matching the status-line echo.
type countState struct {
	value  int
	active bool
}

func (c *countState) reset() {
	c.value = 0
	c.active = false
}

// push adds an ASCII digit. A leading 0 is refused (it is the
// start-of-line motion, not a count).
func (c *countState) push(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	d := int(r - '0')
	if !c.active && d == 0 {
		return false
	}
	c.active = true
	if c.value > (math.MaxInt-d)/10 {
		c.value = math.MaxInt / 10
		return true
	}
	c.value = c.value*10 + d
	return true
}

// pop removes the most recent digit.
func (c *countState) pop() {
	c.value /= 10
	if c.value == 0 {
		c.active = false
	}
}

// get returns the effective count: 1 if no count was typed.
func (c *countState) get() int {
	if !c.active || c.value <= 0 {
		return 1
	}
	return c.value
}

// getOr returns the accumulated count or def if none was typed. Some
// motions distinguish "no count" from count 1 (gg, %, C-d).
func (c *countState) getOr(def int) int {
	if !c.active {
		return def
	}
	return c.value
}

// combine multiplies the pre-operator and post-operator counts
// ("2d3w" deletes 6 words), guarding against overflow.
func combine(a, b int) int {
	if a <= 0 {
		a = 1
	}
	if b <= 0 {
		b = 1
	}
	if a > math.MaxInt/b {
		return math.MaxInt / 10
	}
	return a * b
}
