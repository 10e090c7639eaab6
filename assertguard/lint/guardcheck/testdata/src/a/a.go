package a

import "github.com/LerianStudio/lib-assertguard/assertguard/assert"

func good(items []int, p *int) (int, bool) {
	if assert.CheckParameterOrReturn(p != nil, "p != nil") {
		return 0, false
	}

	for _, it := range items {
		if assert.CheckOrContinue(it > 0, "item %d", it) {
			continue
		}

		if assert.Default().CheckOrBreak(it < 100, "item %d", it) {
			break
		}
	}

	if v, failed := assert.CheckOrReturnValue(*p >= 0, -1, "negative %d", *p); failed {
		return v, false
	}

	if assert.CheckOrReturnFalse(*p < 10, "too big") {
		return 0, false
	}

loop:
	for _, it := range items {
		switch it {
		case 1:
			if assert.CheckOrBreak(it > 0, "item") {
				break loop
			}
		}
	}

	return *p, true
}

func ignored(n int) {
	assert.CheckOrReturn(n > 0, "n") // want `result of CheckOrReturn must be the condition of an if statement ending in return`

	_ = assert.CheckOrReturnDefault(n > 0, "n") // want `result of CheckOrReturnDefault must be the condition of an if statement`
}

func wrongAction(items []int) bool {
	for _, it := range items {
		if assert.CheckOrBreak(it > 0, "item") {
			continue // want `CheckOrBreak: if body must end with break`
		}
	}

	if assert.CheckOrReturnFalse(len(items) > 0, "empty") {
		return true // want `CheckOrReturnFalse: if body must end with return false`
	}

	if assert.CheckOrReturn(len(items) < 5, "long") { // want `CheckOrReturn: if body must end with return`
	}

	return false
}

func breakInSwitch(items []int) {
	for _, it := range items {
		switch it {
		case 1:
			if assert.CheckOrBreak(it > 0, "item") { // want `CheckOrBreak: break leaves the enclosing switch or select, not the loop`
				break
			}
		}
	}
}

func valueMisuse(n int) int {
	v, failed := assert.CheckOrReturnValue(n > 0, -1, "n") // want `result of CheckOrReturnValue must be the condition of an if statement`
	if failed {
		return v
	}

	return n
}

func outcomes(c *assert.Checker, n int) int {
	if c.Check(assert.Request{Condition: n > 0, Action: assert.ReturnValue}).RecoveryRequested() {
		return 0
	}

	outcome := c.CheckParameter(n < 10, "n < 10", "outcomes", "a.go", 1, assert.ReturnValue)
	if outcome.RecoveryRequested() {
		return 0
	}

	c.Check(assert.Request{Condition: n != 3}) // want `result of Check is discarded: the returned Outcome must be acted on`

	_ = c.CheckParameter(n != 4, "n != 4", "outcomes", "a.go", 2, assert.Break) // want `result of CheckParameter is discarded`

	var _ = c.Check(assert.Request{Condition: n != 5}) // want `result of Check is discarded`

	defer c.Check(assert.Request{Condition: n != 6}) // want `result of Check is discarded`

	return n
}
