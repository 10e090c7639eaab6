// Package guardcheck defines an analyzer that checks assertguard call sites.
//
// A guarded check returns true when the caller has to recover, and the
// caller must then perform the action named by the check:
//
//	if assert.CheckOrBreak(ok, "bad item %d", i) {
//		break
//	}
//
// The analyzer reports checks whose result is not the condition of an if
// statement, if bodies that do not end with the matching return, break or
// continue, and unlabeled breaks that would only leave a switch or select.
// Checker.Check and Checker.CheckParameter return an Outcome; dropping it in
// an expression statement, a go or defer statement or a blank assignment
// is reported.
package guardcheck
