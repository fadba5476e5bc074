//go:build shooterdebug

package shooter

// debugCheck panics on the first invariant violation.
func debugCheck(e *Engine) {
	if err := e.CheckInvariants(); err != nil {
		panic(err)
	}
}
