package input

// State is the input snapshot read once per tick
// Held covers continuous actions, Presses counts edge presses since the previous snapshot
type State struct {
	held    [actionCount]bool
	presses [actionCount]int
}

// Held reports whether the action is currently held
func (s State) Held(a Action) bool {
	return a < actionCount && s.held[a]
}

// Presses returns the number of presses since the previous snapshot
func (s State) Presses(a Action) int {
	if a >= actionCount {
		return 0
	}
	return s.presses[a]
}

// WithHeld returns a copy with the action held; used to script input in tests and demos
func (s State) WithHeld(a Action) State {
	if a < actionCount {
		s.held[a] = true
	}
	return s
}

// WithPresses returns a copy with n presses of the action
func (s State) WithPresses(a Action, n int) State {
	if a < actionCount {
		s.presses[a] += n
	}
	return s
}
