package app

// Message types for the Bubble Tea app
type (
	// autocdMsg fires when the auto-cd delay for a sole search match
	// elapses. The generation is compared against the model's counter
	// so any intent issued in between cancels the pending commit.
	autocdMsg struct {
		generation int
	}

	// watchEventMsg signals filesystem activity in the watched
	// directory.
	watchEventMsg struct{}
)
