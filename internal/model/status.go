package model

// PlayStatus represents the state of the playback state machine
type PlayStatus string

const (
	// PlayStatusIdle means no animation is loaded; the frame index is undefined
	PlayStatusIdle PlayStatus = "Idle"

	// PlayStatusStopped means an animation is loaded but the timer is not running
	PlayStatusStopped PlayStatus = "Stopped"

	// PlayStatusPlaying means the timer loop is advancing frames
	PlayStatusPlaying PlayStatus = "Playing"
)

// String returns the string representation of PlayStatus
func (ps PlayStatus) String() string {
	return string(ps)
}

// HasAnimation returns true if an animation is loaded in this state
func (ps PlayStatus) HasAnimation() bool {
	return ps == PlayStatusStopped || ps == PlayStatusPlaying
}

// IsPlaying returns true if the timer loop is active
func (ps PlayStatus) IsPlaying() bool {
	return ps == PlayStatusPlaying
}
