package playback

// Package playback implements the flipbook playback engine: a small state
// machine over (frame index, fps, loop, status) plus the timer loop that
// advances frames while playing. The UI drives it through transition methods
// and observes it through frame/status callbacks; it never touches the state
// directly.
