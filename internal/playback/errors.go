package playback

import "errors"

// ErrNoAnimation is returned by Play when no animation is loaded.
var ErrNoAnimation = errors.New("no animation selected")
