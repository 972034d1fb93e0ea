package model

// Character represents a top-level catalog entry: a directory whose
// subdirectories are animations.
type Character struct {
	Name string // directory name, used as the display name
	Path string // absolute or root-relative path to the character directory
}

// Animation represents a named frame sequence belonging to a character.
type Animation struct {
	Name      string // directory name, scoped to the character
	Character string // owning character name
	Path      string // path to the animation directory
}

// FrameSequence is an ordered list of frame image paths for one animation.
// Index i is frame i of the playback; ordering is fixed at scan time.
type FrameSequence struct {
	Animation string   // owning animation name
	Frames    []string // file paths in playback order, never empty
}

// Len returns the number of frames in the sequence.
func (fs *FrameSequence) Len() int {
	return len(fs.Frames)
}

// Frame returns the path of the frame at index i.
// The caller is responsible for keeping i within [0, Len()-1].
func (fs *FrameSequence) Frame(i int) string {
	return fs.Frames[i]
}
