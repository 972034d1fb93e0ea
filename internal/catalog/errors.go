package catalog

import "fmt"

// NotFoundError reports that a root, character, or animation directory does
// not exist or is not a directory.
type NotFoundError struct {
	Path string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// EmptyAnimationError reports an animation directory with no frame files.
type EmptyAnimationError struct {
	Path string
}

// Error implements the error interface
func (e *EmptyAnimationError) Error() string {
	return fmt.Sprintf("no frame images in %s", e.Path)
}
