package playback

import (
	"github.com/ytget/frame-player/internal/model"
)

// Controller defines the interface the UI uses to drive playback.
type Controller interface {
	SetFrameCallback(func(path string, index, total int))
	SetStatusCallback(func(model.PlayStatus))

	Load(seq *model.FrameSequence)
	Clear()

	Play() error
	Pause()
	TogglePlayPause() error
	StepForward()
	StepBackward()
	SeekFirst()
	SeekLast()

	SetFPS(fps int)
	FPS() int
	SetLoop(loop bool)
	Loop() bool

	Status() model.PlayStatus
	Index() int
	FrameCount() int
}
