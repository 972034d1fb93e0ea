package playback

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/frame-player/internal/logger"
	"github.com/ytget/frame-player/internal/model"
)

// FPS bounds
const (
	MinFPS     = 1
	MaxFPS     = 60
	DefaultFPS = 24
)

// Player handles flipbook playback over a loaded frame sequence
type Player struct {
	mu sync.Mutex

	frames  *model.FrameSequence
	index   int
	fps     int
	loop    bool
	status  model.PlayStatus
	session string // identity of the currently loaded sequence
	timer   *time.Timer

	onFrame  func(path string, index, total int) // callback for UI redraws
	onStatus func(model.PlayStatus)              // callback for status changes
}

var _ Controller = (*Player)(nil)

// NewPlayer creates a new playback engine in the Idle state
func NewPlayer() *Player {
	return &Player{
		fps:    DefaultFPS,
		loop:   true,
		status: model.PlayStatusIdle,
	}
}

// SetFrameCallback sets the callback invoked whenever the current frame changes
func (p *Player) SetFrameCallback(callback func(path string, index, total int)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFrame = callback
}

// SetStatusCallback sets the callback invoked on playback status transitions
func (p *Player) SetStatusCallback(callback func(model.PlayStatus)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStatus = callback
}

// Load replaces the current frame sequence, resets the index to 0, and moves
// to Stopped. Any running timer is cancelled; a tick already in flight for
// the previous sequence is discarded by the session check.
func (p *Player) Load(seq *model.FrameSequence) {
	p.mu.Lock()
	p.cancelTimerLocked()
	p.frames = seq
	p.index = 0
	p.status = model.PlayStatusStopped
	p.session = uuid.NewString()

	logger.Sugar.Infof("loaded animation %s: %d frames session=%s",
		seq.Animation, seq.Len(), p.session)

	emitFrame, emitStatus := p.emittersLocked()
	path, index, total := p.frames.Frame(0), 0, p.frames.Len()
	status := p.status
	p.mu.Unlock()

	if emitFrame != nil {
		emitFrame(path, index, total)
	}
	if emitStatus != nil {
		emitStatus(status)
	}
}

// Clear unloads the current sequence and moves to Idle
func (p *Player) Clear() {
	p.mu.Lock()
	p.cancelTimerLocked()
	p.frames = nil
	p.index = 0
	p.status = model.PlayStatusIdle
	p.session = ""

	emitStatus := p.onStatus
	p.mu.Unlock()

	if emitStatus != nil {
		emitStatus(model.PlayStatusIdle)
	}
}

// Play starts the timer loop. Returns ErrNoAnimation when nothing is loaded;
// no-op when already playing.
func (p *Player) Play() error {
	p.mu.Lock()
	if p.frames == nil {
		p.mu.Unlock()
		return ErrNoAnimation
	}
	if p.status == model.PlayStatusPlaying {
		p.mu.Unlock()
		return nil
	}

	p.status = model.PlayStatusPlaying
	p.scheduleTickLocked()

	logger.Sugar.Debugf("play session=%s fps=%d loop=%v", p.session, p.fps, p.loop)

	emitStatus := p.onStatus
	p.mu.Unlock()

	if emitStatus != nil {
		emitStatus(model.PlayStatusPlaying)
	}
	return nil
}

// Pause stops the timer loop; no-op unless playing
func (p *Player) Pause() {
	p.mu.Lock()
	if p.status != model.PlayStatusPlaying {
		p.mu.Unlock()
		return
	}

	p.cancelTimerLocked()
	p.status = model.PlayStatusStopped

	logger.Sugar.Debugf("pause at frame %d session=%s", p.index, p.session)

	emitStatus := p.onStatus
	p.mu.Unlock()

	if emitStatus != nil {
		emitStatus(model.PlayStatusStopped)
	}
}

// TogglePlayPause dispatches to Play or Pause based on the current status
func (p *Player) TogglePlayPause() error {
	if p.Status() == model.PlayStatusPlaying {
		p.Pause()
		return nil
	}
	return p.Play()
}

// StepForward advances the frame index by one. At the last frame it wraps to
// 0 when looping; otherwise it holds and, if playing, transitions to Stopped.
// No-op in Idle.
func (p *Player) StepForward() {
	p.mu.Lock()
	if p.frames == nil {
		p.mu.Unlock()
		return
	}

	stopped := p.advanceLocked()
	p.emitCurrentFrame(stopped)
}

// StepBackward retreats the frame index by one. At frame 0 it wraps to the
// last frame when looping; otherwise it holds. No-op in Idle.
func (p *Player) StepBackward() {
	p.mu.Lock()
	if p.frames == nil {
		p.mu.Unlock()
		return
	}

	if p.index > 0 {
		p.index--
	} else if p.loop {
		p.index = p.frames.Len() - 1
	}
	p.emitCurrentFrame(false)
}

// SeekFirst sets the frame index to 0 regardless of play state; no-op in Idle
func (p *Player) SeekFirst() {
	p.mu.Lock()
	if p.frames == nil {
		p.mu.Unlock()
		return
	}

	p.index = 0
	p.emitCurrentFrame(false)
}

// SeekLast sets the frame index to the last frame regardless of play state;
// no-op in Idle
func (p *Player) SeekLast() {
	p.mu.Lock()
	if p.frames == nil {
		p.mu.Unlock()
		return
	}

	p.index = p.frames.Len() - 1
	p.emitCurrentFrame(false)
}

// SetFPS clamps fps to [MinFPS, MaxFPS] and stores it. A running timer picks
// the new interval up on its next tick; the pending tick is not rescheduled.
func (p *Player) SetFPS(fps int) {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.fps = fps
}

// FPS returns the effective frames-per-second value
func (p *Player) FPS() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fps
}

// SetLoop updates the loop flag; the current frame is not changed
func (p *Player) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loop = loop
}

// Loop returns the loop flag
func (p *Player) Loop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loop
}

// Status returns the current playback status
func (p *Player) Status() model.PlayStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Index returns the current frame index; 0 when Idle
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// FrameCount returns the number of frames in the loaded sequence; 0 when Idle
func (p *Player) FrameCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frames == nil {
		return 0
	}
	return p.frames.Len()
}

// advanceLocked performs one forward step. Returns true when the step ended
// a non-looping playback (Playing -> Stopped at the last frame).
func (p *Player) advanceLocked() bool {
	last := p.frames.Len() - 1
	if p.index < last {
		p.index++
		return false
	}

	if p.loop {
		p.index = 0
		return false
	}

	// Hold at the last frame; end playback if the timer was driving us
	if p.status == model.PlayStatusPlaying {
		p.cancelTimerLocked()
		p.status = model.PlayStatusStopped
		logger.Sugar.Debugf("reached final frame, playback finished session=%s", p.session)
		return true
	}
	return false
}

// emitCurrentFrame snapshots emit data, unlocks, and invokes callbacks.
// Must be called with the mutex held; the mutex is released on return.
func (p *Player) emitCurrentFrame(statusChanged bool) {
	emitFrame, emitStatus := p.emittersLocked()
	path, index, total := p.frames.Frame(p.index), p.index, p.frames.Len()
	status := p.status
	p.mu.Unlock()

	if emitFrame != nil {
		emitFrame(path, index, total)
	}
	if statusChanged && emitStatus != nil {
		emitStatus(status)
	}
}

// emittersLocked returns the current callbacks under the lock
func (p *Player) emittersLocked() (func(string, int, int), func(model.PlayStatus)) {
	return p.onFrame, p.onStatus
}

// scheduleTickLocked arms the timer for the next tick using the current fps.
// The session is captured so a tick that fires after the sequence was
// replaced or cleared does nothing.
func (p *Player) scheduleTickLocked() {
	interval := TickInterval(p.fps)
	session := p.session
	p.timer = time.AfterFunc(interval, func() {
		p.tick(session)
	})
}

// tick advances one frame while playing and re-arms the timer
func (p *Player) tick(session string) {
	p.mu.Lock()
	if p.status != model.PlayStatusPlaying || p.session != session {
		// Stale tick from a paused or replaced playback
		p.mu.Unlock()
		return
	}

	stopped := p.advanceLocked()
	if !stopped {
		p.scheduleTickLocked()
	}
	p.emitCurrentFrame(stopped)
}

// cancelTimerLocked stops any pending tick
func (p *Player) cancelTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// TickInterval returns the timer interval for an fps value, rounded to the
// nearest millisecond.
func TickInterval(fps int) time.Duration {
	ms := math.Round(1000.0 / float64(fps))
	return time.Duration(ms) * time.Millisecond
}
