package bastion

import "github.com/hajimehoshi/ebiten/v2"

// ScriptedInput is an InputSource fed with synthetic frames. Each Poll pops
// one frame; once the queue is drained the last frame is repeated, so a key
// or button stays held until a later frame releases it.
type ScriptedInput struct {
	queue []Input
	last  Input
}

// NewScriptedInput returns an empty script (nothing held, pointer at 0,0).
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

// Poll consumes the next queued frame.
func (s *ScriptedInput) Poll() Input {
	if len(s.queue) == 0 {
		return s.last
	}
	s.last = s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	return s.last
}

// Pending returns the number of queued frames.
func (s *ScriptedInput) Pending() int {
	return len(s.queue)
}

// Push queues a raw frame.
func (s *ScriptedInput) Push(in Input) {
	s.queue = append(s.queue, in)
}

// tail returns the frame new injections start from: the last queued frame,
// or the last polled one.
func (s *ScriptedInput) tail() Input {
	if n := len(s.queue); n > 0 {
		return s.queue[n-1]
	}
	return s.last
}

// InjectKeys queues one frame with exactly the given keys held. Pointer state
// carries over from the previous frame.
func (s *ScriptedInput) InjectKeys(keys ...ebiten.Key) {
	in := s.tail()
	in.Keys = make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		in.Keys[k] = true
	}
	s.Push(in)
}

// InjectPress queues a frame with the primary button down at (x, y).
func (s *ScriptedInput) InjectPress(x, y float64) {
	in := s.tail()
	in.PrimaryDown = true
	in.Pointer = Vec2{x, y}
	s.Push(in)
}

// InjectMove queues a frame with the pointer at (x, y) and the button state
// unchanged.
func (s *ScriptedInput) InjectMove(x, y float64) {
	in := s.tail()
	in.Pointer = Vec2{x, y}
	s.Push(in)
}

// InjectRelease queues a frame with the primary button up at (x, y).
func (s *ScriptedInput) InjectRelease(x, y float64) {
	in := s.tail()
	in.PrimaryDown = false
	in.Pointer = Vec2{x, y}
	s.Push(in)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *ScriptedInput) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). Minimum frames is 2.
func (s *ScriptedInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}
