package orion

import (
	"time"
)

// FrameTimes tracks a moving average of durations, either of frames via
// Tick or of arbitrary work via Record.
type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta is the most recent duration
	Delta time.Duration

	lastTime time.Time
}

// Record adds one measured duration.
func (t *FrameTimes) Record(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}

	t.FrameCount += 1
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records the time since the previous call to Tick. It returns true
// every 60 frames.
func (t *FrameTimes) Tick() bool {
	now := time.Now()

	if !t.lastTime.IsZero() {
		t.Record(now.Sub(t.lastTime))
	}

	t.lastTime = now

	return t.FrameCount > 0 && t.FrameCount%60 == 0
}
