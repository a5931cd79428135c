package orion

import (
	"fmt"
	"runtime"
	"time"
)

type frame struct {
	Total time.Duration

	PollEvents time.Duration
	GameUpdate time.Duration
	GameDraw   time.Duration
}

// DebugOverlay records the phases of the most recent frames.
var DebugOverlay debugOverlay

type debugOverlay struct {
	frameCount int
	frames     [60 * 10]frame

	timeStartFrame      time.Time
	timeStartPollEvents time.Time
	timeStartGameUpdate time.Time
	timeStartGameDraw   time.Time
	timeEndFrame        time.Time

	mem runtime.MemStats
}

func (d *debugOverlay) StartFrame() {
	now := time.Now()

	if !d.timeStartFrame.IsZero() {
		d.frames[d.frameCount%len(d.frames)] = frame{
			Total:      now.Sub(d.timeStartFrame),
			PollEvents: d.timeStartGameUpdate.Sub(d.timeStartPollEvents),
			GameUpdate: d.timeStartGameDraw.Sub(d.timeStartGameUpdate),
			GameDraw:   d.timeEndFrame.Sub(d.timeStartGameDraw),
		}

		d.frameCount += 1
	}

	d.timeStartFrame = now
}

func (d *debugOverlay) StartPollEvents() {
	d.timeStartPollEvents = time.Now()
}

func (d *debugOverlay) StartGameUpdate() {
	d.timeStartGameUpdate = time.Now()
}

func (d *debugOverlay) StartGameDraw() {
	d.timeStartGameDraw = time.Now()
}

func (d *debugOverlay) EndFrame() {
	d.timeEndFrame = time.Now()

	// reading memory stats stops the world, do it once a second
	if d.frameCount%60 == 0 {
		runtime.ReadMemStats(&d.mem)
	}
}

func (d *debugOverlay) FPS() float64 {
	var frameCount int
	var totalTime time.Duration

	for _, frame := range d.frames {
		if frame.Total > 0 {
			frameCount += 1
			totalTime += frame.Total
		}
	}

	if frameCount == 0 {
		return 0
	}

	averageFrameTime := totalTime / time.Duration(frameCount)
	return 1.0 / averageFrameTime.Seconds()
}

// Summary is a single line for the window title.
func (d *debugOverlay) Summary() string {
	last := d.frames[(d.frameCount+len(d.frames)-1)%len(d.frames)]

	return fmt.Sprintf(
		"%1.0f fps, update %s, draw %s, heap %1.2fmb, %d gc",
		d.FPS(),
		last.GameUpdate.Round(time.Microsecond),
		last.GameDraw.Round(time.Microsecond),
		float64(d.mem.HeapInuse)/(1024.0*1024.0),
		d.mem.NumGC,
	)
}
