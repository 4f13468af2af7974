// Package pacer implements the fixed-timestep scheduler that decides how
// many emulation ticks and render frames are due as real time passes.
// Ticks and frames run off independent accumulators so the emulation rate
// is decoupled from the render rate.
package pacer

import "time"

// MaxTicksPerAdvance caps the ticks returned by a single Advance. A host
// that stalls (window dragged, debugger attached) drops the backlog instead
// of trying to catch up all at once.
const MaxTicksPerAdvance = 1000

// Pacer holds the tick and frame accumulators.
type Pacer struct {
	tick  time.Duration
	frame time.Duration

	tickAcc  time.Duration
	frameAcc time.Duration

	// counters for the current one second window
	window  time.Duration
	ran     int
	frames  int
	lastIPS int
	lastFPS int
}

// New creates a Pacer running tickHz ticks and frameHz frames per second.
// Rates <= 0 are treated as 1 Hz.
func New(tickHz, frameHz float64) *Pacer {
	return &Pacer{
		tick:  period(tickHz),
		frame: period(frameHz),
	}
}

func period(hz float64) time.Duration {
	if hz <= 0 {
		hz = 1
	}

	return time.Duration(float64(time.Second) / hz)
}

// SetTickRate changes the tick rate without touching the accumulated time.
func (p *Pacer) SetTickRate(hz float64) {
	p.tick = period(hz)
}

// TickRate returns the current tick rate in Hz.
func (p *Pacer) TickRate() float64 {
	return float64(time.Second) / float64(p.tick)
}

// Advance adds elapsed real time and returns the number of ticks and
// frames that are now due.
func (p *Pacer) Advance(elapsed time.Duration) (ticks, frames int) {
	if elapsed < 0 {
		elapsed = 0
	}

	p.tickAcc += elapsed
	p.frameAcc += elapsed

	for p.tickAcc >= p.tick {
		p.tickAcc -= p.tick
		ticks++

		if ticks == MaxTicksPerAdvance {
			p.tickAcc = 0
			break
		}
	}

	// only ever render the latest frame
	if p.frameAcc >= p.frame {
		frames = 1
		p.frameAcc %= p.frame
	}

	p.count(elapsed, frames)

	return ticks, frames
}

func (p *Pacer) count(elapsed time.Duration, frames int) {
	p.window += elapsed
	p.frames += frames

	if p.window >= time.Second {
		p.lastIPS, p.lastFPS = p.ran, p.frames
		p.window, p.ran, p.frames = 0, 0, 0
	}
}

// Ran records n ticks that were actually executed. Ticks handed out by
// Advance but skipped (paused, halted) are not counted.
func (p *Pacer) Ran(n int) {
	p.ran += n
}

// Stats returns the executed ticks and rendered frames counted over the
// last full second.
func (p *Pacer) Stats() (ips, fps int) {
	return p.lastIPS, p.lastFPS
}
