package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	elapsed     time.Duration
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the target duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance samples the clock and adds the time since the previous sample to
// the tick accumulator and to the elapsed time returned by TakeDT.
func (f *FixedStep) Advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	f.elapsed += delta
}

// ShouldStep advances the clock and reports whether the simulation should
// advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	f.Advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// TakeDT returns the wall time accumulated since the previous TakeDT in
// milliseconds, the unit the engine's frame-rate estimate expects.
func (f *FixedStep) TakeDT() float64 {
	dt := f.elapsed
	f.elapsed = 0
	return float64(dt) / float64(time.Millisecond)
}
