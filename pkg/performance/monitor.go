package performance

import (
	"sync"
	"time"
)

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples []time.Duration
	sum     time.Duration
	index   int
	filled  bool
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{samples: make([]time.Duration, windowSize)}
}

// Add records a new sample, evicting the oldest once the window is full
func (r *RollingAverage) Add(d time.Duration) {
	if r.filled {
		r.sum -= r.samples[r.index]
	}
	r.samples[r.index] = d
	r.sum += d

	r.index++
	if r.index == len(r.samples) {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average, zero with no samples
func (r *RollingAverage) Average() time.Duration {
	count := r.Count()
	if count == 0 {
		return 0
	}
	return r.sum / time.Duration(count)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	if r.filled {
		return len(r.samples)
	}
	return r.index
}

// FrameMonitor tracks how long the card takes to build and to paint
type FrameMonitor struct {
	mu           sync.Mutex
	buildTimes   *RollingAverage
	paintTimes   *RollingAverage
	builds       int
	failedBuilds int
	frames       int
	startTime    time.Time
}

// Report is a snapshot of FrameMonitor
type Report struct {
	AvgBuildMs    float64 // Render + solve of the layout tree
	AvgPaintMs    float64 // Drawing the solved tree
	Builds        int
	FailedBuilds  int
	Frames        int
	UptimeSeconds int64
}

// NewFrameMonitor averages over the last windowSize samples
func NewFrameMonitor(windowSize int) *FrameMonitor {
	return &FrameMonitor{
		buildTimes: NewRollingAverage(windowSize),
		paintTimes: NewRollingAverage(windowSize),
		startTime:  time.Now(),
	}
}

// RecordBuild records one layout build; failed builds keep no timing
func (m *FrameMonitor) RecordBuild(d time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.builds++
	if err != nil {
		m.failedBuilds++
		return
	}
	m.buildTimes.Add(d)
}

// RecordPaint records one painted frame
func (m *FrameMonitor) RecordPaint(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frames++
	m.paintTimes.Add(d)
}

// Report returns the current metrics
func (m *FrameMonitor) Report() Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Report{
		AvgBuildMs:    float64(m.buildTimes.Average().Microseconds()) / 1000.0,
		AvgPaintMs:    float64(m.paintTimes.Average().Microseconds()) / 1000.0,
		Builds:        m.builds,
		FailedBuilds:  m.failedBuilds,
		Frames:        m.frames,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
	}
}
