package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRollingAverage(t *testing.T) {
	r := NewRollingAverage(3)
	assert.Equal(t, time.Duration(0), r.Average())

	r.Add(10 * time.Millisecond)
	r.Add(20 * time.Millisecond)
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, 15*time.Millisecond, r.Average())

	r.Add(30 * time.Millisecond)
	r.Add(40 * time.Millisecond) // evicts 10ms
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, 30*time.Millisecond, r.Average())
}

func TestFrameMonitor(t *testing.T) {
	m := NewFrameMonitor(10)

	m.RecordBuild(4*time.Millisecond, nil)
	m.RecordBuild(time.Second, errors.New("resource not found"))
	m.RecordPaint(2 * time.Millisecond)
	m.RecordPaint(4 * time.Millisecond)

	r := m.Report()
	assert.Equal(t, 2, r.Builds)
	assert.Equal(t, 1, r.FailedBuilds)
	assert.Equal(t, 2, r.Frames)
	assert.InDelta(t, 4.0, r.AvgBuildMs, 1e-9)
	assert.InDelta(t, 3.0, r.AvgPaintMs, 1e-9)
}
