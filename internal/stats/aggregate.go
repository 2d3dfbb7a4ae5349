// Package stats folds filter-accepted render records into running statistics
// and renders the requested report.
package stats

import (
	"github.com/backmassage/rendstat/internal/render"
)

// maxSample tracks the record holding the highest value seen for one metric.
// The comparison is strictly-greater, so on a tie the first record seen
// keeps the slot.
type maxSample struct {
	id    string
	value float64
	seen  bool
}

func (m *maxSample) observe(id string, v float64) {
	if !m.seen || v > m.value {
		m.id = id
		m.value = v
		m.seen = true
	}
}

// Aggregate is the running accumulator for one scan. It is created empty,
// updated once per accepted record in file-then-row order, and read only
// after the scan completes.
//
// Each metric keeps its own sample count: failed renders with empty columns
// still raise the total count without skewing the averages.
type Aggregate struct {
	count int

	timeSumMillis int64
	timeCount     int

	cpuSum   float64
	cpuCount int
	maxCPU   maxSample

	ramSum   float64
	ramCount int
	maxRAM   maxSample
}

// New returns an empty accumulator.
func New() *Aggregate {
	return &Aggregate{}
}

// Update folds one accepted record into the accumulator. Absent optional
// fields are skipped per metric, so a record missing one column still
// contributes to the other metrics and to the total count.
func (a *Aggregate) Update(rec render.Record) {
	a.count++

	if rec.RenderTimeMillis != nil {
		a.timeCount++
		a.timeSumMillis += *rec.RenderTimeMillis
	}

	if rec.PeakCPUPercent != nil {
		a.cpuCount++
		a.cpuSum += *rec.PeakCPUPercent
		a.maxCPU.observe(rec.ID, *rec.PeakCPUPercent)
	}

	if rec.PeakRAMMB != nil {
		a.ramCount++
		a.ramSum += *rec.PeakRAMMB
		a.maxRAM.observe(rec.ID, *rec.PeakRAMMB)
	}
}

// Count returns the total number of accepted records.
func (a *Aggregate) Count() int {
	return a.count
}

// AvgTimeSeconds returns the average render time in seconds, or 0 when no
// record carried a render time.
func (a *Aggregate) AvgTimeSeconds() float64 {
	if a.timeCount == 0 {
		return 0
	}
	return float64(a.timeSumMillis) / 1000 / float64(a.timeCount)
}

// AvgCPU returns the average peak CPU percentage, or 0 with no samples.
func (a *Aggregate) AvgCPU() float64 {
	if a.cpuCount == 0 {
		return 0
	}
	return a.cpuSum / float64(a.cpuCount)
}

// AvgRAM returns the average peak RAM in MB, or 0 with no samples.
func (a *Aggregate) AvgRAM() float64 {
	if a.ramCount == 0 {
		return 0
	}
	return a.ramSum / float64(a.ramCount)
}

// MaxCPUID returns the id of the record with the highest peak CPU, or ""
// when no record carried a CPU sample.
func (a *Aggregate) MaxCPUID() string {
	return a.maxCPU.id
}

// MaxRAMID returns the id of the record with the highest peak RAM, or ""
// when no record carried a RAM sample.
func (a *Aggregate) MaxRAMID() string {
	return a.maxRAM.id
}
