package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Segment is one span of a school day with a constant occupancy.
type Segment struct {
	DurationMinutes int64 `yaml:"duration_minutes"`
	Students        int   `yaml:"students"`
}

// DaySchedule is the exogenous occupancy scenario for a run: a finite
// ordered list of segments. It is pure data with no dependency on the
// environment or actuator state; swapping in a different day requires no
// change to the model or the controller.
type DaySchedule struct {
	Segments []Segment `yaml:"segments"`
}

// DefaultSchoolDay covers the reference 480-minute day: an empty morning
// hour, two long classes around a short break, a quiet lunch span, and an
// afternoon block.
func DefaultSchoolDay() *DaySchedule {
	return &DaySchedule{Segments: []Segment{
		{DurationMinutes: 60, Students: 0},
		{DurationMinutes: 90, Students: 30},
		{DurationMinutes: 15, Students: 5},
		{DurationMinutes: 90, Students: 25},
		{DurationMinutes: 45, Students: 3},
		{DurationMinutes: 90, Students: 28},
		{DurationMinutes: 15, Students: 5},
		{DurationMinutes: 75, Students: 20},
	}}
}

// LoadSchedule reads a DaySchedule from a YAML file with strict field
// checking.
func LoadSchedule(path string) (*DaySchedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}

	var day DaySchedule
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&day); err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}
	if err := day.Validate(); err != nil {
		return nil, err
	}
	return &day, nil
}

// Validate rejects empty and numerically invalid schedules.
func (d *DaySchedule) Validate() error {
	if len(d.Segments) == 0 {
		return fmt.Errorf("schedule needs at least one segment")
	}
	for i, seg := range d.Segments {
		if seg.DurationMinutes <= 0 {
			return fmt.Errorf("segment %d: duration_minutes must be positive, got %d", i, seg.DurationMinutes)
		}
		if seg.Students < 0 {
			return fmt.Errorf("segment %d: students must be non-negative, got %d", i, seg.Students)
		}
	}
	return nil
}

// TotalMinutes returns the summed duration of all segments.
func (d *DaySchedule) TotalMinutes() int64 {
	var total int64
	for _, seg := range d.Segments {
		total += seg.DurationMinutes
	}
	return total
}

// Cursor returns a fresh forward iterator over the schedule. Each run takes
// its own cursor, which makes the schedule restartable.
func (d *DaySchedule) Cursor() *ScheduleCursor {
	c := &ScheduleCursor{segments: d.Segments}
	if len(d.Segments) > 0 {
		c.segEnd = d.Segments[0].DurationMinutes
	}
	return c
}

// ScheduleCursor walks a DaySchedule lazily in simulated-time order.
type ScheduleCursor struct {
	segments []Segment
	idx      int
	segEnd   int64
}

// Students returns the occupancy for minute t. Queries must be
// non-decreasing in t; past the last segment the room is empty.
func (c *ScheduleCursor) Students(t int64) int {
	for c.idx < len(c.segments) && t >= c.segEnd {
		c.idx++
		if c.idx < len(c.segments) {
			c.segEnd += c.segments[c.idx].DurationMinutes
		}
	}
	if c.idx >= len(c.segments) {
		return 0
	}
	return c.segments[c.idx].Students
}
