package domain

import (
	"sort"
	"time"
)

// MaxDisplaySlots is how many IN/OUT columns the daily report exposes.
const MaxDisplaySlots = 5

// DailySummary is one calendar day of one employee's ledger. Events holds
// every stamp for the work date, sorted ascending by actual time; it may be
// empty, because the month view produces a full calendar grid.
type DailySummary struct {
	EmployeeCode string
	WorkDate     string
	Events       []*StampEvent
}

// StampPair is a matched IN/OUT pair used for duration math and display.
type StampPair struct {
	In  *StampEvent
	Out *StampEvent
}

// Day returns the work date as a time.Time, or the zero value if the date
// string is malformed.
func (d *DailySummary) Day() time.Time {
	t, err := time.Parse(WorkDateLayout, d.WorkDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Pairs walks the day's events in actual-time order and matches each IN that
// is immediately followed by an OUT. Once a pair is consumed, scanning
// resumes after it, so IN/IN or OUT/OUT runs and unpaired trailing events
// contribute no pair.
func (d *DailySummary) Pairs() []StampPair {
	events := d.sorted()
	var pairs []StampPair
	for i := 0; i < len(events)-1; i++ {
		if events[i].Kind == StampIn && events[i+1].Kind == StampOut {
			pairs = append(pairs, StampPair{In: events[i], Out: events[i+1]})
			i++
		}
	}
	return pairs
}

// TotalWorked sums rounded OUT minus rounded IN over every matched pair.
// Negative or zero differences are discarded, not subtracted.
func (d *DailySummary) TotalWorked() time.Duration {
	var total time.Duration
	for _, p := range d.Pairs() {
		if diff := p.Out.RoundedTime.Sub(p.In.RoundedTime); diff > 0 {
			total += diff
		}
	}
	return total
}

// NthOfKind returns the k-th event (1-based) of the given kind in
// actual-time order, or nil. Positional, independent of pairing: the 3rd IN
// and the 3rd OUT are reported even when they do not pair with each other.
func (d *DailySummary) NthOfKind(kind StampKind, k int) *StampEvent {
	if k < 1 {
		return nil
	}
	n := 0
	for _, e := range d.sorted() {
		if e.Kind != kind {
			continue
		}
		n++
		if n == k {
			return e
		}
	}
	return nil
}

// In returns the k-th clock-in of the day, or nil.
func (d *DailySummary) In(k int) *StampEvent { return d.NthOfKind(StampIn, k) }

// Out returns the k-th clock-out of the day, or nil.
func (d *DailySummary) Out(k int) *StampEvent { return d.NthOfKind(StampOut, k) }

func (d *DailySummary) sorted() []*StampEvent {
	events := make([]*StampEvent, len(d.Events))
	copy(events, d.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].ActualTime.Before(events[j].ActualTime)
	})
	return events
}
