package csp

import (
	"sort"
	"time"
)

// Domain is the mutable set of candidate dates still open to a single
// meeting. Every meeting owns its Domain: filtering one never affects
// another.
type Domain struct {
	dates map[time.Time]struct{}
}

// NewDomain returns the Domain holding every day from start to end
// inclusive. It is empty when start falls after end.
func NewDomain(start, end time.Time) *Domain {
	d := &Domain{dates: map[time.Time]struct{}{}}
	last := Day(end)
	for day := Day(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		d.dates[day] = struct{}{}
	}
	return d
}

// NewDomains returns n independent Domains over the same date range,
// one per meeting index.
func NewDomains(n int, start, end time.Time) []*Domain {
	domains := make([]*Domain, n)
	for i := range domains {
		domains[i] = NewDomain(start, end)
	}
	return domains
}

// Len returns the number of candidate dates remaining.
func (d *Domain) Len() int {
	return len(d.dates)
}

// Empty reports whether no candidate dates remain.
func (d *Domain) Empty() bool {
	return len(d.dates) == 0
}

// Has reports whether date is still a candidate.
func (d *Domain) Has(date time.Time) bool {
	_, ok := d.dates[Day(date)]
	return ok
}

// Dates returns the remaining candidates in ascending order.
func (d *Domain) Dates() []time.Time {
	dates := make([]time.Time, 0, len(d.dates))
	for date := range d.dates {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// Retain keeps only the candidates for which keep returns true and
// returns the number of dates dropped. The predicate runs against a
// snapshot, so it may consult the Domain it is filtering.
func (d *Domain) Retain(keep func(date time.Time) bool) int {
	kept := make(map[time.Time]struct{}, len(d.dates))
	for date := range d.dates {
		if keep(date) {
			kept[date] = struct{}{}
		}
	}
	removed := len(d.dates) - len(kept)
	d.dates = kept
	return removed
}
