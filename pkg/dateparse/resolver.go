// Package dateparse resolves natural-language due phrases (Russian and
// English) into absolute calendar dates anchored to a fixed timezone.
//
// Resolution is an ordered chain of deterministic matchers; a general-purpose
// natural-language parser (olebedev/when) is tried last. Resolution never
// returns an error: unresolvable phrases yield the empty string, and
// InferFromText always yields a date.
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/olebedev/when/rules/ru"
)

// Resolver converts date phrases to ISO calendar dates relative to an
// injectable reference "now" in a fixed IANA timezone.
type Resolver struct {
	location *time.Location
	now      func() time.Time
	nl       *when.Parser
}

// NewResolver creates a resolver for the given IANA timezone. The now
// function supplies the reference instant; pass nil for the wall clock.
func NewResolver(timezone string, now func() time.Time) (*Resolver, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if now == nil {
		now = time.Now
	}

	nl := when.New(nil)
	nl.Add(en.All...)
	nl.Add(ru.All...)
	nl.Add(common.All...)

	return &Resolver{location: loc, now: now, nl: nl}, nil
}

// Reference returns the reference date (midnight) in the resolver's timezone.
func (r *Resolver) Reference() time.Time {
	t := r.now().In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

var isoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ResolveExplicit returns s unchanged when it is already a valid YYYY-MM-DD
// calendar date, and "" for everything else. No inference is performed.
func (r *Resolver) ResolveExplicit(s string) string {
	s = strings.TrimSpace(s)
	if !isoRe.MatchString(s) {
		return ""
	}
	if _, err := time.Parse(ISODate, s); err != nil {
		return ""
	}
	return s
}

var (
	inDaysRe  = regexp.MustCompile(`^(?:через|in)\s+(\d+)\s*(?:дней|дня|день|дн|days?)$`)
	inWeeksRe = regexp.MustCompile(`^(?:через|in)\s+(\d+)\s*(?:недел(?:ю|и|ь)?|weeks?)$`)
	weekdayRe = regexp.MustCompile(`^(?:в|во|к|on|by)\s+(\p{L}+)$`)
	dmyRe     = regexp.MustCompile(`^(\d{2})[./-](\d{2})[./-](\d{4})$`)
	ymdRe     = regexp.MustCompile(`^(\d{4})[./-](\d{2})[./-](\d{2})$`)
)

// ResolveRelative resolves a whole-phrase relative date expression to an ISO
// date. Matchers run in a fixed precedence order; the first match wins.
// Unrecognized phrases yield "".
func (r *Resolver) ResolveRelative(phrase string) string {
	s := strings.ToLower(strings.TrimSpace(phrase))
	if s == "" {
		return ""
	}
	ref := r.Reference()

	switch s {
	case "сегодня", "today":
		return r.format(ref)
	case "завтра", "tomorrow":
		return r.format(ref.AddDate(0, 0, 1))
	case "послезавтра", "day after tomorrow":
		return r.format(ref.AddDate(0, 0, 2))
	}

	if m := inDaysRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return r.format(ref.AddDate(0, 0, n))
	}
	if m := inWeeksRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return r.format(ref.AddDate(0, 0, n*7))
	}

	if m := weekdayRe.FindStringSubmatch(s); m != nil {
		if idx, ok := weekdayIndex[m[1]]; ok {
			return r.format(nextWeekday(ref, idx))
		}
	}

	if m := dmyRe.FindStringSubmatch(s); m != nil {
		return r.calendarDate(m[3], m[2], m[1])
	}
	if m := ymdRe.FindStringSubmatch(s); m != nil {
		return r.calendarDate(m[1], m[2], m[3])
	}

	return r.naturalLanguage(s)
}

// InferFromText scans running text for a due phrase and always returns a
// valid ISO date, defaulting to reference + 3 days. This function is total.
func (r *Resolver) InferFromText(text string) string {
	s := strings.ToLower(text)
	ref := r.Reference()

	switch {
	case strings.Contains(s, "послезавтра"), strings.Contains(s, "day after tomorrow"):
		return r.format(ref.AddDate(0, 0, 2))
	case strings.Contains(s, "завтра"), strings.Contains(s, "tomorrow"):
		return r.format(ref.AddDate(0, 0, 1))
	case strings.Contains(s, "сегодня"), strings.Contains(s, "today"):
		return r.format(ref)
	}

	if m := scanDaysRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return r.format(ref.AddDate(0, 0, n))
	}
	if m := scanWeeksRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return r.format(ref.AddDate(0, 0, n*7))
	}

	for _, w := range weekdayScan {
		if strings.Contains(s, w.word) {
			return r.format(nextWeekday(ref, w.idx))
		}
	}

	for _, p := range thisWeekPhrases {
		if strings.Contains(s, p) {
			return r.format(ref.AddDate(0, 0, 7))
		}
	}

	if iso := r.naturalLanguage(s); iso != "" {
		return iso
	}

	return r.format(ref.AddDate(0, 0, DefaultInferOffsetDays))
}

var (
	scanDaysRe  = regexp.MustCompile(`(?:через|in)\s+(\d+)\s*(?:дн|день|day)`)
	scanWeeksRe = regexp.MustCompile(`(?:через|in)\s+(\d+)\s*(?:нед|week)`)
)

// naturalLanguage delegates to the general-purpose parser. Failures yield "".
func (r *Resolver) naturalLanguage(s string) string {
	res, err := r.nl.Parse(s, r.now().In(r.location))
	if err != nil || res == nil {
		return ""
	}
	return r.format(res.Time)
}

// calendarDate validates positional year/month/day strings against the real
// calendar. Out-of-range values (day 32, month 13) yield "".
func (r *Resolver) calendarDate(year, month, day string) string {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, r.location)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return ""
	}
	return r.format(t)
}

func (r *Resolver) format(t time.Time) string {
	return t.In(r.location).Format(ISODate)
}

// nextWeekday returns the next occurrence of the target weekday strictly
// after base. Monday=0..Sunday=6; same weekday rolls a full week forward.
func nextWeekday(base time.Time, target int) time.Time {
	baseIdx := (int(base.Weekday()) + 6) % 7
	delta := (target - baseIdx) % 7
	if delta <= 0 {
		delta += 7
	}
	return base.AddDate(0, 0, delta)
}
