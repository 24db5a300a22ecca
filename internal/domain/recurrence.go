package domain

import (
	"fmt"
	"time"
)

type RepeatRule string

const (
	RepeatNone    RepeatRule = "none"
	RepeatDaily   RepeatRule = "daily"
	RepeatWeekly  RepeatRule = "weekly"
	RepeatMonthly RepeatRule = "monthly"
	RepeatYearly  RepeatRule = "yearly"
)

// NewRepeatRule parses r. An empty value yields RepeatNone.
func NewRepeatRule(r string) (RepeatRule, error) {
	switch RepeatRule(r) {
	case "":
		return RepeatNone, nil
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return RepeatRule(r), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRepeatRule, r)
	}
}

func (r RepeatRule) Repeats() bool {
	switch r {
	case RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	default:
		return false
	}
}

// advance moves base forward by k units. Months and years are anchored on
// base, so Jan 31 + 2 months is Mar 31 even though Jan 31 + 1 month
// normalizes to early March.
func (r RepeatRule) advance(base time.Time, k int) time.Time {
	switch r {
	case RepeatDaily:
		return base.AddDate(0, 0, k)
	case RepeatWeekly:
		return base.AddDate(0, 0, 7*k)
	case RepeatMonthly:
		return base.AddDate(0, k, 0)
	case RepeatYearly:
		return base.AddDate(k, 0, 0)
	default:
		return base
	}
}

// estimateSteps returns a step count close to the number of units between
// base and now. It may be off by one around DST shifts and month ends;
// NextOccurrence corrects for that.
func (r RepeatRule) estimateSteps(base, now time.Time) int {
	switch r {
	case RepeatDaily:
		return int(now.Sub(base) / (24 * time.Hour))
	case RepeatWeekly:
		return int(now.Sub(base) / (7 * 24 * time.Hour))
	case RepeatMonthly:
		return (now.Year()-base.Year())*12 + int(now.Month()-base.Month())
	case RepeatYearly:
		return now.Year() - base.Year()
	default:
		return 0
	}
}

// NextOccurrence returns the first occurrence of base under rule that is
// strictly after now. It returns false when rule does not repeat or when
// that occurrence lies after end. A base already after now is returned
// unchanged.
func NextOccurrence(base time.Time, rule RepeatRule, end *time.Time, now time.Time) (time.Time, bool) {
	if !rule.Repeats() {
		return time.Time{}, false
	}

	if base.After(now) {
		return base, true
	}

	k := max(rule.estimateSteps(base, now), 1)
	next := rule.advance(base, k)

	for !next.After(now) {
		k++
		next = rule.advance(base, k)
	}

	for k > 1 {
		prev := rule.advance(base, k-1)
		if !prev.After(now) {
			break
		}

		k--
		next = prev
	}

	if end != nil && next.After(*end) {
		return time.Time{}, false
	}

	return next, true
}
