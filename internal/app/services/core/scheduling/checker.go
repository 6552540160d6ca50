package scheduling

import (
	"medplan-service/internal/app/config"
	"medplan-service/internal/app/models"
	"sort"
	"time"
)

type OutcomeKind string

const (
	OutcomeAccepted           OutcomeKind = "accepted"
	OutcomeRejectedOverlap    OutcomeKind = "rejected_overlap"
	OutcomeRejectedQuotaHours OutcomeKind = "rejected_quota_hours"
	OutcomeRejectedQuotaCount OutcomeKind = "rejected_quota_count"
)

type CheckOutcome struct {
	Kind OutcomeKind

	// set for OutcomeRejectedOverlap
	ConflictingEventID string

	// set for OutcomeRejectedQuotaHours
	ComputedHours float64
	LimitHours    float64

	// set for OutcomeRejectedQuotaCount
	ComputedCount int
	LimitCount    int
}

const rollingQuotaWindow = 7 * 24 * time.Hour

// ConflictChecker is a pure computation over a candidate event and the
// owning staff member's existing Scheduled commitments. It performs no
// I/O and reads no clock, so identical inputs always yield identical
// outcomes.
type ConflictChecker struct {
	quota config.Quota
}

func NewConflictChecker(quota config.Quota) *ConflictChecker {
	return &ConflictChecker{quota: quota}
}

// Check validates the candidate against overlap and, for guard shifts,
// the weekly quotas. existing must be pre-filtered to the same staff
// member with status Scheduled; it is expected sorted by start time and
// sorted here when it is not, so the first conflict reported is always
// the earliest-starting one.
func (c *ConflictChecker) Check(candidate *models.MedicalEvent, existing []models.MedicalEvent) CheckOutcome {
	if !sort.SliceIsSorted(existing, func(i, j int) bool {
		return existing[i].Start.Before(existing[j].Start)
	}) {
		sorted := make([]models.MedicalEvent, len(existing))
		copy(sorted, existing)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Start.Before(sorted[j].Start)
		})
		existing = sorted
	}

	for i := range existing {
		if candidate.Overlaps(&existing[i]) {
			return CheckOutcome{
				Kind:               OutcomeRejectedOverlap,
				ConflictingEventID: existing[i].ID,
			}
		}
	}

	if candidate.Type != models.EventTypeGuardShift {
		return CheckOutcome{Kind: OutcomeAccepted}
	}

	if outcome, exceeded := c.checkRollingHours(candidate, existing); exceeded {
		return outcome
	}
	if outcome, exceeded := c.checkWeeklyCount(candidate, existing); exceeded {
		return outcome
	}
	return CheckOutcome{Kind: OutcomeAccepted}
}

// checkRollingHours accumulates guard-shift duration over the 7x24h span
// ending at the candidate's end, candidate included.
func (c *ConflictChecker) checkRollingHours(candidate *models.MedicalEvent, existing []models.MedicalEvent) (CheckOutcome, bool) {
	windowStart := candidate.End.Add(-rollingQuotaWindow)
	window := models.MedicalEvent{Start: windowStart, End: candidate.End}

	total := candidate.Duration()
	for i := range existing {
		if existing[i].Type != models.EventTypeGuardShift {
			continue
		}
		if window.Overlaps(&existing[i]) {
			total += existing[i].Duration()
		}
	}

	if total.Hours() > c.quota.GuardMaxRollingHours {
		return CheckOutcome{
			Kind:          OutcomeRejectedQuotaHours,
			ComputedHours: total.Hours(),
			LimitHours:    c.quota.GuardMaxRollingHours,
		}, true
	}
	return CheckOutcome{}, false
}

// checkWeeklyCount counts guard shifts starting in the candidate's ISO
// week, candidate included.
func (c *ConflictChecker) checkWeeklyCount(candidate *models.MedicalEvent, existing []models.MedicalEvent) (CheckOutcome, bool) {
	candidateYear, candidateWeek := candidate.Start.ISOWeek()

	count := 1
	for i := range existing {
		if existing[i].Type != models.EventTypeGuardShift {
			continue
		}
		year, week := existing[i].Start.ISOWeek()
		if year == candidateYear && week == candidateWeek {
			count++
		}
	}

	if count > c.quota.GuardMaxWeeklyCount {
		return CheckOutcome{
			Kind:          OutcomeRejectedQuotaCount,
			ComputedCount: count,
			LimitCount:    c.quota.GuardMaxWeeklyCount,
		}, true
	}
	return CheckOutcome{}, false
}
