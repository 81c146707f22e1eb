// Package alerts classifies candidates into the five dashboard alert
// categories and groups the matches per role. Everything here is pure: the
// caller supplies now and decides which roles are visible.
package alerts

import (
	"time"

	"github.com/twillhq/talentboard/internal/calendar"
	"github.com/twillhq/talentboard/internal/domain"
)

type Category string

const (
	CategoryNewSubmission        Category = "new"
	CategoryQualifiedStalled     Category = "qualified"
	CategoryTwillScreenStalled   Category = "twill_screen"
	CategoryClientProcessStalled Category = "client_process"
	CategoryFinalStagesStalled   Category = "final_stages"
)

type Tier string

const (
	TierCritical Tier = "critical"
	TierUrgent   Tier = "urgent"
)

// Categories lists every category, critical first.
func Categories() []Category {
	return []Category{
		CategoryClientProcessStalled,
		CategoryNewSubmission,
		CategoryQualifiedStalled,
		CategoryTwillScreenStalled,
		CategoryFinalStagesStalled,
	}
}

const (
	newSubmissionWindow    = 24 * time.Hour
	qualifiedThreshold     = 3
	twillScreenThreshold   = 3
	clientProcessThreshold = 5
	finalStagesThreshold   = 3
)

func (c Category) Tier() Tier {
	if c == CategoryClientProcessStalled {
		return TierCritical
	}
	return TierUrgent
}

// Manual reports whether the category needs an explicit clear. The other
// categories clear themselves when the candidate changes stage.
func (c Category) Manual() bool {
	return c == CategoryClientProcessStalled || c == CategoryFinalStagesStalled
}

func (c Category) Label() string {
	switch c {
	case CategoryNewSubmission:
		return "New submissions"
	case CategoryQualifiedStalled:
		return "Qualified 3+ days"
	case CategoryTwillScreenStalled:
		return "Twill screen 3+ days"
	case CategoryClientProcessStalled:
		return "Client process 5+ days"
	case CategoryFinalStagesStalled:
		return "Final stages 3+ days"
	}
	return string(c)
}

// Match is one category a candidate falls into.
type Match struct {
	Category    Category
	DaysInStage int
}

// Classify returns every category the candidate matches at now, in
// Categories order. Categories are evaluated independently.
func Classify(c domain.Candidate, now time.Time) []Match {
	var out []Match
	sinceUpdate := calendar.BusinessDaysSince(c.LastUpdatedDate, now)

	if c.CurrentStage == domain.StageInClientProcess && rearmed(c, now, sinceUpdate, clientProcessThreshold) {
		out = append(out, Match{Category: CategoryClientProcessStalled, DaysInStage: sinceUpdate})
	}

	if isNewSubmission(c, now) {
		out = append(out, Match{Category: CategoryNewSubmission})
	}

	switch c.CurrentStage {
	case domain.StageQualified:
		if sinceUpdate >= qualifiedThreshold {
			out = append(out, Match{Category: CategoryQualifiedStalled, DaysInStage: sinceUpdate})
		}
	case domain.StageTwillInterview:
		if sinceUpdate >= twillScreenThreshold {
			out = append(out, Match{Category: CategoryTwillScreenStalled, DaysInStage: sinceUpdate})
		}
	case domain.StageFinalStages:
		if rearmed(c, now, sinceUpdate, finalStagesThreshold) {
			out = append(out, Match{Category: CategoryFinalStagesStalled, DaysInStage: sinceUpdate})
		}
	}
	return out
}

// isNewSubmission matches candidates submitted within the last 24 hours of
// wall-clock time that have not moved since.
func isNewSubmission(c domain.Candidate, now time.Time) bool {
	if c.SubmittedDate.Before(now.Add(-newSubmissionWindow)) {
		return false
	}
	return !c.MovedSinceSubmission()
}

// rearmed applies the manual-clear rule: once cleared, the alert stays quiet
// until threshold business days have passed since the clear.
func rearmed(c domain.Candidate, now time.Time, sinceUpdate, threshold int) bool {
	if c.HasClearTimestamp() {
		return calendar.BusinessDaysSince(*c.AlertClearedDate, now) >= threshold
	}
	return sinceUpdate >= threshold
}
