package pacing

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ClassSeverelyUnder = "severely_under"
	ClassUnder         = "under"
	ClassOnTrack       = "on_track"
	ClassOver          = "over"
	ClassCritical      = "critical"
	ClassUnknown       = "unknown"
)

const (
	ActionNone           = "none"
	ActionIncreaseBudget = "increase_budget"
	ActionReview         = "review"
	ActionThrottle       = "throttle"
	ActionPause          = "pause"
)

// Classification thresholds on the pacing ratio.
const (
	severelyUnderBelow = 0.50
	underBelow         = 0.85
	onTrackUpTo        = 1.10
	overUpTo           = 1.25
)

// Evaluation is the result of pacing one campaign at a point in time.
type Evaluation struct {
	MonthToDate    decimal.Decimal
	DailyBurnRate  decimal.Decimal
	Projected      decimal.Decimal
	PacingRatio    float64
	Classification string
	Action         string
}

// Evaluate projects month-end spend from the trailing daily burn rate and
// classifies the campaign's trajectory against its monthly budget.
//
// The burn rate is the average of the trailing window; when history is
// shorter than the window it falls back to the month-to-date average, so a
// campaign on its first days is judged by what it has actually spent.
func Evaluate(monthlyBudget, monthToDate decimal.Decimal, trailing []decimal.Decimal, now time.Time) Evaluation {
	ev := Evaluation{
		MonthToDate:    monthToDate,
		Classification: ClassUnknown,
		Action:         ActionNone,
	}

	if monthlyBudget.LessThanOrEqual(decimal.Zero) {
		ev.Projected = monthToDate
		return ev
	}

	daysElapsed := now.Day()
	daysInMonth := daysIn(now)
	daysRemaining := daysInMonth - daysElapsed

	ev.DailyBurnRate = burnRate(monthToDate, trailing, daysElapsed)
	ev.Projected = monthToDate.Add(ev.DailyBurnRate.Mul(decimal.NewFromInt(int64(daysRemaining))))

	ratio, _ := ev.Projected.Div(monthlyBudget).Float64()
	ev.PacingRatio = ratio

	switch {
	case ratio < severelyUnderBelow:
		ev.Classification = ClassSeverelyUnder
		ev.Action = ActionIncreaseBudget
	case ratio < underBelow:
		ev.Classification = ClassUnder
		ev.Action = ActionReview
	case ratio <= onTrackUpTo:
		ev.Classification = ClassOnTrack
		ev.Action = ActionNone
	case ratio <= overUpTo:
		ev.Classification = ClassOver
		ev.Action = ActionThrottle
	default:
		ev.Classification = ClassCritical
		ev.Action = ActionPause
	}

	return ev
}

func burnRate(monthToDate decimal.Decimal, trailing []decimal.Decimal, daysElapsed int) decimal.Decimal {
	if len(trailing) > 0 {
		sum := decimal.Zero
		for _, spend := range trailing {
			sum = sum.Add(spend)
		}
		return sum.Div(decimal.NewFromInt(int64(len(trailing))))
	}

	if daysElapsed > 0 {
		return monthToDate.Div(decimal.NewFromInt(int64(daysElapsed)))
	}

	return decimal.Zero
}

func daysIn(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}

// MonthStart returns midnight on the first day of now's month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
