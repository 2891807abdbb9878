package retention

import "time"

const day = 24 * time.Hour

type Action int

const (
	ActionCopy Action = iota
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// AgeDays returns the whole days between modTime and now, truncated toward
// zero. A modTime in the future gives zero or a negative age.
func AgeDays(modTime, now time.Time) int {
	return int(now.Sub(modTime) / day)
}

// Decide keeps files whose age is at most threshold days.
func Decide(ageDays, threshold int) Action {
	if ageDays <= threshold {
		return ActionCopy
	}
	return ActionDelete
}
