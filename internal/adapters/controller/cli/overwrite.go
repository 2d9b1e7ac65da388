package cli

import "strings"

// OverwriteDecision is the state of the overwrite confirmation:
// NotAsked until a target collision occurs, then Confirmed or Declined.
type OverwriteDecision int

const (
	NotAsked OverwriteDecision = iota
	Confirmed
	Declined
)

func (d OverwriteDecision) String() string {
	switch d {
	case Confirmed:
		return "confirmed"
	case Declined:
		return "declined"
	default:
		return "not asked"
	}
}

// DecideOverwrite maps a user answer to a decision. Only an explicit
// affirmative confirms, anything else declines.
func DecideOverwrite(answer string) OverwriteDecision {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "j", "ja":
		return Confirmed
	default:
		return Declined
	}
}
