// Package budget keeps an opportunistic ledger of projected spend and maps
// it onto budget zones for the progress display.
package budget

// Zone represents the current spend level against the daily budget.
type Zone int

const (
	ZoneGreen  Zone = iota // 0–60%
	ZoneYellow             // 60–80%
	ZoneOrange             // 80–90%
	ZoneRed                // 90–100%+
)

// String returns a human-readable label for the zone.
func (z Zone) String() string {
	switch z {
	case ZoneYellow:
		return "YELLOW"
	case ZoneOrange:
		return "ORANGE"
	case ZoneRed:
		return "RED"
	default:
		return "GREEN"
	}
}

// ZoneFor maps spend against a daily budget onto a zone.
// A zero or negative budget always reads as green.
func ZoneFor(spent, budget float64) Zone {
	if budget <= 0 {
		return ZoneGreen
	}
	pct := spent / budget * 100
	switch {
	case pct >= 90:
		return ZoneRed
	case pct >= 80:
		return ZoneOrange
	case pct >= 60:
		return ZoneYellow
	default:
		return ZoneGreen
	}
}

// Progress is a snapshot of today's projected spend against the budget.
type Progress struct {
	Spent   float64
	Budget  float64
	Percent float64
	Zone    Zone
	Entries int
}
