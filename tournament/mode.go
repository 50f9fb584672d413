package tournament

import "fmt"

// Mode selects how pairings are built.
type Mode int

const (
	// ModeAll plays every bot in the list against every other.
	ModeAll Mode = iota
	// ModeOne plays a single challenger against every bot in the list.
	ModeOne
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "all":
		return ModeAll, nil
	case "one":
		return ModeOne, nil
	default:
		return 0, fmt.Errorf("mode value %q not recognised, expected all or one", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeOne:
		return "one"
	default:
		return "unknown"
	}
}
