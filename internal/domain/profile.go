package domain

// DifficultyBias bounds: a soft difficulty signal layered on top of the CEFR
// band.
const (
	MinDifficultyBias = -1.5
	MaxDifficultyBias = 1.5
)

// UnknownBudget bounds: how many above-level terms one generated batch may
// introduce.
const (
	MinUnknownBudget = 0
	MaxUnknownBudget = 3
)

// Profile holds a user's adaptive learning parameters. It is mutated only by
// the difficulty controller; callers persist the returned value themselves.
type Profile struct {
	Level           CEFRLevel
	DifficultyBias  float64
	AllowIncidental bool
	UnknownBudget   int
	Style           Style
}

// DefaultProfile returns the profile assigned to a user before any feedback
// has been collected.
func DefaultProfile() Profile {
	return Profile{
		Level:           CEFRB1,
		DifficultyBias:  0,
		AllowIncidental: true,
		UnknownBudget:   1,
		Style:           StyleNeutral,
	}
}
