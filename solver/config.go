package solver

// Mode selects what the application does with a parsed problem.
type Mode uint8

const (
	// ModeDDAR runs the deductive solver (the default).
	ModeDDAR Mode = iota
	// ModeMatch only matches theorems and prints them.
	ModeMatch
)

func (m Mode) String() string {
	switch m {
	case ModeDDAR:
		return "ddar"
	case ModeMatch:
		return "match"
	}
	return "unknown"
}

// Config holds the solver feature flags.
type Config struct {
	// ARDist enables the additive length table.
	ARDist bool
	// ARSquared enables the additive squared-length table.
	ARSquared bool
	// ARSin enables sine-based theorems feeding the ratio table.
	// Off by default.
	ARSin bool
	// EqnStatements admits theorems whose hypotheses or conclusions
	// are raw equations.
	EqnStatements bool
	// ErrOnFailure makes an unsolved problem exit nonzero.
	ErrOnFailure bool
	// UseJSON selects JSON output.
	UseJSON bool
	// Mode selects solving vs. matching.
	Mode Mode
}

// DefaultConfig returns the default feature set: length and
// squared-length chasing on, sines off, equation statements admitted.
func DefaultConfig() *Config {
	return &Config{
		ARDist:        true,
		ARSquared:     true,
		ARSin:         false,
		EqnStatements: true,
		Mode:          ModeDDAR,
	}
}
