package config

// Flag defaults.
const (
	DefaultPath         = "."
	DefaultFormat       = FormatText
	DefaultMode         = ModeAuto
	DefaultSelfTrailers = SelfTrailersIgnore
)
