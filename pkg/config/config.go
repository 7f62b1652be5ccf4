// Package config resolves and validates the run configuration for endorse.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Sumatoshi-tech/endorse/pkg/audit"
)

// Sentinel validation errors.
var (
	ErrNoEmails            = errors.New("at least one --email is required")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidMode         = errors.New("invalid report mode")
	ErrInvalidSelfTrailers = errors.New("invalid self-trailers policy")
	ErrInvalidFormat       = errors.New("invalid output format")
	ErrEmptyRepositoryPath = errors.New("repository path must not be empty")
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report mode spellings. An empty mode picks one from the number of identities.
const (
	ModeAuto      = ""
	ModeExclusive = "exclusive"
	ModeAdditive  = "additive"
)

// Self-trailer policy spellings.
const (
	SelfTrailersIgnore = "ignore"
	SelfTrailersCount  = "count"
)

// Config holds one run's settings. Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Path         string   `mapstructure:"path"`
	Emails       []string `mapstructure:"email"`
	Since        string   `mapstructure:"since"`
	Partial      bool     `mapstructure:"partial"`
	Verbose      bool     `mapstructure:"verbose"`
	Mode         string   `mapstructure:"mode"`
	SelfTrailers string   `mapstructure:"self-trailers"`
	Format       string   `mapstructure:"format"`
	HTML         bool     `mapstructure:"html"`
	NoColor      bool     `mapstructure:"no-color"`
	Debug        bool     `mapstructure:"debug"`
	OTLPEndpoint string   `mapstructure:"otlp-endpoint"`

	// Cutoff is the parsed Since date, nil when unset.
	Cutoff *time.Time `mapstructure:"-"`
}

// Validate checks the settings and fills in derived fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return ErrEmptyRepositoryPath
	}

	if len(c.Emails) == 0 {
		return ErrNoEmails
	}

	if c.Since != "" {
		day, err := time.Parse(time.DateOnly, c.Since)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, c.Since)
		}

		c.Cutoff = &day
	}

	if !slices.Contains([]string{ModeAuto, ModeExclusive, ModeAdditive}, c.Mode) {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidMode, c.Mode, ModeExclusive, ModeAdditive)
	}

	if !slices.Contains([]string{SelfTrailersIgnore, SelfTrailersCount}, c.SelfTrailers) {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidSelfTrailers, c.SelfTrailers,
			SelfTrailersIgnore, SelfTrailersCount)
	}

	if !slices.Contains([]string{FormatText, FormatJSON, FormatYAML}, c.Format) {
		return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrInvalidFormat, c.Format,
			FormatText, FormatJSON, FormatYAML)
	}

	return nil
}

// Targets builds the identity set from the configured emails.
func (c *Config) Targets() (audit.Targets, error) {
	targets, err := audit.NewTargets(c.Emails...)
	if err != nil {
		return audit.Targets{}, fmt.Errorf("targets: %w", err)
	}

	return targets, nil
}

// MatchMode returns substring matching when --partial is set.
func (c *Config) MatchMode() audit.MatchMode {
	if c.Partial {
		return audit.MatchSubstring
	}

	return audit.MatchExact
}

// ReportMode resolves the counting policy for targets.
func (c *Config) ReportMode(targets audit.Targets) audit.ReportMode {
	switch c.Mode {
	case ModeExclusive:
		return audit.ReportExclusive
	case ModeAdditive:
		return audit.ReportAdditive
	default:
		return audit.DefaultReportMode(targets)
	}
}

// SelfTrailerPolicy maps the configured spelling to the classifier policy.
func (c *Config) SelfTrailerPolicy() audit.SelfTrailers {
	if c.SelfTrailers == SelfTrailersCount {
		return audit.SelfTrailersCount
	}

	return audit.SelfTrailersIgnore
}
