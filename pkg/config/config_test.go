package config_test

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/endorse/pkg/audit"
	"github.com/Sumatoshi-tech/endorse/pkg/config"
)

func load(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))

	return config.Load(flags)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(t, "--email", "Jane@Example.com")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPath, cfg.Path)
	assert.Equal(t, []string{"Jane@Example.com"}, cfg.Emails)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ModeAuto, cfg.Mode)
	assert.Equal(t, config.SelfTrailersIgnore, cfg.SelfTrailers)
	assert.Nil(t, cfg.Cutoff)
	assert.False(t, cfg.Partial)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, audit.MatchExact, cfg.MatchMode())
	assert.Equal(t, audit.SelfTrailersIgnore, cfg.SelfTrailerPolicy())
}

func TestLoad_AllFlags(t *testing.T) {
	t.Parallel()

	cfg, err := load(t,
		"--path", "/src/linux",
		"--email", "a@example.com",
		"-e", "b@example.com,c@example.com",
		"--since", "2024-01-05",
		"--partial",
		"--verbose",
		"--mode", "exclusive",
		"--self-trailers", "count",
		"--format", "yaml",
		"--html",
		"--no-color",
		"--debug",
		"--otlp-endpoint", "localhost:4317",
	)
	require.NoError(t, err)

	assert.Equal(t, "/src/linux", cfg.Path)
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, cfg.Emails)
	require.NotNil(t, cfg.Cutoff)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *cfg.Cutoff)
	assert.True(t, cfg.Partial)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.HTML)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, audit.MatchSubstring, cfg.MatchMode())
	assert.Equal(t, audit.SelfTrailersCount, cfg.SelfTrailerPolicy())

	targets, err := cfg.Targets()
	require.NoError(t, err)
	assert.Equal(t, audit.ReportExclusive, cfg.ReportMode(targets))
}

func TestReportMode_Auto(t *testing.T) {
	t.Parallel()

	cfg, err := load(t, "--email", "a@example.com", "--email", "b@example.com")
	require.NoError(t, err)

	targets, err := cfg.Targets()
	require.NoError(t, err)
	assert.Equal(t, audit.ReportAdditive, cfg.ReportMode(targets))

	cfg.Mode = config.ModeExclusive
	assert.Equal(t, audit.ReportExclusive, cfg.ReportMode(targets))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing email", nil, config.ErrNoEmails},
		{"bad date", []string{"-e", "a@b", "--since", "05/01/2024"}, config.ErrInvalidDate},
		{"datetime is not a date", []string{"-e", "a@b", "--since", "2024-01-05T00:00:00Z"}, config.ErrInvalidDate},
		{"bad mode", []string{"-e", "a@b", "--mode", "both"}, config.ErrInvalidMode},
		{"bad self trailers", []string{"-e", "a@b", "--self-trailers", "maybe"}, config.ErrInvalidSelfTrailers},
		{"bad format", []string{"-e", "a@b", "--format", "xml"}, config.ErrInvalidFormat},
		{"empty path", []string{"-e", "a@b", "--path", " "}, config.ErrEmptyRepositoryPath},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := load(t, tc.args...)

			assert.Nil(t, cfg)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTargets_RejectsBlank(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Emails: []string{""}}

	_, err := cfg.Targets()
	require.ErrorIs(t, err, audit.ErrEmptyTarget)
}
