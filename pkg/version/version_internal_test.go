package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetIdentity(t *testing.T) {
	t.Helper()

	oldVersion, oldCommit, oldDate := Version, Commit, Date
	Version, Commit, Date = "dev", unknown, unknown

	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })
}

func TestApplyBuildInfo(t *testing.T) {
	resetIdentity(t)

	applyBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "a1b2c3d"},
			{Key: "vcs.time", Value: "2024-01-10T12:00:00Z"},
		},
	})

	assert.Equal(t, "v0.3.0", Version)
	assert.Equal(t, "a1b2c3d", Commit)
	assert.Equal(t, "2024-01-10T12:00:00Z", Date)
	assert.Equal(t, "v0.3.0 (commit: a1b2c3d, built: 2024-01-10T12:00:00Z)", String())
}

func TestApplyBuildInfo_KeepsLinkerValues(t *testing.T) {
	resetIdentity(t)

	Version, Commit = "v1.0.0", "feedbeef"

	applyBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "a1b2c3d"}},
	})

	assert.Equal(t, "v1.0.0", Version)
	assert.Equal(t, "feedbeef", Commit)
	assert.Equal(t, unknown, Date)
}
