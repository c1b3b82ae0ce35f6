package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit, origBuildDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origGitCommit, origBuildDate
	})

	// simulating build-time ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2024-01-15T10:30:00Z")
	}
}

func TestColored_PlainWhenColorDisabled(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() {
		Version, color.NoColor = origVersion, origNoColor
	})
	color.NoColor = true

	cases := []string{
		"0.1.0",
		"1.2.3",
		"2.0.0-alpha",
		"1.0.0-beta.1",
		"0.1.0-dev",
		"1.2.3-rc.1+build.123",
		"dev",
		"1.2",
	}
	for _, v := range cases {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() for %q = %q", v, got)
		}
	}
}

func TestColored_WrapsComponents(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() {
		Version, color.NoColor = origVersion, origNoColor
	})
	color.NoColor = false
	Version = "1.2.3-dev"

	got := Colored()
	want := versionMajorColor.Sprint("1") + "." + versionMinorColor.Sprint("2") + "." + versionPatchColor.Sprint("3") + "-dev"
	if got != want {
		t.Errorf("Colored() = %q, want %q", got, want)
	}
	if got == Version {
		t.Error("expected escape sequences")
	}
}

// BenchmarkVersionAccess benchmarks accessing version variables
func BenchmarkVersionAccess(b *testing.B) {
	b.Run("Version", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Version
		}
	})

	b.Run("Colored", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Colored()
		}
	})
}
