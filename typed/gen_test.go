package typed

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

// TestGeneratedUpToDate runs gen.go in a scratch directory and checks that
// its output matches the checked-in bags_gen.go.
func TestGeneratedUpToDate(t *testing.T) {
	t.Parallel()

	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not available")
	}

	src, err := os.ReadFile("gen.go")
	qt.Assert(t, err, qt.IsNil)
	dir := t.TempDir()
	qt.Assert(t, os.WriteFile(filepath.Join(dir, "gen.go"), src, 0o644), qt.IsNil)

	cmd := exec.Command(goTool, "run", "gen.go")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOFLAGS=")
	out, err := cmd.CombinedOutput()
	qt.Assert(t, err, qt.IsNil, qt.Commentf("go run gen.go: %s", out))

	got, err := os.ReadFile(filepath.Join(dir, "bags_gen.go"))
	qt.Assert(t, err, qt.IsNil)
	want, err := os.ReadFile("bags_gen.go")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, string(got), qt.Equals, string(want))
}
