package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dartlet-lang/dartlet/internal/linker"
	"github.com/dartlet-lang/dartlet/internal/object"
	"github.com/dartlet-lang/dartlet/internal/testsuite"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestDartletFixtures runs every bundled fixture program through the
// full lex-parse-link-eval pipeline and snapshots its output, mirroring
// the teacher's TestDWScriptFixtures category/snapshot pattern but over
// dartlet's much smaller bundled suite (internal/testsuite).
func TestDartletFixtures(t *testing.T) {
	categories := []struct {
		name       string
		names      []string
		getPath    func(string) string
		expectFail bool
	}{
		{"Pass", testsuite.Tests, testsuite.GetFilepath, false},
		{"Fail", testsuite.FailTests, testsuite.GetFailFilepath, true},
	}

	for _, cat := range categories {
		t.Run(cat.name, func(t *testing.T) {
			for _, name := range cat.names {
				name := name
				t.Run(name, func(t *testing.T) {
					runFixture(t, filepath.Join("..", "..", cat.getPath(name)), cat.expectFail)
				})
			}
		})
	}
}

func runFixture(t *testing.T, path string, expectFail bool) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s not found: %v", path, err)
	}

	dir, file := filepath.Dir(path), filepath.Base(path)
	objsys := object.NewSystem()
	lk := linker.New(dir, objsys)

	linkErr := lk.Link(file)
	if linkErr != nil {
		if !expectFail {
			t.Fatalf("unexpected link error: %v", linkErr)
		}
		snaps.MatchSnapshot(t, "error", linkErr.Error())
		return
	}

	var out bytes.Buffer
	e := New(lk.Globals(), lk.LookTables(), objsys, &out, false)
	runErr := e.Run(file)

	if expectFail {
		if runErr == nil {
			t.Fatalf("expected an error running %s, got none (output: %q)", path, out.String())
		}
		snaps.MatchSnapshot(t, "error", runErr.Error())
		return
	}
	if runErr != nil {
		t.Fatalf("unexpected error running %s: %v", path, runErr)
	}
	snaps.MatchSnapshot(t, "output", out.String())
}
