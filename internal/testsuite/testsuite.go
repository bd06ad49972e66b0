// Package testsuite holds the bundled lists of fixture programs the
// `test`/`testfail` CLI actions run by name, grounded on
// original_source/src/main.rs's testlist::TESTS/FAILTESTS/get_filepath/
// get_failfilepath usage (testlist.rs itself was not part of the
// retrieved source, so the file-list and path-resolution shape below is
// reconstructed from how main.rs calls it).
package testsuite

import "path/filepath"

// TestPath and FailTestPath are the directories bundled fixture
// programs live under, relative to the module root.
const (
	TestPath     = "testdata/tests"
	FailTestPath = "testdata/failtests"
)

// Tests lists every bundled fixture expected to run to completion
// without a diagnostic.
var Tests = []string{
	"hello_world",
	"arithmetic",
	"string_interpolation",
	"control_flow",
	"classes",
	"imports_main",
}

// FailTests lists every bundled fixture expected to fail: a lex, parse,
// or eval diagnostic, depending on which stage it targets.
var FailTests = []string{
	"empty_program",
	"division_by_zero",
	"unterminated_string",
	"unknown_name",
}

// GetFilepath resolves a bundled test's bare name to its file path
// under TestPath, appending the ".dart" extension if the caller left
// it off (matching the way main.rs accepted bare test names on the
// command line).
func GetFilepath(name string) string {
	return resolve(TestPath, name)
}

// GetFailFilepath is GetFilepath's FailTestPath counterpart.
func GetFailFilepath(name string) string {
	return resolve(FailTestPath, name)
}

func resolve(dir, name string) string {
	if filepath.Ext(name) == "" {
		name += ".dart"
	}
	return filepath.Join(dir, name)
}
