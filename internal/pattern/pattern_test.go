package pattern_test

import (
	"errors"
	"testing"

	"github.com/temirov/code2clipboard/internal/pattern"
)

func TestPatternMatches(t *testing.T) {
	testCases := []struct {
		name         string
		pattern      string
		relativePath string
		expected     bool
	}{
		{name: "suffix at root", pattern: "*.py", relativePath: "main.py", expected: true},
		{name: "suffix at depth", pattern: "*.py", relativePath: "pkg/sub/utils.py", expected: true},
		{name: "suffix mismatch", pattern: "*.py", relativePath: "README.md", expected: false},
		{name: "star stays inside a segment", pattern: "src/*.go", relativePath: "src/sub/a.go", expected: false},
		{name: "anchored path", pattern: "src/*.go", relativePath: "src/a.go", expected: true},
		{name: "anchored path not at depth", pattern: "src/*.go", relativePath: "lib/src/a.go", expected: false},
		{name: "directory subtree", pattern: "vendor/", relativePath: "vendor/github.com/x/y.go", expected: true},
		{name: "directory subtree at depth", pattern: "node_modules/", relativePath: "web/node_modules/index.js", expected: true},
		{name: "directory pattern skips files with same name", pattern: "build/", relativePath: "build", expected: false},
		{name: "bare name matches directory subtree", pattern: "build", relativePath: "build/out.txt", expected: true},
		{name: "bare name matches file", pattern: "build", relativePath: "scripts/build", expected: true},
		{name: "leading slash anchors", pattern: "/docs", relativePath: "site/docs/index.md", expected: false},
		{name: "leading slash anchored match", pattern: "/docs", relativePath: "docs/index.md", expected: true},
		{name: "double star prefix", pattern: "**/testdata/*.json", relativePath: "a/b/testdata/c.json", expected: true},
		{name: "double star matches zero segments", pattern: "**/testdata/*.json", relativePath: "testdata/c.json", expected: true},
		{name: "double star inside", pattern: "src/**/*.go", relativePath: "src/a/b/c.go", expected: true},
		{name: "case sensitive", pattern: "*.PY", relativePath: "main.py", expected: false},
		{name: "question mark", pattern: "file?.txt", relativePath: "file1.txt", expected: true},
		{name: "character class", pattern: "[ab].txt", relativePath: "b.txt", expected: true},
		{name: "backslash separators", pattern: `src\*.go`, relativePath: "src/a.go", expected: true},
		{name: "empty pattern matches nothing", pattern: "", relativePath: "a.go", expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			compiled, compileError := pattern.Compile(testCase.pattern)
			if compileError != nil {
				t.Fatalf("unexpected compile error: %v", compileError)
			}
			if actual := compiled.Matches(testCase.relativePath); actual != testCase.expected {
				t.Fatalf("pattern %q against %q: expected %t, got %t", testCase.pattern, testCase.relativePath, testCase.expected, actual)
			}
		})
	}
}

func TestMalformedPatternFallsBackToLiteral(t *testing.T) {
	compiled, compileError := pattern.Compile("[abc")
	if !errors.Is(compileError, pattern.ErrMalformedPattern) {
		t.Fatalf("expected ErrMalformedPattern, got %v", compileError)
	}
	if compiled.Matches("a") {
		t.Fatalf("malformed pattern must not behave as a character class")
	}
	if !compiled.Matches("[abc") {
		t.Fatalf("malformed pattern should match its literal text")
	}
	if compiled.String() != "[abc" {
		t.Fatalf("expected source to be preserved, got %q", compiled.String())
	}
}

func TestMatchesDirectory(t *testing.T) {
	compiled, _ := pattern.Compile("dist/")
	if !compiled.MatchesDirectory("web/dist") {
		t.Fatalf("expected directory pattern to match directory")
	}
	if compiled.MatchesDirectory("web") {
		t.Fatalf("did not expect ancestor-less directory to match")
	}
}

func TestSetPrecedence(t *testing.T) {
	set, compileErrors := pattern.NewSet([]string{"*.py", "docs/"}, []string{"test_*.py", "docs/drafts/"})
	if len(compileErrors) != 0 {
		t.Fatalf("unexpected compile errors: %v", compileErrors)
	}
	testCases := []struct {
		relativePath string
		expected     bool
	}{
		{relativePath: "main.py", expected: true},
		{relativePath: "pkg/test_main.py", expected: false},
		{relativePath: "README.md", expected: false},
		{relativePath: "docs/guide.md", expected: true},
		{relativePath: "docs/drafts/wip.md", expected: false},
	}
	for _, testCase := range testCases {
		if actual := set.Selects(testCase.relativePath); actual != testCase.expected {
			t.Errorf("%s: expected %t, got %t", testCase.relativePath, testCase.expected, actual)
		}
	}
	if !set.ExcludesDirectory("docs/drafts") {
		t.Fatalf("expected drafts directory to be pruned")
	}
	if set.ExcludesDirectory("docs") {
		t.Fatalf("did not expect docs directory to be pruned")
	}
}

func TestEmptySetSelectsEverything(t *testing.T) {
	set, _ := pattern.NewSet(nil, nil)
	for _, relativePath := range []string{"a", "b/c.txt", ".hidden"} {
		if !set.Selects(relativePath) {
			t.Fatalf("expected %s to be selected", relativePath)
		}
	}
}

func TestSetReportsMalformedPatterns(t *testing.T) {
	set, compileErrors := pattern.NewSet([]string{"*.go"}, []string{"[bad"})
	if len(compileErrors) != 1 {
		t.Fatalf("expected one compile error, got %d", len(compileErrors))
	}
	if !set.Selects("main.go") {
		t.Fatalf("malformed exclude pattern must not exclude unrelated files")
	}
}
