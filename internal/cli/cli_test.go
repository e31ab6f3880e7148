package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/code2clipboard/internal/utils"
)

type commandHarness struct {
	stdout           bytes.Buffer
	copier           *recordingCopier
	workingDirectory string
}

func newCommandHarness(t *testing.T) *commandHarness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return &commandHarness{copier: &recordingCopier{}, workingDirectory: t.TempDir()}
}

func (harness *commandHarness) execute(arguments ...string) error {
	rootCommand := createRootCommand(applicationDependencies{
		stdout:           &harness.stdout,
		clipboard:        harness.copier,
		workingDirectory: harness.workingDirectory,
	})
	rootCommand.SetArgs(normalizeMultiValueFlagArguments(rootCommand, arguments))
	return rootCommand.Execute()
}

func TestRootCommandTokensFlag(t *testing.T) {
	harness := newCommandHarness(t)
	rootDirectory := writeSampleProject(t)
	if executeError := harness.execute(rootDirectory, "--tokens"); executeError != nil {
		t.Fatalf("execute: %v", executeError)
	}
	if harness.stdout.String() != "Estimated total tokens: 9\n" {
		t.Fatalf("unexpected output %q", harness.stdout.String())
	}
}

func TestRootCommandMultiValueInclude(t *testing.T) {
	harness := newCommandHarness(t)
	rootDirectory := writeSampleProject(t)
	if writeError := os.WriteFile(filepath.Join(rootDirectory, "README.md"), []byte("# readme\n"), 0o600); writeError != nil {
		t.Fatalf("write: %v", writeError)
	}
	if executeError := harness.execute(rootDirectory, "--tree", "--include", "main.py", "*.md"); executeError != nil {
		t.Fatalf("execute: %v", executeError)
	}
	if len(harness.copier.copies) != 1 {
		t.Fatalf("expected one clipboard write, got %d", len(harness.copier.copies))
	}
	tree := harness.copier.copies[0]
	if !strings.Contains(tree, "README.md") || !strings.Contains(tree, "main.py") || strings.Contains(tree, "utils.py") {
		t.Fatalf("unexpected tree %q", tree)
	}
}

func TestRootCommandAddHiddenAndMaxFileSize(t *testing.T) {
	harness := newCommandHarness(t)
	rootDirectory := writeSampleProject(t)
	if executeError := harness.execute(rootDirectory, "--tree", "--add-hidden", "--max-file-size", "40000"); executeError != nil {
		t.Fatalf("execute: %v", executeError)
	}
	tree := harness.copier.copies[0]
	for _, expectedName := range []string{".secret", "huge.bin", "main.py", "utils.py"} {
		if !strings.Contains(tree, expectedName) {
			t.Fatalf("expected %s in tree %q", expectedName, tree)
		}
	}
}

func TestRootCommandRejectsNegativeMaxFileSize(t *testing.T) {
	harness := newCommandHarness(t)
	executeError := harness.execute(writeSampleProject(t), "--max-file-size=-1")
	if !errors.Is(executeError, errNegativeMaxFileSize) {
		t.Fatalf("expected errNegativeMaxFileSize, got %v", executeError)
	}
}

func TestRootCommandAppliesConfigurationFile(t *testing.T) {
	harness := newCommandHarness(t)
	rootDirectory := writeSampleProject(t)
	configurationContent := "exclude:\n  - utils.py\nadd_hidden: true\n"
	if writeError := os.WriteFile(filepath.Join(harness.workingDirectory, utils.LocalConfigFileName), []byte(configurationContent), 0o600); writeError != nil {
		t.Fatalf("write configuration: %v", writeError)
	}
	if executeError := harness.execute(rootDirectory, "--tree", "--exclude", "main.py"); executeError != nil {
		t.Fatalf("execute: %v", executeError)
	}
	tree := harness.copier.copies[0]
	if !strings.Contains(tree, ".secret") || strings.Contains(tree, "utils.py") || strings.Contains(tree, "main.py") {
		t.Fatalf("unexpected tree %q", tree)
	}
}

func TestRootCommandIgnoresProjectConfigYAML(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "exclude key", content: "exclude: [\"*.py\"]\n"},
		{name: "templated values", content: "replicas: {{ .Values.replicas }}\n"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			harness := newCommandHarness(t)
			rootDirectory := writeSampleProject(t)
			for _, directory := range []string{harness.workingDirectory, rootDirectory} {
				if writeError := os.WriteFile(filepath.Join(directory, "config.yaml"), []byte(testCase.content), 0o600); writeError != nil {
					t.Fatalf("write config.yaml: %v", writeError)
				}
			}
			if executeError := harness.execute(rootDirectory, "--tree"); executeError != nil {
				t.Fatalf("execute: %v", executeError)
			}
			tree := harness.copier.copies[0]
			if !strings.Contains(tree, "main.py") || !strings.Contains(tree, "utils.py") || !strings.Contains(tree, "config.yaml") {
				t.Fatalf("unexpected tree %q", tree)
			}
		})
	}
}

func TestRootCommandMissingExplicitConfiguration(t *testing.T) {
	harness := newCommandHarness(t)
	executeError := harness.execute(writeSampleProject(t), "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if executeError == nil {
		t.Fatalf("expected an error for a missing configuration file")
	}
}

func TestRootCommandVersion(t *testing.T) {
	harness := newCommandHarness(t)
	if executeError := harness.execute("--version"); executeError != nil {
		t.Fatalf("execute: %v", executeError)
	}
	if !strings.HasPrefix(harness.stdout.String(), "code2clipboard version: ") {
		t.Fatalf("unexpected output %q", harness.stdout.String())
	}
}

func TestInitCommandWritesConfiguration(t *testing.T) {
	harness := newCommandHarness(t)
	if executeError := harness.execute("init"); executeError != nil {
		t.Fatalf("execute: %v", executeError)
	}
	expectedPath := filepath.Join(harness.workingDirectory, utils.LocalConfigFileName)
	if _, statError := os.Stat(expectedPath); statError != nil {
		t.Fatalf("expected configuration at %s: %v", expectedPath, statError)
	}
	if !strings.Contains(harness.stdout.String(), expectedPath) {
		t.Fatalf("unexpected output %q", harness.stdout.String())
	}
	if executeError := harness.execute("init"); executeError == nil {
		t.Fatalf("expected an error when the configuration already exists")
	}
	if executeError := harness.execute("init", "--force"); executeError != nil {
		t.Fatalf("execute with force: %v", executeError)
	}
}
