package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdown/internal/quiz"
	"quizdown/internal/server"
	"quizdown/internal/testutil"
	"quizdown/internal/ui/play"
	"quizdown/internal/vcs"
)

const scenario = "Capital of France?\nParis##\nLondon\n\n2+2?\n3\n4##"

func setStdin(t *testing.T, input string) {
	t.Helper()
	original := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = original })
}

// writeProject creates a project with a config whose history lives in the
// temp dir, and returns the root and config path.
func writeProject(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	cfg := testutil.WriteFile(t, root, ".quizdown/config.yml",
		"version: 1\nhistory:\n  path: history.duckdb\nlog:\n  level: error\n")
	return root, cfg
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCheckSummarizesStdin(t *testing.T) {
	setStdin(t, scenario)
	code, out, errOut := run(t, "check")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "2 questions, 4 options, 2 correct") {
		t.Fatalf("unexpected summary %q", out)
	}
	if !strings.Contains(out, "1. Capital of France? (2 options, 1 correct)") {
		t.Fatalf("missing question line in %q", out)
	}
}

func TestCheckJSONStrictReportsWarnings(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "quiz.txt", "Q\nA\n\nEmpty")
	code, out, _ := run(t, "check", "--json", "--strict", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	var report checkReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Questions != 2 || report.Warnings != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Fingerprint != quiz.Fingerprint("Q\nA\n\nEmpty") {
		t.Fatalf("unexpected fingerprint %s", report.Fingerprint)
	}
}

func TestPlayPlainScoresAndRecordsHistory(t *testing.T) {
	root, cfg := writeProject(t)
	quizPath := testutil.WriteFile(t, root, "capitals.txt", scenario)

	setStdin(t, "1\n2\n")
	code, out, errOut := run(t, "play", "--config", cfg, "--ui", "plain", "--keep-order", quizPath)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "You scored 2 out of 2") {
		t.Fatalf("missing score in %q", out)
	}
	if !strings.Contains(out, "Best so far: 2 out of 2") {
		t.Fatalf("missing best score in %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "history.duckdb")); err != nil {
		t.Fatalf("expected history database: %v", err)
	}

	code, out, errOut = run(t, "history", "--config", cfg)
	if code != ExitOK {
		t.Fatalf("history: expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "2/2") || !strings.Contains(out, "capitals.txt") {
		t.Fatalf("unexpected history output %q", out)
	}
}

func TestPlayPlainAbandoned(t *testing.T) {
	root, cfg := writeProject(t)
	quizPath := testutil.WriteFile(t, root, "quiz.txt", scenario)

	setStdin(t, "1\n")
	code, _, errOut := run(t, "play", "--config", cfg, "--ui", "plain", "--no-history", quizPath)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "abandoned after 1 of 2") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestPlayPlainNeedsFile(t *testing.T) {
	_, cfg := writeProject(t)
	code, _, errOut := run(t, "play", "--config", cfg, "--ui", "plain", "-")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "pass the quiz as a file") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestPlayLiveUsesPlayer(t *testing.T) {
	root, cfg := writeProject(t)
	quizPath := testutil.WriteFile(t, root, "quiz.txt", scenario)

	originalTerminal, originalPlayer := isTerminal, runPlayer
	t.Cleanup(func() {
		isTerminal = originalTerminal
		runPlayer = originalPlayer
	})
	isTerminal = func(io.Writer) bool { return true }
	var got play.Options
	runPlayer = func(_ context.Context, _ io.Reader, _ io.Writer, opts play.Options) (play.State, error) {
		got = opts
		session := quiz.Convert(opts.Text, opts.Convert)
		session = session.Toggle("q1a1", true)
		for !session.Finished() {
			session, _, _ = session.Advance()
		}
		opts.OnFinish(opts.Text, session)
		return play.State{Screen: play.ScreenScore, Session: session, Source: opts.Text, Conversions: 1}, nil
	}

	code, out, errOut := run(t, "play", "--config", cfg, "--keep-order", "--seed", "7", quizPath)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !got.AutoStart || got.Text != scenario || !got.Convert.KeepOrder || got.Convert.Source == nil {
		t.Fatalf("unexpected player options %+v", got)
	}
	if !strings.Contains(out, "You scored 1 out of 2") || !strings.Contains(out, "Best so far: 1 out of 2") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPlayRejectsBadUIMode(t *testing.T) {
	_, cfg := writeProject(t)
	code, _, _ := run(t, "play", "--config", cfg, "--ui", "fancy", "quiz.txt")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	quizPath := testutil.WriteFile(t, dir, "quiz.txt", scenario)

	for _, name := range []string{"quiz.yml", "quiz.json", "quiz.xlsx"} {
		target := filepath.Join(dir, name)
		code, out, errOut := run(t, "export", "-o", target, quizPath)
		if code != ExitOK {
			t.Fatalf("%s: export exit %d: %s", name, code, errOut)
		}
		if !strings.Contains(out, "Wrote "+target) {
			t.Fatalf("%s: unexpected output %q", name, out)
		}

		code, out, errOut = run(t, "import", target)
		if code != ExitOK {
			t.Fatalf("%s: import exit %d: %s", name, code, errOut)
		}
		if out != scenario {
			t.Fatalf("%s: expected round trip, got %q", name, out)
		}
	}
}

func TestExportTrailingNewlineImports(t *testing.T) {
	dir := t.TempDir()
	quizPath := testutil.WriteFile(t, dir, "quiz.txt", "Q\nA##\nB\n")

	for _, name := range []string{"quiz.yml", "quiz.json"} {
		target := filepath.Join(dir, name)
		if code, _, errOut := run(t, "export", "-o", target, quizPath); code != ExitOK {
			t.Fatalf("%s: export exit %d: %s", name, code, errOut)
		}
		code, out, errOut := run(t, "import", target)
		if code != ExitOK {
			t.Fatalf("%s: import exit %d: %s", name, code, errOut)
		}
		if out != "Q\nA##\nB" {
			t.Fatalf("%s: unexpected import %q", name, out)
		}
	}
}

func TestExportRejectsUnimportableQuiz(t *testing.T) {
	dir := t.TempDir()
	quizPath := testutil.WriteFile(t, dir, "quiz.txt", "Q\nA\nB")
	target := filepath.Join(dir, "quiz.yml")

	code, _, errOut := run(t, "export", "-o", target, quizPath)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "correct_answers") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, got %v", err)
	}
}

func TestExportTextToStdout(t *testing.T) {
	setStdin(t, "Q\nA##\nB")
	code, out, _ := run(t, "export", "--format", "text")
	if code != ExitOK || out != "Q\nA##\nB" {
		t.Fatalf("unexpected export %d %q", code, out)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	setStdin(t, scenario)
	code, _, errOut := run(t, "export", "--format", "csv")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut, "unsupported format") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestImportRequiresFile(t *testing.T) {
	code, _, _ := run(t, "import")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

func TestHistoryEmpty(t *testing.T) {
	_, cfg := writeProject(t)
	code, out, errOut := run(t, "history", "--config", cfg)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "No attempts recorded yet") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidateConfig(t *testing.T) {
	_, cfg := writeProject(t)
	code, out, _ := run(t, "validate", "--config", cfg)
	if code != ExitOK || !strings.Contains(out, "Config OK") {
		t.Fatalf("expected valid config, got %d %q", code, out)
	}

	bad := testutil.WriteFile(t, t.TempDir(), ".quizdown/config.yml", "version: 1\nui:\n  mode: fancy\n")
	code, _, errOut := run(t, "validate", "--config", bad)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "Validation failed") || !strings.Contains(errOut, "ui.mode") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func stubGit(t *testing.T, repo string, ignored bool) {
	t.Helper()
	originalRoot, originalIgnored := findRepoRoot, isIgnored
	t.Cleanup(func() {
		findRepoRoot = originalRoot
		isIgnored = originalIgnored
	})
	findRepoRoot = func(context.Context, string) (string, error) {
		if repo == "" {
			return "", vcs.ErrNotRepo
		}
		return repo, nil
	}
	isIgnored = func(context.Context, string, string) (bool, error) { return ignored, nil }
}

func TestInitScaffoldsConfig(t *testing.T) {
	root := t.TempDir()
	stubGit(t, "", false)

	code, out, errOut := run(t, "init", "--dir", root, "--yes")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	path := filepath.Join(root, ".quizdown", "config.yml")
	if !strings.Contains(out, "Wrote "+path) {
		t.Fatalf("unexpected output %q", out)
	}
	if code, _, _ := run(t, "validate", "--config", path); code != ExitOK {
		t.Fatalf("scaffolded config should validate, got %d", code)
	}

	code, _, errOut = run(t, "init", "--dir", root, "--yes")
	if code != ExitError || !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected existing config error, got %d %q", code, errOut)
	}
}

func TestInitPromptsAndUpdatesGitignore(t *testing.T) {
	root := t.TempDir()
	stubGit(t, root, false)
	setStdin(t, "\ny\n")

	code, out, errOut := run(t, "init", "--dir", root)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Create quizdown config") || !strings.Contains(out, "Updated ") {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if strings.TrimSpace(string(data)) != ".quizdown/history.duckdb" {
		t.Fatalf("unexpected .gitignore %q", data)
	}
}

func TestInitCancelled(t *testing.T) {
	root := t.TempDir()
	stubGit(t, "", false)
	setStdin(t, "n\n")

	code, _, errOut := run(t, "init", "--dir", root)
	if code != ExitError || !strings.Contains(errOut, "Init cancelled") {
		t.Fatalf("expected cancellation, got %d %q", code, errOut)
	}
	if _, err := os.Stat(filepath.Join(root, ".quizdown")); !os.IsNotExist(err) {
		t.Fatalf("expected no config dir, got %v", err)
	}
}

func TestServePassesConfig(t *testing.T) {
	cfg := testutil.WriteFile(t, t.TempDir(), ".quizdown/config.yml",
		"version: 1\nhistory:\n  enabled: false\nlog:\n  level: error\n")
	original := serveAPI
	t.Cleanup(func() { serveAPI = original })
	var got server.Config
	serveAPI = func(_ context.Context, cfg server.Config) error {
		got = cfg
		return nil
	}

	code, out, errOut := run(t, "serve", "--config", cfg, "--addr", "127.0.0.1:9999", "--origin", "http://example.com")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut)
	}
	if got.Addr != "127.0.0.1:9999" || len(got.AllowedOrigins) != 1 || got.OnFinish != nil {
		t.Fatalf("unexpected server config %+v", got)
	}
	if !strings.Contains(out, "http://127.0.0.1:9999") {
		t.Fatalf("unexpected output %q", out)
	}
}
