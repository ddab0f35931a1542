package vcs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"quizdown/internal/testutil"
)

// TestRepoRoot verifies discovery through the runner.
func TestRepoRoot(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := filepath.Join(t.TempDir(), "repo")

	client := NewClient(&fakeGitRunner{responses: map[string]fakeResult{
		"rev-parse --show-toplevel": {out: root},
	}})
	actual, err := client.RepoRoot(ctx, filepath.Join(root, "nested"))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}
	if actual != root {
		t.Fatalf("expected root %q, got %q", root, actual)
	}
}

// TestRepoRootOutsideRepo verifies ErrNotRepo is returned.
func TestRepoRootOutsideRepo(t *testing.T) {
	ctx := testutil.Context(t, 0)
	client := NewClient(&fakeGitRunner{responses: map[string]fakeResult{
		"rev-parse --show-toplevel": {err: exitError(128)},
	}})
	if _, err := client.RepoRoot(ctx, t.TempDir()); !errors.Is(err, ErrNotRepo) {
		t.Fatalf("expected ErrNotRepo, got %v", err)
	}
}

// TestIgnored maps check-ignore exit codes.
func TestIgnored(t *testing.T) {
	ctx := testutil.Context(t, 0)
	fake := &fakeGitRunner{responses: map[string]fakeResult{
		"check-ignore -q a.duckdb": {},
		"check-ignore -q b.duckdb": {err: exitError(1)},
		"check-ignore -q c.duckdb": {err: exitError(128)},
	}}
	client := NewClient(fake)

	if ignored, err := client.Ignored(ctx, "/repo", "a.duckdb"); err != nil || !ignored {
		t.Fatalf("expected a.duckdb ignored, got %v %v", ignored, err)
	}
	if ignored, err := client.Ignored(ctx, "/repo", "b.duckdb"); err != nil || ignored {
		t.Fatalf("expected b.duckdb not ignored, got %v %v", ignored, err)
	}
	if _, err := client.Ignored(ctx, "/repo", "c.duckdb"); err == nil {
		t.Fatalf("expected error for fatal git exit")
	}
}

type fakeResult struct {
	out string
	err error
}

// fakeGitRunner returns canned outputs for git commands in tests.
type fakeGitRunner struct {
	responses map[string]fakeResult
}

// Run satisfies gitRunner for test doubles.
func (f *fakeGitRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	if result, ok := f.responses[key]; ok {
		return result.out, result.err
	}
	return "", fmt.Errorf("unexpected git args: %s", key)
}

// exitError mimics a process exit status.
type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func (e exitError) ExitCode() int { return int(e) }
