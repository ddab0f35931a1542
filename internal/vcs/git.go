// Package vcs answers the few git questions quizdown init asks.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotRepo reports a directory outside any git work tree.
var ErrNotRepo = errors.New("not a git repository")

// gitRunner executes git commands.
type gitRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// exitCoder is implemented by errors carrying a process exit code.
type exitCoder interface {
	ExitCode() int
}

// execGitRunner invokes git via the system binary.
type execGitRunner struct{}

// Run executes a git command and returns trimmed stdout.
func (execGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "no stderr"
		}
		return "", fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Client runs git queries and allows dependency injection.
type Client struct {
	runner gitRunner
}

// NewClient constructs a git client with an optional runner override.
func NewClient(runner gitRunner) Client {
	if runner == nil {
		runner = execGitRunner{}
	}
	return Client{runner: runner}
}

var defaultClient = NewClient(nil)

// RepoRoot resolves the git root for a starting directory.
func RepoRoot(ctx context.Context, startDir string) (string, error) {
	return defaultClient.RepoRoot(ctx, startDir)
}

// Ignored reports whether path is ignored by the repository at root.
func Ignored(ctx context.Context, root, path string) (bool, error) {
	return defaultClient.Ignored(ctx, root, path)
}

// RepoRoot resolves the git root for a starting directory. It returns
// ErrNotRepo when git cannot find one.
func (c Client) RepoRoot(ctx context.Context, startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	root, err := c.runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotRepo, err)
	}
	return root, nil
}

// Ignored reports whether path is covered by an ignore rule. git
// check-ignore exits 1 for paths that are not ignored.
func (c Client) Ignored(ctx context.Context, root, path string) (bool, error) {
	_, err := c.runner.Run(ctx, root, "check-ignore", "-q", path)
	if err == nil {
		return true, nil
	}
	var coder exitCoder
	if errors.As(err, &coder) && coder.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("check ignore %s: %w", path, err)
}
