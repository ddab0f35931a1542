package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizdown/internal/config"
	"quizdown/internal/vcs"
)

// Test seams for git lookups.
var (
	findRepoRoot = vcs.RepoRoot
	isIgnored    = vcs.Ignored
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", "", "Project directory (default: git root or current directory)")
		yes := flags.Bool("yes", false, "Accept all defaults without prompting")
		if err := flags.Parse(args); err != nil {
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		ctx := context.Background()
		root, repo, err := initRoot(ctx, *dir)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		target := config.ConfigPath(root)
		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(stderr, "Init failed: config already exists at %q\n", target)
			return ExitError
		}

		reader := bufio.NewReader(stdin)
		if !*yes {
			confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Create quizdown config in %s?", config.ConfigDir(root)), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
		}

		written, err := config.Scaffold(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", written)

		if repo == "" {
			return ExitOK
		}
		historyPath := filepath.Join(root, config.DefaultHistoryPath)
		ignored, err := isIgnored(ctx, repo, historyPath)
		if err != nil || ignored {
			return ExitOK
		}
		add := *yes
		if !add {
			add, err = promptYesNo(reader, stdout, "Add the history database to .gitignore?", true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
		}
		if !add {
			return ExitOK
		}
		updated, err := addGitignoreEntry(repo, historyPath)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: update .gitignore: %v\n", err)
			return ExitError
		}
		if updated {
			fmt.Fprintf(stdout, "Updated %s\n", filepath.Join(repo, ".gitignore"))
		}
		return ExitOK
	}
}

// initRoot picks the directory that receives .quizdown and the git root
// containing it, if any.
func initRoot(ctx context.Context, dir string) (root, repo string, err error) {
	if strings.TrimSpace(dir) != "" {
		root, err = filepath.Abs(dir)
		if err != nil {
			return "", "", fmt.Errorf("resolve dir: %w", err)
		}
		if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
			return "", "", fmt.Errorf("%q is not a directory", root)
		}
	}
	repo, err = findRepoRoot(ctx, root)
	if err != nil {
		if !errors.Is(err, vcs.ErrNotRepo) {
			return "", "", err
		}
		repo = ""
	}
	if root == "" {
		root = repo
	}
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("get working directory: %w", err)
		}
	}
	return root, repo, nil
}
