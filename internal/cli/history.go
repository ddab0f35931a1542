package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizdown/config.yml)")
		limit := fs.Int("limit", 10, "Number of attempts to list")
		asJSON := fs.Bool("json", false, "Print attempts as JSON")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *limit <= 0 {
			fmt.Fprintln(stderr, "--limit must be positive")
			return ExitUsage
		}

		cfg, _, err := loadRuntime(*configPath, false, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		ctx, stop := signalContext()
		defer stop()
		store, err := openHistory(ctx, cfg.History.Path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open history: %v\n", err)
			return ExitError
		}
		defer store.Close()

		attempts, err := store.Recent(ctx, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read history: %v\n", err)
			return ExitError
		}

		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(attempts); err != nil {
				fmt.Fprintf(stderr, "Failed to write history: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if len(attempts) == 0 {
			fmt.Fprintln(stdout, "No attempts recorded yet")
			return ExitOK
		}
		for _, attempt := range attempts {
			fmt.Fprintf(stdout, "%s  %3d/%-3d %3d%%  %s\n",
				attempt.FinishedAt.Local().Format(time.DateTime),
				attempt.Score, attempt.Total, attempt.Percentage(), attempt.Source)
		}
		return ExitOK
	}
}
