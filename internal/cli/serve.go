package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizdown/internal/logging"
	"quizdown/internal/quiz"
	"quizdown/internal/server"
)

// serveAPI is a test seam for running the HTTP server.
var serveAPI = server.Serve

// originList collects repeated --origin flags.
type originList []string

func (o *originList) String() string { return strings.Join(*o, ",") }

func (o *originList) Set(value string) error {
	*o = append(*o, value)
	return nil
}

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizdown/config.yml)")
		addr := fs.String("addr", "", "Address to listen on (default from config)")
		var origins originList
		fs.Var(&origins, "origin", "Allowed CORS origin (repeatable)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		cfg, log, err := loadRuntime(*configPath, false, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *addr != "" {
			cfg.Serve.Addr = *addr
		}

		ctx, stop := signalContext()
		defer stop()

		apiLog := logging.Component(log, "server")
		serverCfg := server.Config{
			Addr:           cfg.Serve.Addr,
			AllowedOrigins: origins,
			Convert:        convertOptions(cfg, playFlags{limit: -1}),
			Logger:         apiLog,
		}
		if cfg.HistoryEnabled() {
			store, err := openHistory(ctx, cfg.History.Path)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open history: %v\n", err)
				return ExitError
			}
			defer store.Close()
			serverCfg.OnFinish = func(source string, session quiz.Session) {
				if _, err := store.Record(ctx, quiz.Fingerprint(source), "api", session.Score(), session.Total()); err != nil {
					apiLog.Warn().Err(err).Msg("record attempt")
				}
			}
		}

		fmt.Fprintf(stdout, "Serving quiz API at http://%s\n", cfg.Serve.Addr)
		if err := serveAPI(ctx, serverCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
