// Command healthctl is a terminal client for the HealthTrack API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"healthtrack/internal/client"
	"healthtrack/internal/logging"
)

const usage = `Usage: healthctl [--api URL] [--config-dir DIR] [-v] <command> [flags]

Commands:
  register        create an account
  login           log in and store the session
  logout          discard the stored session
  profile         show or update the profile
  dashboard       metrics, score, recent symptoms, appointments, recommendations
  symptom add     record a symptom
  symptom list    list recorded symptoms
  symptom sync    resend symptoms kept locally after a failed save
  tests           list, add or rm diagnostic tests
  alerts          list alerts or mark one read
  diagnose        ask for advice on a list of symptoms
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type app struct {
	client  *client.Client
	pending *client.PendingStore
	notes   *client.Notifier
	in      *bufio.Reader
	out     io.Writer
	log     *logrus.Logger
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("healthctl", flag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }

	apiURL := global.String("api", "", "API base URL (default $"+client.EnvBaseURL+" or "+client.DefaultBaseURL+")")
	configDir := global.String("config-dir", "", "directory holding the session (default: user config dir)")
	verbose := global.BoolP("verbose", "v", false, "log debug output")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := logging.New(level, "text")
	log.SetOutput(stderr)

	dir := *configDir
	if dir == "" {
		d, err := client.ConfigDir()
		if err != nil {
			fmt.Fprintf(stderr, "resolve config dir: %v\n", err)
			return 1
		}
		dir = d
	}

	a := &app{
		client: client.New(
			client.ResolveBaseURL(*apiURL),
			client.NewSessionStore(filepath.Join(dir, "session.json")),
			client.WithLogger(log),
		),
		pending: client.NewPendingStore(filepath.Join(dir, "pending_symptoms.json")),
		notes:   client.NewNotifier(nil),
		in:      bufio.NewReader(stdin),
		out:     stdout,
		log:     log,
	}

	err := a.dispatch(ctx, global.Args())
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, client.ErrNotLoggedIn):
		a.notes.Notify(client.LevelError, "not logged in: run `healthctl login` first")
	case err != nil:
		a.notes.Notify(client.LevelError, err.Error())
	}
	a.flushNotes()
	if err != nil {
		return 1
	}
	return 0
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout()
	case "profile":
		return a.profile(ctx, rest)
	case "dashboard":
		return a.dashboard(ctx)
	case "symptom", "symptoms":
		return a.symptom(ctx, rest)
	case "tests":
		return a.tests(ctx, rest)
	case "alerts":
		return a.alerts(ctx, rest)
	case "diagnose":
		return a.diagnose(ctx, rest)
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q (see healthctl help)", cmd)
	}
}

// flushNotes prints notifications still active at exit, newest first.
func (a *app) flushNotes() {
	for _, n := range a.notes.Active() {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Level, n.Message)
	}
}
