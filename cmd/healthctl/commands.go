package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"healthtrack/internal/client"
)

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := a.flags("register")
	email := fs.String("email", "", "account email")
	first := fs.String("first-name", "", "first name")
	last := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := client.RegisterInput{FirstName: *first, LastName: *last}
	var err error
	if in.Email, err = a.valueOrPrompt(*email, "Email"); err != nil {
		return err
	}
	if in.Password, err = a.password("Password"); err != nil {
		return err
	}

	user, err := a.client.Register(ctx, in)
	if err != nil {
		return err
	}
	a.notes.Notify(client.LevelSuccess, fmt.Sprintf("registered %s, now run `healthctl login`", user.Email))
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	addr, err := a.valueOrPrompt(*email, "Email")
	if err != nil {
		return err
	}
	pw, err := a.password("Password")
	if err != nil {
		return err
	}

	sess, err := a.client.Login(ctx, addr, pw)
	if err != nil {
		return err
	}
	a.notes.Notify(client.LevelSuccess, "welcome, "+sess.User.DisplayName())
	return nil
}

func (a *app) logout() error {
	if err := a.client.Logout(); err != nil {
		return err
	}
	a.notes.Notify(client.LevelInfo, "logged out")
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	fs := a.flags("profile")
	email := fs.String("email", "", "new email")
	first := fs.String("first-name", "", "new first name")
	last := fs.String("last-name", "", "new last name")
	theme := fs.String("theme", "", "light, dark or system")
	notify := fs.Bool("notifications", true, "email notifications on or off")
	changePw := fs.Bool("change-password", false, "prompt for a password change")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var upd client.ProfileUpdate
	changed := false
	setStr := func(flagName string, v *string, dst **string) {
		if fs.Changed(flagName) {
			*dst = v
			changed = true
		}
	}
	setStr("email", email, &upd.Email)
	setStr("first-name", first, &upd.FirstName)
	setStr("last-name", last, &upd.LastName)
	setStr("theme", theme, &upd.ThemePreference)
	if fs.Changed("notifications") {
		upd.NotificationEmailEnabled = notify
		changed = true
	}
	if *changePw {
		current, err := a.password("Current password")
		if err != nil {
			return err
		}
		next, err := a.password("New password")
		if err != nil {
			return err
		}
		upd.CurrentPassword, upd.NewPassword = &current, &next
		changed = true
	}

	var (
		user *client.User
		err  error
	)
	if changed {
		user, err = a.client.UpdateProfile(ctx, upd)
	} else {
		user, err = a.client.Profile(ctx)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Email:\t%s\n", user.Email)
	fmt.Fprintf(w, "Name:\t%s %s\n", user.FirstName, user.LastName)
	fmt.Fprintf(w, "Theme:\t%s\n", user.ThemePreference)
	fmt.Fprintf(w, "Email notifications:\t%t\n", user.NotificationEmailEnabled)
	fmt.Fprintf(w, "Member since:\t%s\n", user.CreatedAt.Format("2006-01-02"))
	if err := w.Flush(); err != nil {
		return err
	}
	if changed {
		a.notes.Notify(client.LevelSuccess, "profile updated")
	}
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	d, err := a.client.LoadDashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Hello, %s\n\n", d.User.DisplayName())
	fmt.Fprintf(a.out, "Health score: %d (%s)\n", d.Score.Score, d.Score.Status)
	fmt.Fprintf(a.out, "Symptoms: %d total, %d in the last 30 days, average severity %s\n",
		d.Metrics.TotalSymptoms, d.Metrics.RecentSymptoms, d.Metrics.AverageSeverity.StringFixed(2))
	fmt.Fprintf(a.out, "Diagnostic tests: %d, open alerts: %d\n\n", d.Metrics.DiagnosticTests, d.Metrics.OpenAlerts)

	fmt.Fprintln(a.out, "Recent symptoms:")
	if len(d.Symptoms) == 0 {
		fmt.Fprintln(a.out, "  none")
	}
	for i, s := range d.Symptoms {
		if i == 5 {
			break
		}
		fmt.Fprintf(a.out, "  %s  %-8s %s\n", s.Date.Format("2006-01-02"), s.Severity, s.Description)
	}

	fmt.Fprintln(a.out, "\nUpcoming appointments:")
	if len(d.Appointments) == 0 {
		fmt.Fprintln(a.out, "  none")
	}
	for _, t := range d.Appointments {
		fmt.Fprintf(a.out, "  %s  %s\n", t.TestDate.Format("2006-01-02"), t.Name)
	}

	fmt.Fprintln(a.out, "\nRecommendations:")
	for _, r := range d.Recommendations {
		fmt.Fprintf(a.out, "  - %s\n", r)
	}

	for _, w := range d.Warnings {
		a.notes.Notify(client.LevelWarning, "could not load "+w)
	}
	return nil
}

func (a *app) symptom(ctx context.Context, args []string) error {
	sub, rest := "list", args
	if len(args) > 0 {
		sub, rest = args[0], args[1:]
	}

	switch sub {
	case "list":
		return a.listSymptoms(ctx)
	case "add":
		return a.addSymptom(ctx, rest)
	case "sync":
		return a.syncSymptoms(ctx)
	default:
		return fmt.Errorf("unknown symptom command %q", sub)
	}
}

func (a *app) symptomLog() (*client.SymptomLog, error) {
	pending, err := a.pending.Load()
	if err != nil {
		return nil, err
	}
	return client.NewSymptomLog(a.client, pending), nil
}

func (a *app) listSymptoms(ctx context.Context) error {
	symptoms, err := a.client.Symptoms(ctx)
	if err != nil {
		return err
	}
	me, err := a.client.CurrentUser()
	if err != nil {
		return err
	}
	log, err := a.symptomLog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSEVERITY\tDURATION\tDESCRIPTION")
	for _, e := range log.PendingFor(me.ID) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s (pending)\n", e.LocalID, e.Input.Date, e.Input.Severity, e.Input.Duration, e.Input.Description)
	}
	for _, s := range symptoms {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Date.Format("2006-01-02"), s.Severity, s.Duration, s.Description)
	}
	return w.Flush()
}

func (a *app) addSymptom(ctx context.Context, args []string) error {
	fs := a.flags("symptom add")
	desc := fs.StringP("description", "d", "", "what you feel")
	severity := fs.StringP("severity", "s", "", "mild, moderate or severe (default mild)")
	duration := fs.String("duration", "", "how long it lasted")
	date := fs.String("date", "", "YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	description := *desc
	if description == "" && fs.NArg() > 0 {
		description = strings.Join(fs.Args(), " ")
	}

	log, err := a.symptomLog()
	if err != nil {
		return err
	}
	entry, err := log.RecordSymptom(ctx, client.SymptomInput{
		Description: description,
		Severity:    *severity,
		Duration:    *duration,
		Date:        *date,
	})
	if err != nil {
		return err
	}
	if err := a.pending.Save(log); err != nil {
		return fmt.Errorf("save pending symptoms: %w", err)
	}

	if entry.State == client.Pending {
		a.notes.Notify(client.LevelWarning, fmt.Sprintf("server unavailable, symptom kept locally as %s; run `healthctl symptom sync` later", entry.LocalID))
		return nil
	}
	a.notes.Notify(client.LevelSuccess, fmt.Sprintf("symptom %d recorded", entry.Symptom.ID))
	return nil
}

func (a *app) syncSymptoms(ctx context.Context) error {
	me, err := a.client.CurrentUser()
	if err != nil {
		return err
	}
	log, err := a.symptomLog()
	if err != nil {
		return err
	}
	before := len(log.PendingFor(me.ID))
	if before == 0 {
		a.notes.Notify(client.LevelInfo, "nothing to sync")
		return nil
	}

	promoted, syncErr := log.Reconcile(ctx)
	if err := a.pending.Save(log); err != nil {
		return fmt.Errorf("save pending symptoms: %w", err)
	}
	a.notes.Notify(client.LevelInfo, fmt.Sprintf("synced %d of %d pending symptoms", promoted, before))
	return syncErr
}

func (a *app) tests(ctx context.Context, args []string) error {
	sub, rest := "list", args
	if len(args) > 0 {
		sub, rest = args[0], args[1:]
	}

	switch sub {
	case "list":
		tests, err := a.client.Tests(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tNAME\tRESULT")
		for _, t := range tests {
			result := "-"
			if t.Result != nil {
				result = *t.Result
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.TestDate.Format("2006-01-02"), t.Name, result)
		}
		return w.Flush()

	case "add":
		fs := a.flags("tests add")
		name := fs.String("name", "", "test name")
		result := fs.String("result", "", "result, if known")
		date := fs.String("date", "", "YYYY-MM-DD (default now)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in := client.DiagnosticTestInput{Name: *name, TestDate: *date}
		if fs.Changed("result") {
			in.Result = result
		}
		t, err := a.client.CreateTest(ctx, in)
		if err != nil {
			return err
		}
		a.notes.Notify(client.LevelSuccess, fmt.Sprintf("diagnostic test %d created", t.ID))
		return nil

	case "rm", "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err := a.client.DeleteTest(ctx, id); err != nil {
			return err
		}
		a.notes.Notify(client.LevelSuccess, fmt.Sprintf("diagnostic test %d deleted", id))
		return nil

	default:
		return fmt.Errorf("unknown tests command %q", sub)
	}
}

func (a *app) alerts(ctx context.Context, args []string) error {
	sub, rest := "list", args
	if len(args) > 0 {
		sub, rest = args[0], args[1:]
	}

	switch sub {
	case "list":
		alerts, err := a.client.Alerts(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tSTATUS\tTITLE")
		for _, al := range alerts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", al.ID, al.Timestamp.Format("2006-01-02 15:04"), al.Status, al.Title)
		}
		return w.Flush()

	case "read":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if _, err := a.client.SetAlertStatus(ctx, id, "read"); err != nil {
			return err
		}
		a.notes.Notify(client.LevelSuccess, fmt.Sprintf("alert %d marked read", id))
		return nil

	default:
		return fmt.Errorf("unknown alerts command %q", sub)
	}
}

func (a *app) diagnose(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: healthctl diagnose <symptom> [symptom...]")
	}
	d, err := a.client.Diagnose(ctx, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, d.Message)
	fmt.Fprintf(a.out, "Urgency: %s\n", d.Urgency)
	for _, r := range d.Recommendations {
		fmt.Fprintf(a.out, "  - %s\n", r)
	}
	return nil
}

func parseID(args []string) (uint, error) {
	if len(args) != 1 {
		return 0, errors.New("expected exactly one id")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return uint(id), nil
}
