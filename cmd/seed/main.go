package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"healthtrack/internal/config"
	"healthtrack/internal/db"
	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/logging"
	"healthtrack/internal/model"
	"healthtrack/internal/repository"
	"healthtrack/internal/service"
)

// Fixture is the YAML layout accepted by --file.
type Fixture struct {
	User struct {
		Email     string `yaml:"email"`
		Password  string `yaml:"password"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
	} `yaml:"user"`
	Symptoms []struct {
		Description string `yaml:"description"`
		Severity    string `yaml:"severity"`
		Duration    string `yaml:"duration"`
		DaysAgo     int    `yaml:"days_ago"`
	} `yaml:"symptoms"`
	Tests []struct {
		Name      string  `yaml:"name"`
		Result    *string `yaml:"result"`
		DaysAhead int     `yaml:"days_ahead"`
	} `yaml:"tests"`
	Alerts []struct {
		Title  string `yaml:"title"`
		Status string `yaml:"status"`
	} `yaml:"alerts"`
}

const defaultFixture = `
user:
  email: demo@healthtrack.local
  password: demo-password
  first_name: Demo
  last_name: User
symptoms:
  - {description: Headache, severity: moderate, duration: 3 hours, days_ago: 1}
  - {description: Fatigue, severity: mild, duration: all day, days_ago: 4}
  - {description: Sore throat, severity: mild, duration: 2 days, days_ago: 12}
tests:
  - {name: Complete blood count, result: normal, days_ahead: -20}
  - {name: Lipid panel, days_ahead: 7}
  - {name: Vitamin D, days_ahead: 21}
alerts:
  - {title: Annual checkup is due}
  - {title: Lipid panel scheduled next week}
  - {title: Welcome to HealthTrack, status: read}
`

func main() {
	email := flag.String("email", "", "seed records for this user (overrides the fixture email)")
	file := flag.String("file", "", "YAML fixture; the built-in demo data is used when empty")
	flag.Parse()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, "text")
	log.Info("Starting seed script...")

	fixture, err := loadFixture(*file)
	if err != nil {
		log.WithError(err).Fatal("load fixture")
	}
	if *email != "" {
		fixture.User.Email = *email
	}

	gormDB, err := db.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close(gormDB)
	log.Info("Connected to database")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(ctx, gormDB, cfg.DBDriver); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	users := repository.NewUserRepository(gormDB)
	user, err := ensureUser(ctx, users, fixture)
	if err != nil {
		log.WithError(err).Fatal("Failed to prepare seed user")
	}
	log.WithField("user_id", user.ID).Infof("Seeding records for %s", user.Email)

	counts, err := seedRecords(ctx, gormDB, user.ID, fixture, time.Now().UTC())
	if err != nil {
		log.WithError(err).Fatal("Failed to seed records")
	}

	log.WithFields(logrus.Fields{
		"symptoms": counts.symptoms,
		"tests":    counts.tests,
		"alerts":   counts.alerts,
	}).Info("Seed completed successfully!")
}

func loadFixture(path string) (*Fixture, error) {
	raw := []byte(defaultFixture)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = data
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if f.User.Email == "" {
		return nil, errors.New("fixture has no user email")
	}
	return &f, nil
}

// ensureUser returns the fixture user, registering it when absent.
func ensureUser(ctx context.Context, users repository.UserRepository, f *Fixture) (*model.User, error) {
	existing, err := users.FindByEmail(ctx, f.User.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if f.User.Password == "" {
		return nil, fmt.Errorf("user %s does not exist and the fixture has no password", f.User.Email)
	}
	// Registration never issues a token.
	return service.NewAuthService(users, nil).Register(ctx, service.RegisterInput{
		Email:     f.User.Email,
		Password:  f.User.Password,
		FirstName: f.User.FirstName,
		LastName:  f.User.LastName,
	})
}

type seedCounts struct {
	symptoms, tests, alerts int
}

func seedRecords(ctx context.Context, gdb *gorm.DB, userID uint, f *Fixture, now time.Time) (seedCounts, error) {
	var counts seedCounts

	symptoms := service.NewSymptomService(repository.NewSymptomRepository(gdb))
	for _, s := range f.Symptoms {
		date := now.AddDate(0, 0, -s.DaysAgo)
		if _, err := symptoms.Record(ctx, userID, service.SymptomInput{
			Description: s.Description,
			Severity:    model.Severity(s.Severity),
			Duration:    s.Duration,
			Date:        &date,
		}); err != nil {
			return counts, fmt.Errorf("symptom %q: %w", s.Description, err)
		}
		counts.symptoms++
	}

	tests := service.NewDiagnosticTestService(repository.NewDiagnosticTestRepository(gdb))
	for _, t := range f.Tests {
		date := now.AddDate(0, 0, t.DaysAhead)
		if _, err := tests.Create(ctx, userID, service.DiagnosticTestInput{
			Name:     t.Name,
			Result:   t.Result,
			TestDate: &date,
		}); err != nil {
			return counts, fmt.Errorf("test %q: %w", t.Name, err)
		}
		counts.tests++
	}

	alerts := make([]model.Alert, 0, len(f.Alerts))
	for _, a := range f.Alerts {
		status := a.Status
		if status == "" {
			status = model.AlertStatusNew
		}
		alerts = append(alerts, model.Alert{UserID: userID, Title: a.Title, Status: status})
	}
	if err := repository.NewAlertRepository(gdb).CreateBatch(ctx, alerts); err != nil {
		return counts, fmt.Errorf("alerts: %w", err)
	}
	counts.alerts = len(alerts)

	return counts, nil
}
