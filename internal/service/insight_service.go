package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
	"healthtrack/internal/repository"
)

const recentWindow = 30 * 24 * time.Hour

// Score status thresholds.
const (
	ScoreStatusGood = "good"
	ScoreStatusFair = "fair"
	ScoreStatusPoor = "poor"
)

var severityPenalty = map[model.Severity]int{
	model.SeverityMild:     2,
	model.SeverityModerate: 5,
	model.SeveritySevere:   10,
}

// Recommendations returned by the recommendations view.
var defaultRecommendations = []string{
	"Stay hydrated by drinking at least eight glasses of water a day.",
	"Aim for 7 to 9 hours of sleep each night.",
	"Get at least 30 minutes of moderate exercise most days.",
	"Keep a regular log of your symptoms to share with your doctor.",
}

// HealthMetrics summarises the caller's records.
type HealthMetrics struct {
	TotalSymptoms   int             `json:"total_symptoms"`
	BySeverity      map[string]int  `json:"by_severity"`
	RecentSymptoms  int             `json:"recent_symptoms"`
	AverageSeverity decimal.Decimal `json:"average_severity"`
	DiagnosticTests int64           `json:"diagnostic_tests"`
	OpenAlerts      int64           `json:"open_alerts"`
}

// HealthScore is a 0-100 grade derived from recent symptoms.
type HealthScore struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// Diagnosis is the canned response of the diagnosis view.
type Diagnosis struct {
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
	Urgency         string   `json:"urgency"`
}

// InsightService derives read-only views from stored records.
type InsightService interface {
	Metrics(ctx context.Context, userID uint) (*HealthMetrics, error)
	Score(ctx context.Context, userID uint) (*HealthScore, error)
	Recommendations(ctx context.Context, userID uint) []string
	Diagnose(ctx context.Context, symptoms []string) (*Diagnosis, error)
	Appointments(ctx context.Context, userID uint) ([]model.DiagnosticTest, error)
}

type insightService struct {
	symptoms repository.SymptomRepository
	tests    repository.DiagnosticTestRepository
	alerts   repository.AlertRepository
	now      func() time.Time
}

// NewInsightService creates a new insight service.
func NewInsightService(
	symptoms repository.SymptomRepository,
	tests repository.DiagnosticTestRepository,
	alerts repository.AlertRepository,
) InsightService {
	return &insightService{symptoms: symptoms, tests: tests, alerts: alerts, now: time.Now}
}

func (s *insightService) Metrics(ctx context.Context, userID uint) (*HealthMetrics, error) {
	var (
		symptoms   []model.Symptom
		testCount  int64
		openAlerts int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		symptoms, err = s.symptoms.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		testCount, err = s.tests.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		openAlerts, err = s.alerts.CountByStatus(gctx, userID, model.AlertStatusNew)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}

	m := &HealthMetrics{
		TotalSymptoms: len(symptoms),
		BySeverity: map[string]int{
			string(model.SeverityMild):     0,
			string(model.SeverityModerate): 0,
			string(model.SeveritySevere):   0,
		},
		AverageSeverity: decimal.Zero,
		DiagnosticTests: testCount,
		OpenAlerts:      openAlerts,
	}

	cutoff := truncateDay(s.now().Add(-recentWindow))
	sum := 0
	for _, sym := range symptoms {
		m.BySeverity[string(sym.Severity)]++
		sum += sym.Severity.Weight()
		if !sym.Date.Before(cutoff) {
			m.RecentSymptoms++
		}
	}
	if len(symptoms) > 0 {
		m.AverageSeverity = decimal.NewFromInt(int64(sum)).
			Div(decimal.NewFromInt(int64(len(symptoms)))).
			Round(2)
	}
	return m, nil
}

func (s *insightService) Score(ctx context.Context, userID uint) (*HealthScore, error) {
	since := truncateDay(s.now().Add(-recentWindow))
	recent, err := s.symptoms.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("load recent symptoms: %w", err)
	}

	score := 100
	for _, sym := range recent {
		score -= severityPenalty[sym.Severity]
	}
	if score < 0 {
		score = 0
	}

	return &HealthScore{Score: score, Status: scoreStatus(score)}, nil
}

func scoreStatus(score int) string {
	switch {
	case score >= 80:
		return ScoreStatusGood
	case score >= 60:
		return ScoreStatusFair
	default:
		return ScoreStatusPoor
	}
}

func (s *insightService) Recommendations(_ context.Context, _ uint) []string {
	out := make([]string, len(defaultRecommendations))
	copy(out, defaultRecommendations)
	return out
}

// Diagnose returns a fixed advisory; no analysis is performed.
func (s *insightService) Diagnose(_ context.Context, symptoms []string) (*Diagnosis, error) {
	if len(symptoms) == 0 {
		return nil, apperrors.Validation("at least one symptom is required")
	}
	return &Diagnosis{
		Message: "Based on the symptoms provided, we recommend consulting a healthcare professional for an accurate diagnosis.",
		Recommendations: []string{
			"Schedule an appointment with your primary care physician.",
			"Monitor your symptoms and note any changes.",
			"Seek emergency care if symptoms worsen suddenly.",
		},
		Urgency: "medium",
	}, nil
}

// Appointments lists diagnostic tests scheduled from now on, soonest first.
func (s *insightService) Appointments(ctx context.Context, userID uint) ([]model.DiagnosticTest, error) {
	return s.tests.ListUpcoming(ctx, userID, s.now().UTC())
}
