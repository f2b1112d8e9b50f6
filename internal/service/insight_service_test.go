package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/model"
)

func symptomOn(sev model.Severity, daysAgo int) model.Symptom {
	return model.Symptom{Severity: sev, Date: truncateDay(fixedNow()).AddDate(0, 0, -daysAgo)}
}

func newInsightFixture() (*insightService, *MockSymptomRepository, *MockDiagnosticTestRepository, *MockAlertRepository) {
	symptoms := new(MockSymptomRepository)
	tests := new(MockDiagnosticTestRepository)
	alerts := new(MockAlertRepository)
	svc := &insightService{symptoms: symptoms, tests: tests, alerts: alerts, now: fixedNow}
	return svc, symptoms, tests, alerts
}

func TestInsightService_Metrics(t *testing.T) {
	svc, symptoms, tests, alerts := newInsightFixture()
	symptoms.On("ListByUser", mock.Anything, uint(3)).Return([]model.Symptom{
		symptomOn(model.SeverityMild, 1),
		symptomOn(model.SeverityModerate, 2),
		symptomOn(model.SeveritySevere, 45),
		symptomOn(model.SeveritySevere, 60),
	}, nil)
	tests.On("CountByUser", mock.Anything, uint(3)).Return(int64(2), nil)
	alerts.On("CountByStatus", mock.Anything, uint(3), model.AlertStatusNew).Return(int64(1), nil)

	m, err := svc.Metrics(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 4, m.TotalSymptoms)
	assert.Equal(t, 2, m.RecentSymptoms)
	assert.Equal(t, map[string]int{"mild": 1, "moderate": 1, "severe": 2}, m.BySeverity)
	assert.True(t, decimal.RequireFromString("2.25").Equal(m.AverageSeverity))
	assert.Equal(t, int64(2), m.DiagnosticTests)
	assert.Equal(t, int64(1), m.OpenAlerts)
}

func TestInsightService_MetricsEmpty(t *testing.T) {
	svc, symptoms, tests, alerts := newInsightFixture()
	symptoms.On("ListByUser", mock.Anything, uint(3)).Return([]model.Symptom{}, nil)
	tests.On("CountByUser", mock.Anything, uint(3)).Return(int64(0), nil)
	alerts.On("CountByStatus", mock.Anything, uint(3), model.AlertStatusNew).Return(int64(0), nil)

	m, err := svc.Metrics(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, m.AverageSeverity.IsZero())
}

func TestInsightService_Score(t *testing.T) {
	tests := []struct {
		name       string
		recent     []model.Symptom
		wantScore  int
		wantStatus string
	}{
		{name: "no symptoms", recent: []model.Symptom{}, wantScore: 100, wantStatus: ScoreStatusGood},
		{
			name:       "mixed",
			recent:     []model.Symptom{symptomOn(model.SeveritySevere, 1), symptomOn(model.SeverityModerate, 3), symptomOn(model.SeverityMild, 4)},
			wantScore:  83,
			wantStatus: ScoreStatusGood,
		},
		{
			name: "fair",
			recent: []model.Symptom{symptomOn(model.SeveritySevere, 1), symptomOn(model.SeveritySevere, 2),
				symptomOn(model.SeverityModerate, 3), symptomOn(model.SeverityModerate, 3)},
			wantScore:  70,
			wantStatus: ScoreStatusFair,
		},
		{
			name: "clamped at zero",
			recent: func() []model.Symptom {
				out := make([]model.Symptom, 12)
				for i := range out {
					out[i] = symptomOn(model.SeveritySevere, i)
				}
				return out
			}(),
			wantScore:  0,
			wantStatus: ScoreStatusPoor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, symptoms, _, _ := newInsightFixture()
			since := truncateDay(fixedNow().Add(-recentWindow))
			symptoms.On("ListByUserSince", mock.Anything, uint(3), since).Return(tt.recent, nil)

			score, err := svc.Score(context.Background(), 3)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score.Score)
			assert.Equal(t, tt.wantStatus, score.Status)
		})
	}
}

func TestInsightService_Diagnose(t *testing.T) {
	svc, _, _, _ := newInsightFixture()

	_, err := svc.Diagnose(context.Background(), nil)
	assert.Error(t, err)

	d, err := svc.Diagnose(context.Background(), []string{"cough"})
	require.NoError(t, err)
	assert.Equal(t, "medium", d.Urgency)
	assert.NotEmpty(t, d.Recommendations)
}

func TestInsightService_Appointments(t *testing.T) {
	svc, _, tests, _ := newInsightFixture()
	upcoming := []model.DiagnosticTest{{ID: 1, Name: "MRI", TestDate: fixedNow().Add(48 * time.Hour)}}
	tests.On("ListUpcoming", mock.Anything, uint(3), fixedNow()).Return(upcoming, nil)

	got, err := svc.Appointments(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, upcoming, got)
}
