package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ScoreUnavailable is the status of the placeholder score.
const ScoreUnavailable = "unavailable"

var fallbackRecommendations = []string{
	"Unable to load recommendations at the moment.",
	"Please try again later.",
}

// Dashboard is the aggregated home view. A failed fetch leaves its part at
// the default value and adds a line to Warnings.
type Dashboard struct {
	User            Identity
	Metrics         Metrics
	Symptoms        []Symptom
	Appointments    []DiagnosticTest
	Recommendations []string
	Score           Score
	Warnings        []string
}

func emptyMetrics() Metrics {
	return Metrics{
		BySeverity:      map[string]int{"mild": 0, "moderate": 0, "severe": 0},
		AverageSeverity: decimal.Zero,
	}
}

// LoadDashboard fetches every part concurrently. Individual failures never
// fail the load; only a missing session does.
func (c *Client) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	sess, err := c.sessions.Load()
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		User:            sess.User,
		Metrics:         emptyMetrics(),
		Symptoms:        []Symptom{},
		Appointments:    []DiagnosticTest{},
		Recommendations: append([]string(nil), fallbackRecommendations...),
		Score:           Score{Score: 0, Status: ScoreUnavailable},
	}

	var mu sync.Mutex
	warn := func(part string, err error) {
		msg := fmt.Sprintf("%s: %v", part, err)
		c.log.WithError(err).WithField("part", part).Warn("dashboard fetch failed, using default")
		mu.Lock()
		d.Warnings = append(d.Warnings, msg)
		mu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		m, err := c.Metrics(ctx)
		if err != nil {
			warn("metrics", err)
			return nil
		}
		d.Metrics = *m
		return nil
	})
	g.Go(func() error {
		s, err := c.Symptoms(ctx)
		if err != nil {
			warn("symptoms", err)
			return nil
		}
		if s != nil {
			d.Symptoms = s
		}
		return nil
	})
	g.Go(func() error {
		a, err := c.Appointments(ctx)
		if err != nil {
			warn("appointments", err)
			return nil
		}
		if a != nil {
			d.Appointments = a
		}
		return nil
	})
	g.Go(func() error {
		r, err := c.Recommendations(ctx)
		if err != nil {
			warn("recommendations", err)
			return nil
		}
		d.Recommendations = r
		return nil
	})
	g.Go(func() error {
		s, err := c.Score(ctx)
		if err != nil {
			warn("score", err)
			return nil
		}
		d.Score = *s
		return nil
	})
	_ = g.Wait()

	return d, nil
}
