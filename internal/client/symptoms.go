package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// RecordState tells whether a symptom reached the server.
type RecordState int

const (
	// Persisted means the server stored the symptom.
	Persisted RecordState = iota
	// Pending means the write failed in transit and is kept locally for Reconcile.
	Pending
)

func (s RecordState) String() string {
	if s == Pending {
		return "pending"
	}
	return "persisted"
}

// SymptomEntry is one symptom in the log. LocalID is set for pending entries.
// OwnerID is the user whose session recorded it; only that user resends it.
type SymptomEntry struct {
	State   RecordState  `json:"state"`
	OwnerID uint         `json:"owner_id"`
	LocalID string       `json:"local_id,omitempty"`
	Input   SymptomInput `json:"input"`
	Symptom *Symptom     `json:"symptom,omitempty"`
}

// SymptomLog records symptoms and keeps the ones the server could not take.
type SymptomLog struct {
	client *Client

	mu      sync.Mutex
	entries []SymptomEntry
}

// NewSymptomLog creates a log seeded with previously pending entries.
func NewSymptomLog(c *Client, pending []SymptomEntry) *SymptomLog {
	l := &SymptomLog{client: c}
	for _, e := range pending {
		if e.State == Pending {
			l.entries = append(l.entries, e)
		}
	}
	return l
}

// RecordSymptom sends in to the server. A transport failure or 5xx keeps the
// entry as Pending with a local id; a 4xx is returned as an error and nothing
// is kept.
func (l *SymptomLog) RecordSymptom(ctx context.Context, in SymptomInput) (SymptomEntry, error) {
	owner, err := l.client.CurrentUser()
	if err != nil {
		return SymptomEntry{}, err
	}

	s, err := l.client.CreateSymptom(ctx, in)
	if err == nil {
		entry := SymptomEntry{State: Persisted, OwnerID: owner.ID, Input: in, Symptom: s}
		l.append(entry)
		return entry, nil
	}
	if !retryable(err) {
		return SymptomEntry{}, err
	}

	entry := SymptomEntry{State: Pending, OwnerID: owner.ID, LocalID: "local-" + uuid.NewString(), Input: in}
	l.client.log.WithError(err).WithField("local_id", entry.LocalID).
		Warn("symptom not saved on server, kept locally")
	l.append(entry)
	return entry, nil
}

func (l *SymptomLog) append(e SymptomEntry) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
}

// Entries returns a copy of the log in insertion order.
func (l *SymptomLog) Entries() []SymptomEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]SymptomEntry(nil), l.entries...)
}

// Pending returns the entries still waiting for the server, for every owner.
func (l *SymptomLog) Pending() []SymptomEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []SymptomEntry
	for _, e := range l.entries {
		if e.State == Pending {
			out = append(out, e)
		}
	}
	return out
}

// PendingFor returns the pending entries recorded by ownerID.
func (l *SymptomLog) PendingFor(ownerID uint) []SymptomEntry {
	var out []SymptomEntry
	for _, e := range l.Pending() {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out
}

// Reconcile resends the pending entries of the logged-in user. Accepted
// entries become Persisted; entries the server rejects with a 4xx are dropped
// and reported in the returned error; the rest stay pending. Entries of other
// users are left untouched.
func (l *SymptomLog) Reconcile(ctx context.Context) (promoted int, err error) {
	owner, err := l.client.CurrentUser()
	if err != nil {
		return 0, err
	}

	var rejected []error
	for _, e := range l.PendingFor(owner.ID) {
		s, sendErr := l.client.CreateSymptom(ctx, e.Input)
		switch {
		case sendErr == nil:
			l.resolve(e.LocalID, &SymptomEntry{State: Persisted, OwnerID: e.OwnerID, Input: e.Input, Symptom: s})
			promoted++
		case errors.Is(sendErr, ErrNotLoggedIn):
			return promoted, sendErr
		case retryable(sendErr):
			l.client.log.WithError(sendErr).WithField("local_id", e.LocalID).Debug("symptom still pending")
		default:
			l.resolve(e.LocalID, nil)
			rejected = append(rejected, fmt.Errorf("%s: %w", e.LocalID, sendErr))
		}
	}
	return promoted, errors.Join(rejected...)
}

// resolve replaces the pending entry localID, or removes it when with is nil.
func (l *SymptomLog) resolve(localID string, with *SymptomEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e.State != Pending || e.LocalID != localID {
			continue
		}
		if with == nil {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
		} else {
			l.entries[i] = *with
		}
		return
	}
}

// retryable reports whether err is a transport failure or a server error.
func retryable(err error) bool {
	if errors.Is(err, ErrNotLoggedIn) || errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}
