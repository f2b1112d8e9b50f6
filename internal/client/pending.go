package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PendingStore persists pending symptom entries between CLI runs.
type PendingStore struct {
	path string
}

func NewPendingStore(path string) *PendingStore {
	return &PendingStore{path: path}
}

func (p *PendingStore) Load() ([]SymptomEntry, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []SymptomEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode pending symptoms: %w", err)
	}
	return entries, nil
}

// Save writes the pending entries of log, removing the file when none remain.
func (p *PendingStore) Save(log *SymptomLog) error {
	pending := log.Pending()
	if len(pending) == 0 {
		if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return writeFileAtomic(p.path, raw)
}
