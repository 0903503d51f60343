package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rghosh/devnotes/ent"
	"github.com/rghosh/devnotes/ent/progresssnapshot"
	"github.com/rghosh/devnotes/internal/progress"
)

// schemaVersion tags each stored snapshot with the layout of the serialized
// progress record. Bump when LearningProgress changes shape incompatibly.
const schemaVersion = 1

// progressStore implements ProgressStore over ent ProgressSnapshot rows.
type progressStore struct {
	client *ent.Client
}

func (s *progressStore) Load(ctx context.Context, userID string) (*progress.LearningProgress, error) {
	row, err := s.client.ProgressSnapshot.Query().
		Where(progresssnapshot.UserID(userID)).
		Order(ent.Desc(progresssnapshot.FieldSavedAt), ent.Desc(progresssnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest progress: %w", err)
	}

	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	var p progress.LearningProgress
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}
	return &p, nil
}

func (s *progressStore) Save(ctx context.Context, p *progress.LearningProgress) error {
	dataMap, err := progressToMap(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	_, err = s.client.ProgressSnapshot.Create().
		SetUserID(p.UserID).
		SetSchemaVersion(schemaVersion).
		SetSavedAt(time.Now().UTC()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress snapshot: %w", err)
	}
	return nil
}

func (s *progressStore) Prune(ctx context.Context, userID string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	rows, err := s.client.ProgressSnapshot.Query().
		Where(progresssnapshot.UserID(userID)).
		Order(ent.Desc(progresssnapshot.FieldSavedAt)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := rows[0].SavedAt
	_, err = s.client.ProgressSnapshot.Delete().
		Where(
			progresssnapshot.UserID(userID),
			progresssnapshot.SavedAtLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune progress snapshots: %w", err)
	}
	return nil
}

// progressToMap converts the aggregate to map[string]any for ent JSON storage.
func progressToMap(p *progress.LearningProgress) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
