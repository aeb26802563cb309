package study

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/review"
)

// QueueItem is one entry of the daily review queue.
type QueueItem struct {
	State    domain.WordState
	Priority float64
}

// BuildQueue filters the given states down to those due before the end of
// now's day and orders them by descending priority. New words always surface
// first. Ties break alphabetically so the ordering is stable across calls.
// limit <= 0 means no limit. Pure over the caller-supplied slice.
func (s *Service) BuildQueue(states []domain.WordState, now time.Time, limit int) []QueueItem {
	queue := make([]QueueItem, 0, len(states))
	for _, st := range states {
		if !review.IsDueToday(st, now, s.timezone) {
			continue
		}
		queue = append(queue, QueueItem{State: st, Priority: review.Priority(st, now)})
	}

	sort.Slice(queue, func(i, j int) bool {
		if queue[i].Priority != queue[j].Priority {
			return queue[i].Priority > queue[j].Priority
		}
		return queue[i].State.Word < queue[j].State.Word
	})

	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}
	return queue
}

// GetQueue loads the user's words and builds today's review queue.
func (s *Service) GetQueue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]QueueItem, error) {
	states, err := s.words.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return s.BuildQueue(states, now, limit), nil
}
