package manager

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// SessionStats summarises one play session. Nothing is written to disk.
type SessionStats struct {
	UUID      string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Ticks     int
	Frames    int
	EndCause  string
}

func (s SessionStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

type StateManager struct {
	stats SessionStats
	now   func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{now: time.Now}
	sm.stats = SessionStats{
		UUID:      uuid.New().String(),
		StartTime: sm.now(),
		Length:    1,
	}
	return sm
}

func (sm *StateManager) Logger() *log.Entry {
	return log.WithField("session", sm.stats.UUID)
}

func (sm *StateManager) AddFrame() {
	sm.stats.Frames++
}

func (sm *StateManager) AddTick(length int) {
	sm.stats.Ticks++
	sm.stats.Length = length
}

func (sm *StateManager) UpdateScore(length int) {
	sm.stats.Score++
	sm.stats.Length = length
	sm.Logger().WithFields(log.Fields{
		"score":  sm.stats.Score,
		"length": length,
	}).Debug("fruit eaten")
}

// End records why the session stopped and logs the summary. Only the first call counts.
func (sm *StateManager) End(cause string) {
	if sm.stats.EndCause != "" {
		return
	}
	sm.stats.EndCause = cause
	sm.stats.EndTime = sm.now()
	sm.Logger().WithFields(log.Fields{
		"cause":    cause,
		"score":    sm.stats.Score,
		"length":   sm.stats.Length,
		"ticks":    sm.stats.Ticks,
		"frames":   sm.stats.Frames,
		"duration": sm.stats.Duration().Round(time.Millisecond),
	}).Info("session ended")
}

func (sm *StateManager) GetStats() SessionStats {
	return sm.stats
}
