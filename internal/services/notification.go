package services

import (
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// Practice milestones that trigger a sound
const (
	EventSessionComplete  = "session-complete"
	EventStandardComplete = "standard-complete"
)

// NotificationService plays milestone sounds when the notifications preference is on
type NotificationService struct {
	player ports.SoundPlayer
	sync   *SyncService
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(player ports.SoundPlayer, sync *SyncService) *NotificationService {
	return &NotificationService{
		player: player,
		sync:   sync,
	}
}

// Celebrate plays the sound for event. A nil service does nothing.
func (s *NotificationService) Celebrate(event string) {
	if s == nil || s.player == nil {
		return
	}
	if !s.sync.State().Preferences.Notifications {
		logging.Logger.Debug("Notifications disabled, skipping sound", "event", event)
		return
	}
	if err := s.player.PlaySoundForEvent(event); err != nil {
		logging.Logger.Warn("Failed to play sound", "event", event, "error", err)
	}
}
