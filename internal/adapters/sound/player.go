package sound

import (
	"fmt"

	"github.com/renato0307/shed/internal/ports"
)

// Practice events with their own sound
const (
	EventSessionComplete  = "session-complete"
	EventStandardComplete = "standard-complete"
)

// Player implements ports.SoundPlayer
type Player struct{}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(event string) error {
	return playForEvent(event)
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
