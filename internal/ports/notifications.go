package ports

// SoundPlayer plays a short sound for a practice event
type SoundPlayer interface {
	PlaySoundForEvent(event string) error
}

// Launcher opens a URL or file with the platform's default handler
type Launcher interface {
	Open(target string) error
}
