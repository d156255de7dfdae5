package sim

// MessageSink receives every user-visible narration line the simulation
// produces. The engine never cares how or when the text is rendered.
type MessageSink interface {
	Show(text string)
}

// SoundPlayer receives sound cues for dramatic events. Implementations may
// no-op; the engine treats playback as fire-and-forget.
type SoundPlayer interface {
	Play(sound string)
}

// Recorder collects messages and sounds in order. It is the sink used by
// the HTTP handlers (drained into the command response) and by tests.
type Recorder struct {
	Messages []string
	Sounds   []string
}

func (r *Recorder) Show(text string) {
	r.Messages = append(r.Messages, text)
}

func (r *Recorder) Play(sound string) {
	r.Sounds = append(r.Sounds, sound)
}

// Reset clears the recorder for reuse between commands.
func (r *Recorder) Reset() {
	r.Messages = r.Messages[:0]
	r.Sounds = r.Sounds[:0]
}

// Discard drops everything. Useful for bulk simulation in tests.
type Discard struct{}

func (Discard) Show(string) {}
func (Discard) Play(string) {}
