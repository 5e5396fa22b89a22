package tetris

// Intents are the player requests for a single frame.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	SoftDrop  bool
	Rotate    bool
}

// Intent is a single input event delivered by a frontend.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentRestart
)

var intentNames = [...]string{"none", "move-left", "move-right", "soft-drop", "rotate", "restart"}

func (i Intent) String() string {
	if int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// IntentBuffer collects intents between frames. Repeated intents within a
// frame collapse into one; unknown values are dropped.
type IntentBuffer struct {
	pending Intents
	restart bool
}

// Queue records an intent for the next flush.
func (b *IntentBuffer) Queue(intent Intent) {
	switch intent {
	case IntentMoveLeft:
		b.pending.MoveLeft = true
	case IntentMoveRight:
		b.pending.MoveRight = true
	case IntentSoftDrop:
		b.pending.SoftDrop = true
	case IntentRotate:
		b.pending.Rotate = true
	case IntentRestart:
		b.restart = true
	}
}

// Flush returns the buffered intents and resets the buffer.
func (b *IntentBuffer) Flush() (Intents, bool) {
	intents, restart := b.pending, b.restart
	b.pending = Intents{}
	b.restart = false
	return intents, restart
}
