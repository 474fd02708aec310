// internal/event/types.go
package event

const (
	PointerMoved     EventType = "PointerMoved"     // Data: Pointer
	IconToggled      EventType = "IconToggled"      // Data: bool (closed)
	PasswordRevealed EventType = "PasswordRevealed" // Data: bool (revealed)
	PresetSelected   EventType = "PresetSelected"   // Data: string (preset name)
)

// Pointer is the payload of PointerMoved, in viewport coordinates.
type Pointer struct {
	X, Y float64
}
