package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the demo. Enter mounts its icons and listeners,
// Exit tears them down again.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine holds the active screen and forwards the host callbacks to it.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the active state and enters next. Setting the state that is
// already active does nothing, so its icons keep their activation progress.
func (sm *StateMachine) SetState(next State) {
	if next != nil && next == sm.current {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Shutdown exits the active state, cancelling its timers and subscriptions.
func (sm *StateMachine) Shutdown() {
	sm.SetState(nil)
}
