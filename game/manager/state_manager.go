package manager

import "smooth-snake/game/types"

// StateManager is the run-state machine. The zero value is StateNone,
// the state after construction and after Reset.
//
//	any       --Pause-->    PAUSED
//	any       --Resume-->   RUNNING
//	RUNNING   --GameOver--> GAME_OVER
//	any       --Reset-->    NONE
//
// GAME_OVER never returns to RUNNING on its own; callers reinitialise and
// resume explicitly.
type StateManager struct {
	state types.RunState
}

func (sm *StateManager) Pause() {
	sm.state = types.StatePaused
}

func (sm *StateManager) Resume() {
	sm.state = types.StateRunning
}

// GameOver moves a running game to GAME_OVER. Returns false for any other state.
func (sm *StateManager) GameOver() bool {
	if sm.state != types.StateRunning {
		return false
	}
	sm.state = types.StateGameOver
	return true
}

func (sm *StateManager) Reset() {
	sm.state = types.StateNone
}

func (sm StateManager) State() types.RunState {
	return sm.state
}

func (sm StateManager) IsRunning() bool {
	return sm.state == types.StateRunning
}

func (sm StateManager) IsPaused() bool {
	return sm.state == types.StatePaused
}

func (sm StateManager) IsGameOver() bool {
	return sm.state == types.StateGameOver
}
