package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"smooth-snake/input"
)

var keyBindings = []struct {
	key int32
	cmd input.Command
}{
	{rl.KeyUp, input.Move(input.UP)},
	{rl.KeyW, input.Move(input.UP)},
	{rl.KeyRight, input.Move(input.RIGHT)},
	{rl.KeyD, input.Move(input.RIGHT)},
	{rl.KeyDown, input.Move(input.DOWN)},
	{rl.KeyS, input.Move(input.DOWN)},
	{rl.KeyLeft, input.Move(input.LEFT)},
	{rl.KeyA, input.Move(input.LEFT)},
	{rl.KeyP, input.Command{Action: input.ActionTogglePause}},
	{rl.KeySpace, input.Command{Action: input.ActionTogglePause}},
	{rl.KeyM, input.Command{Action: input.ActionToggleSmooth}},
	{rl.KeyR, input.Command{Action: input.ActionRestart}},
	{rl.KeyG, input.Command{Action: input.ActionGrow}},
	{rl.KeyQ, input.Command{Action: input.ActionQuit}},
}

// PollCommands returns the commands for the keys pressed since the last frame
func PollCommands() []input.Command {
	var cmds []input.Command
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
