// Package keymap defines key bindings and action dispatch for the console.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"

	// Sample list navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Playback
	ActionPlay       Action = "play"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionToggleMute Action = "toggle_mute"
)

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
}

// All contains every console key binding, in help order.
var All = []Binding{
	{ActionMoveUp, []string{"k", "up"}, "Previous sample"},
	{ActionMoveDown, []string{"j", "down"}, "Next sample"},
	{ActionJumpStart, []string{"g", "home"}, "First sample"},
	{ActionJumpEnd, []string{"G", "end"}, "Last sample"},
	{ActionPlay, []string{"enter", " "}, "Play sample"},
	{ActionVolumeUp, []string{"+", "="}, "Louder"},
	{ActionVolumeDown, []string{"-", "_"}, "Quieter"},
	{ActionToggleMute, []string{"m"}, "Mute"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit"},
}
