package core

// Command is a discrete game command, abstracted from physical key presses.
// The input adapter produces these; the engine consumes them.
type Command int

const (
	CommandNone      Command = iota
	CommandRotateCW          // Up, K, W - rotate clockwise
	CommandMoveLeft          // Left, H, A - shift one column left
	CommandMoveRight         // Right, L, D - shift one column right
	CommandSoftDrop          // Down, J, S - force one tick now
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandRotateCW:
		return "RotateCW"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandSoftDrop:
		return "SoftDrop"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the four game commands.
func (c Command) Valid() bool {
	return c >= CommandRotateCW && c <= CommandSoftDrop
}

// ParseCommands converts a compact script into a command sequence.
// L = MoveLeft, R = MoveRight, U = RotateCW, D = SoftDrop, '.' = idle step.
// Any other rune is ignored, the same way the input adapter drops unmapped keys.
func ParseCommands(script string) []Command {
	cmds := make([]Command, 0, len(script))
	for _, r := range script {
		switch r {
		case 'L', 'l':
			cmds = append(cmds, CommandMoveLeft)
		case 'R', 'r':
			cmds = append(cmds, CommandMoveRight)
		case 'U', 'u':
			cmds = append(cmds, CommandRotateCW)
		case 'D', 'd':
			cmds = append(cmds, CommandSoftDrop)
		case '.':
			cmds = append(cmds, CommandNone)
		}
	}
	return cmds
}
