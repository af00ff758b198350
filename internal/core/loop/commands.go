package loop

// Command is a logical input derived from a raw keyboard or window event.
type Command string

const (
	CommandNone     Command = ""
	CommandSpeedUp  Command = "speed_up"
	CommandSlowDown Command = "slow_down"
	CommandQuit     Command = "quit"
)
