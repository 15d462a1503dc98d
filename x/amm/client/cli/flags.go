package cli

// Flag names for amm transaction commands
const (
	FlagDeadline = "deadline"
)
