package console

import "strings"

type commandKind int

const (
	commandUnknown commandKind = iota
	commandGuess
	commandHint
	commandSave
	commandQuit
	commandLeaderboard
)

// command is one parsed line of player input
type command struct {
	kind   commandKind
	letter string
}

// parseCommand accepts a bare letter, "guess <letter>" and the keyword commands
func parseCommand(line string) command {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: commandUnknown}
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return command{kind: commandQuit}
	case "save":
		return command{kind: commandSave}
	case "hint":
		return command{kind: commandHint}
	case "leaderboard", "scores":
		return command{kind: commandLeaderboard}
	case "guess":
		if len(fields) != 2 {
			return command{kind: commandUnknown}
		}
		return command{kind: commandGuess, letter: fields[1]}
	}

	// a lone character goes to the round, which rejects non-letters
	if len(fields) == 1 && len([]rune(fields[0])) == 1 {
		return command{kind: commandGuess, letter: fields[0]}
	}

	return command{kind: commandUnknown}
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
