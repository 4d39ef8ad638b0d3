package catalog

// DefaultCategory receives bare words and is always present
const DefaultCategory = "default"

// Builtin is the word data merged into every catalog
var Builtin = map[string][]string{
	"tech":    {"python", "algorithm", "database", "variable", "function", "developer", "internet"},
	"animals": {"elephant", "tiger", "giraffe", "kangaroo", "dolphin", "penguin"},
	"common":  {"hangman", "program", "keyboard", "network", "science", "education"},
}

// fallbackDefault seeds the default category when nothing else lands there
var fallbackDefault = []string{"python", "hangman", "program"}
