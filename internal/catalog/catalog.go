// Package catalog groups candidate secret words by category.
package catalog

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/KirkDiggler/hangman/internal/random"
)

// Config holds configuration for loading a catalog
type Config struct {
	// WordsFile is an optional path to a words file. A missing or unreadable
	// file is logged and ignored.
	WordsFile string

	// Source is an optional reader used instead of WordsFile
	Source io.Reader

	// Builtin overrides the built-in categories; nil uses Builtin
	Builtin map[string][]string

	// Roller picks categories and words
	Roller random.Roller
}

// Catalog maps category names to sorted, unique word lists
type Catalog struct {
	categories map[string][]string
	names      []string
	roller     random.Roller
}

// Load merges the external word source with the built-in categories. It
// only fails on a bad config; source problems degrade to built-in data.
func Load(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	merged := make(map[string]map[string]bool)
	add := func(category, word string) {
		if merged[category] == nil {
			merged[category] = make(map[string]bool)
		}
		merged[category][word] = true
	}

	source := cfg.Source
	if source == nil && cfg.WordsFile != "" {
		f, err := os.Open(cfg.WordsFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// no words file is the common case
		case err != nil:
			log.Printf("catalog: ignoring words file %s: %v", cfg.WordsFile, err)
		default:
			defer f.Close()
			source = f
		}
	}
	if source != nil {
		if err := parseLines(source, add); err != nil {
			log.Printf("catalog: stopped reading word source: %v", err)
		}
	}

	builtin := cfg.Builtin
	if builtin == nil {
		builtin = Builtin
	}
	for category, words := range builtin {
		for _, word := range words {
			word = strings.ToLower(strings.TrimSpace(word))
			if validEntry(word) {
				add(strings.ToLower(category), word)
			}
		}
	}
	if len(merged[DefaultCategory]) == 0 {
		for _, word := range fallbackDefault {
			add(DefaultCategory, word)
		}
	}

	c := &Catalog{
		categories: make(map[string][]string, len(merged)),
		roller:     cfg.Roller,
	}
	for category, set := range merged {
		if len(set) == 0 {
			continue
		}
		words := make([]string, 0, len(set))
		for word := range set {
			words = append(words, word)
		}
		sort.Strings(words)
		c.categories[category] = words
		c.names = append(c.names, category)
	}
	sort.Strings(c.names)

	return c, nil
}

// parseLines reads "category:word" or bare "word" lines. Entries with
// characters other than letters and apostrophes are skipped.
func parseLines(r io.Reader, add func(category, word string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		category, word, found := strings.Cut(line, ":")
		if !found {
			category, word = DefaultCategory, line
		}
		category = strings.ToLower(strings.TrimSpace(category))
		word = strings.ToLower(strings.TrimSpace(word))
		if category == "" {
			category = DefaultCategory
		}
		if !validEntry(word) {
			continue
		}
		add(category, word)
	}
	return scanner.Err()
}

// validEntry accepts letters and apostrophes with at least one letter
func validEntry(word string) bool {
	letters := 0
	for _, r := range word {
		switch {
		case r == '\'':
		case unicode.IsLetter(r):
			letters++
		default:
			return false
		}
	}
	return letters > 0
}

// Categories returns the category names in sorted order
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Words returns the sorted word list for a category
func (c *Catalog) Words(category string) []string {
	words := c.categories[category]
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// PickWord resolves a category and draws a word from it. An empty or
// unknown category is replaced by a random one.
func (c *Catalog) PickWord(category string) (string, string) {
	category = strings.ToLower(strings.TrimSpace(category))
	words, ok := c.categories[category]
	if !ok {
		category = c.names[c.roller.Intn(len(c.names))]
		words = c.categories[category]
	}
	return category, words[c.roller.Intn(len(words))]
}

// AcceptCustomWord normalizes a two-player secret. Anything other than
// letters is rejected with ErrInvalidWord.
func AcceptCustomWord(candidate string) (string, error) {
	word := strings.ToLower(strings.TrimSpace(candidate))
	if word == "" {
		return "", ErrInvalidWord
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", ErrInvalidWord
		}
	}
	return word, nil
}
