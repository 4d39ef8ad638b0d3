package models

// Difficulty is the tag that selects a lives budget and score multiplier
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyNormal Difficulty = "Normal"
	DifficultyHard   Difficulty = "Hard"
	DifficultyCustom Difficulty = "Custom"
)

const (
	// MinCustomLives and MaxCustomLives bound the lives a player may pick for Custom rounds
	MinCustomLives = 1
	MaxCustomLives = 20
)

type difficultyPreset struct {
	lives int
	// multiplier in tenths so scores stay in integer arithmetic
	multiplierTenths int
}

var difficultyPresets = map[Difficulty]difficultyPreset{
	DifficultyEasy:   {lives: 8, multiplierTenths: 8},
	DifficultyNormal: {lives: 6, multiplierTenths: 10},
	DifficultyHard:   {lives: 4, multiplierTenths: 14},
	DifficultyCustom: {lives: 6, multiplierTenths: 10},
}

// Difficulties lists the presets in the order they are offered to players
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}
}

// Known reports whether d is one of the recognized tags
func (d Difficulty) Known() bool {
	_, ok := difficultyPresets[d]
	return ok
}

// Lives returns the default lives budget for the difficulty.
// Unrecognized tags get Normal's budget.
func (d Difficulty) Lives() int {
	if p, ok := difficultyPresets[d]; ok {
		return p.lives
	}
	return difficultyPresets[DifficultyNormal].lives
}

// MultiplierTenths returns the score multiplier scaled by ten (Hard is 14, i.e. 1.4).
// Unrecognized tags get Normal's multiplier.
func (d Difficulty) MultiplierTenths() int {
	if p, ok := difficultyPresets[d]; ok {
		return p.multiplierTenths
	}
	return difficultyPresets[DifficultyNormal].multiplierTenths
}
