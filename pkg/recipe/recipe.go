// Package recipe provides the recipe catalog: the built-in collection of
// regional biriyani recipes, YAML loading, search and filtering, and the
// per-view ingredient checklist.
package recipe

import (
	"errors"
	"fmt"
	"strings"
)

// Recipe errors.
var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidRecipe   = errors.New("invalid recipe")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Difficulty is the effort rating shown on recipe cards.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the ratings in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty matches a difficulty name case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty: %q (want Easy, Medium or Hard)", s)
}

// Recipe is one catalog entry.
type Recipe struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Region       string     `yaml:"region"`
	Description  string     `yaml:"description"`
	Image        string     `yaml:"image,omitempty"`
	PrepMinutes  int        `yaml:"prep_minutes"`
	CookMinutes  int        `yaml:"cook_minutes"`
	Servings     int        `yaml:"servings"`
	Difficulty   Difficulty `yaml:"difficulty"`
	YouTubeID    string     `yaml:"youtube_id,omitempty"`
	Ingredients  []string   `yaml:"ingredients"`
	Instructions []string   `yaml:"instructions"`
	Tips         []string   `yaml:"tips,omitempty"`
}

// VideoURL returns the embeddable video address, or "" when the recipe has
// no video.
func (r *Recipe) VideoURL() string {
	if r.YouTubeID == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + r.YouTubeID
}

// TotalMinutes returns prep plus cook time.
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}

// Validate checks the fields the catalog and the timer rely on.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecipe)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: %s: missing name", ErrInvalidRecipe, r.ID)
	}
	if r.PrepMinutes < 0 || r.CookMinutes < 0 {
		return fmt.Errorf("%w: %s: negative time", ErrInvalidRecipe, r.ID)
	}
	if _, err := ParseDifficulty(string(r.Difficulty)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRecipe, r.ID, err)
	}
	return nil
}
