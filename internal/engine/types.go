package engine

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryDaily  Category = "daily"
	CategoryGoal   Category = "goal"
	CategoryCustom Category = "custom"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryDaily, CategoryGoal, CategoryCustom:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing.
const DefaultCategory Category = CategoryCustom

func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DefaultCategory, nil
	}
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", input)
	}
	return c, nil
}

// Theme tags a task with the life area it belongs to. Themes are optional.
type Theme string

const (
	ThemeHealth       Theme = "health"
	ThemeLearning     Theme = "learning"
	ThemeCreativity   Theme = "creativity"
	ThemeProductivity Theme = "productivity"
	ThemeSocial       Theme = "social"
	ThemeFinance      Theme = "finance"
	ThemeTechnology   Theme = "technology"
	ThemeOutdoor      Theme = "outdoor"
	ThemeCooking      Theme = "cooking"
	ThemeMindfulness  Theme = "mindfulness"
	ThemeReading      Theme = "reading"
	ThemeMusic        Theme = "music"
	ThemeFilm         Theme = "film"
	ThemePet          Theme = "pet"
	ThemeGardening    Theme = "gardening"
	ThemeShopping     Theme = "shopping"
)

var allThemes = []Theme{
	ThemeHealth, ThemeLearning, ThemeCreativity, ThemeProductivity,
	ThemeSocial, ThemeFinance, ThemeTechnology, ThemeOutdoor,
	ThemeCooking, ThemeMindfulness, ThemeReading, ThemeMusic,
	ThemeFilm, ThemePet, ThemeGardening, ThemeShopping,
}

func (t Theme) IsValid() bool {
	for _, known := range allThemes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTheme parses user input to a Theme. Empty input means no theme.
func ParseTheme(input string) (Theme, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return "", nil
	}
	t := Theme(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid theme: %q", input)
	}
	return t, nil
}

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// SeasonForMonth maps a month to its season: Mar-May spring, Jun-Aug summer,
// Sep-Nov autumn, Dec-Feb winter.
func SeasonForMonth(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// Task is a single ledger entry. Streak and LastCompleted are only
// meaningful for daily tasks; CompletedAt and CompletionLocation are unset
// while the task is incomplete.
type Task struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Category           Category   `json:"category"`
	Completed          bool       `json:"completed"`
	CreatedAt          time.Time  `json:"createdAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	Streak             int        `json:"streak,omitempty"`
	LastCompleted      string     `json:"lastCompleted,omitempty"`
	Theme              Theme      `json:"theme,omitempty"`
	Icon               string     `json:"icon,omitempty"`
	IsMilestone        bool       `json:"isMilestone,omitempty"`
	CompletionLocation string     `json:"completionLocation,omitempty"`
}

// CompletedOn reports whether the task was completed on the given day key.
func (t Task) CompletedOn(day string) bool {
	return t.CompletedAt != nil && DayKey(*t.CompletedAt) == day
}

// StreakState is the aggregate "all daily tasks done" streak, independent
// from the per-task Streak field.
type StreakState struct {
	Current       int
	UpdatedToday  bool
	LastActiveDay string
}
