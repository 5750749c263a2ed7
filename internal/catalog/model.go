// Package catalog holds the immutable horse catalog and the pure queries over it.
package catalog

import (
	"strings"
)

// Category is the discipline a horse is offered for.
type Category string

const (
	CategoryDressage    Category = "dressage"
	CategoryShowjumping Category = "showjumping"

	// CategoryAll is a view filter value and never valid on a record.
	CategoryAll Category = "all"
)

// Categories lists record categories in display order.
var Categories = []Category{CategoryDressage, CategoryShowjumping}

// Valid reports whether c may appear on a record.
func (c Category) Valid() bool {
	return c == CategoryDressage || c == CategoryShowjumping
}

// ParseCategory normalizes s, accepting the Spanish slugs used by the brand
// ("doma", "salto"). Unknown input is returned as-is so that filtering with it
// matches nothing.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll
	case "dressage", "doma":
		return CategoryDressage
	case "showjumping", "salto":
		return CategoryShowjumping
	default:
		return Category(s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// Level is the competitive tier of a horse within its category.
// The empty Level means unclassified.
type Level string

const (
	LevelNone         Level = ""
	LevelYoung        Level = "young"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"

	LevelAll Level = "all"
)

// Levels lists record levels in display order.
var Levels = []Level{LevelYoung, LevelIntermediate, LevelAdvanced}

// Valid reports whether l may appear on a record. Unclassified is valid.
func (l Level) Valid() bool {
	switch l {
	case LevelNone, LevelYoung, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// ParseLevel normalizes a level filter value. Empty input means all.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return LevelAll
	case "young", "basico":
		return LevelYoung
	case "intermediate", "medio":
		return LevelIntermediate
	case "advanced", "alto":
		return LevelAdvanced
	default:
		return Level(s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike ParseLevel an empty
// value stays unclassified.
func (l *Level) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*l = LevelNone
		return nil
	}
	*l = ParseLevel(string(text))
	return nil
}

// Gender of a horse.
type Gender string

const (
	GenderStallion Gender = "stallion"
	GenderMare     Gender = "mare"
	GenderGelding  Gender = "gelding"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderStallion || g == GenderMare || g == GenderGelding
}

// Horse is one catalog entry.
type Horse struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Category      Category `toml:"category"`
	Level         Level    `toml:"level"`
	Age           int      `toml:"age"`
	Gender        Gender   `toml:"gender"`
	Breed         string   `toml:"breed"`
	Country       string   `toml:"country"`
	Height        string   `toml:"height"`
	Coat          string   `toml:"coat"`
	Price         Price    `toml:"price"`
	Description   string   `toml:"description"` // markdown
	Lineage       string   `toml:"lineage"`
	Image         string   `toml:"image"`
	Gallery       []string `toml:"gallery"`
	Video         string   `toml:"video"`          // horizontal, 16:9
	VideoVertical string   `toml:"video_vertical"` // vertical, 9:16
	Features      []string `toml:"features"`
}

// Elite reports whether the horse belongs to the top tier.
func (h Horse) Elite() bool {
	return h.Level == LevelAdvanced
}

// LevelOption describes a level as shown on a category page.
type LevelOption struct {
	Level Level
	Num   string
	Title string
	Tag   string
}

var levelOptions = map[Category][]LevelOption{
	CategoryDressage: {
		{Level: LevelYoung, Num: "01", Title: "Potros", Tag: "Young Horses"},
		{Level: LevelIntermediate, Num: "02", Title: "Confirmados", Tag: "Performance"},
		{Level: LevelAdvanced, Num: "03", Title: "Grand Prix", Tag: "Elite Masters"},
	},
	CategoryShowjumping: {
		{Level: LevelYoung, Num: "01", Title: "Prospects", Tag: "Young Talents"},
		{Level: LevelIntermediate, Num: "02", Title: "Competitors", Tag: "1.30m - 1.40m"},
		{Level: LevelAdvanced, Num: "03", Title: "Top Sport", Tag: "Ranking Classes"},
	},
}

// LevelOptions returns the level cards for a category, nil for unknown ones.
func LevelOptions(c Category) []LevelOption {
	return levelOptions[c]
}

// CategoryLabel returns the display name of a category.
func CategoryLabel(c Category) string {
	switch c {
	case CategoryDressage:
		return "Doma Clásica"
	case CategoryShowjumping:
		return "Salto de Obstáculos"
	case CategoryAll:
		return "Colección"
	}
	return string(c)
}

// LevelLabel returns the level name shared by both disciplines.
func LevelLabel(l Level) string {
	switch l {
	case LevelYoung:
		return "Potros"
	case LevelIntermediate:
		return "Nivel Básico-Medio"
	case LevelAdvanced:
		return "Nivel Avanzado"
	}
	return ""
}
