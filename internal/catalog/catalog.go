package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
)

//go:embed catalog.toml
var embeddedCatalog []byte

// ErrNotFound is returned when no horse has the requested id.
var ErrNotFound = errors.New("horse not found")

// Catalog is an ordered, read-only list of horses.
// Nothing mutates it after New, so it is safe for concurrent use.
type Catalog struct {
	horses []Horse
	index  map[string]int
}

// document is the TOML layout of a catalog file.
type document struct {
	Horses []Horse `toml:"horse"`
}

// New validates horses and returns a catalog that keeps its own copy of them.
func New(horses []Horse) (*Catalog, error) {
	c := &Catalog{
		horses: make([]Horse, 0, len(horses)),
		index:  make(map[string]int, len(horses)),
	}

	for i, h := range horses {
		if err := validate(h); err != nil {
			return nil, fmt.Errorf("horse #%d (%q): %w", i, h.ID, err)
		}
		if _, dup := c.index[h.ID]; dup {
			return nil, fmt.Errorf("horse #%d: duplicate id %q", i, h.ID)
		}
		c.index[h.ID] = len(c.horses)
		c.horses = append(c.horses, cloneHorse(h))
	}

	return c, nil
}

// Load decodes a TOML catalog. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return nil, fmt.Errorf("unknown catalog keys: %s", strings.Join(keys, ", "))
	}
	return New(doc.Horses)
}

// LoadFile loads a catalog from a TOML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadEmbedded loads the catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

func validate(h Horse) error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("name is required")
	}
	if !h.Category.Valid() {
		return fmt.Errorf("invalid category %q", h.Category)
	}
	if !h.Level.Valid() {
		return fmt.Errorf("invalid level %q", h.Level)
	}
	if h.Gender != "" && !h.Gender.Valid() {
		return fmt.Errorf("invalid gender %q", h.Gender)
	}
	if h.Age < 0 {
		return fmt.Errorf("age must be non-negative, got %d", h.Age)
	}
	if !h.Price.IsSet() {
		return errors.New("price is required")
	}
	if amount, ok := h.Price.Amount(); ok && amount.IsNegative() {
		return fmt.Errorf("price must be non-negative, got %s", amount)
	}
	return nil
}

func cloneHorse(h Horse) Horse {
	h.Gallery = slices.Clone(h.Gallery)
	h.Features = slices.Clone(h.Features)
	return h
}

// cloneHorses deep-copies horses so callers never share slices with the catalog.
func cloneHorses(horses []Horse) []Horse {
	return lo.Map(horses, func(h Horse, _ int) Horse { return cloneHorse(h) })
}

// All returns every horse in catalog order.
func (c *Catalog) All() []Horse {
	return cloneHorses(c.horses)
}

// Len returns the number of horses.
func (c *Catalog) Len() int {
	return len(c.horses)
}

// Get returns the horse with the given id.
func (c *Catalog) Get(id string) (Horse, error) {
	i, ok := c.index[id]
	if !ok {
		return Horse{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneHorse(c.horses[i]), nil
}

// Showcase returns the first limit horses, as featured on the landing page.
func (c *Catalog) Showcase(limit int) []Horse {
	if limit <= 0 {
		return []Horse{}
	}
	return cloneHorses(c.horses[:min(limit, len(c.horses))])
}

// Count returns how many horses match the category and level filters.
func (c *Catalog) Count(category Category, level Level) int {
	return lo.CountBy(c.horses, func(h Horse) bool {
		return matches(h, category, level)
	})
}

// Filter applies FilterByCategoryAndLevel to the whole catalog.
func (c *Catalog) Filter(category Category, level Level) []Horse {
	return cloneHorses(FilterByCategoryAndLevel(c.horses, category, level))
}

// Related applies RankRelated to the whole catalog.
func (c *Catalog) Related(reference Horse, limit int) []Horse {
	return cloneHorses(RankRelated(c.horses, reference, limit))
}
