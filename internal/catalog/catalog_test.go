package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	valid := testHorse("ok", CategoryDressage, LevelYoung, numeric(1000))

	tests := []struct {
		name    string
		horses  []Horse
		wantErr string
	}{
		{"empty catalog", nil, ""},
		{"valid horses", []Horse{valid, testHorse("ok2", CategoryShowjumping, LevelNone, AskPrice())}, ""},
		{"blank id", []Horse{testHorse(" ", CategoryDressage, LevelNone, numeric(1))}, "id is required"},
		{"duplicate id", []Horse{valid, valid}, "duplicate id"},
		{"blank name", []Horse{{ID: "x", Category: CategoryDressage, Price: numeric(1)}}, "name is required"},
		{"all is not a record category", []Horse{testHorse("x", CategoryAll, LevelNone, numeric(1))}, "invalid category"},
		{"unknown category", []Horse{testHorse("x", Category("polo"), LevelNone, numeric(1))}, "invalid category"},
		{"all is not a record level", []Horse{testHorse("x", CategoryDressage, LevelAll, numeric(1))}, "invalid level"},
		{"unset price", []Horse{testHorse("x", CategoryDressage, LevelNone, Price{})}, "price is required"},
		{"negative price", []Horse{testHorse("x", CategoryDressage, LevelNone, numeric(-5))}, "non-negative"},
		{"negative age", []Horse{{ID: "x", Name: "x", Category: CategoryDressage, Age: -1, Price: numeric(1)}}, "age must be non-negative"},
		{"unknown gender", []Horse{{ID: "x", Name: "x", Category: CategoryDressage, Gender: "colt", Price: numeric(1)}}, "invalid gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.horses)
			if tt.wantErr != "" {
				assert.Nil(t, c)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.horses), c.Len())
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	h := testHorse("x", CategoryDressage, LevelNone, numeric(1))
	h.Gallery = []string{"one.jpg"}
	input := []Horse{h}

	c, err := New(input)
	require.NoError(t, err)

	input[0].Name = "mutated"
	input[0].Gallery[0] = "mutated.jpg"

	got, err := c.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, []string{"one.jpg"}, got.Gallery)
}

func TestCatalog_All(t *testing.T) {
	c, err := New(mixedCatalog())
	require.NoError(t, err)

	all := c.All()
	assert.Equal(t, ids(mixedCatalog()), ids(all))

	all[0].ID = "mutated"
	assert.Equal(t, "d1", c.All()[0].ID)
}

func TestCatalog_Get(t *testing.T) {
	c, err := New(mixedCatalog())
	require.NoError(t, err)

	t.Run("existing id", func(t *testing.T) {
		h, err := c.Get("s2")
		require.NoError(t, err)
		assert.Equal(t, CategoryShowjumping, h.Category)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := c.Get("nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestCatalog_Showcase(t *testing.T) {
	c, err := New(mixedCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"d1", "s1", "d2"}, ids(c.Showcase(3)))
	assert.Len(t, c.Showcase(100), 7)
	assert.Empty(t, c.Showcase(0))
}

func TestCatalog_Count(t *testing.T) {
	c, err := New(mixedCatalog())
	require.NoError(t, err)

	assert.Equal(t, 4, c.Count(CategoryDressage, LevelAll))
	assert.Equal(t, 2, c.Count(CategoryDressage, LevelYoung))
	assert.Equal(t, 7, c.Count(CategoryAll, LevelAll))
	assert.Equal(t, 0, c.Count(Category("polo"), LevelAll))
}

func TestCatalog_FilterAndRelated(t *testing.T) {
	c, err := New(exampleCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Filter(CategoryDressage, LevelAll)))

	a, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(c.Related(a, 2)))
}

func TestCatalog_ReturnedSlicesAreCopies(t *testing.T) {
	h := testHorse("a", CategoryDressage, LevelYoung, numeric(1000))
	h.Gallery = []string{"one.jpg"}
	h.Features = []string{"noble"}
	other := testHorse("b", CategoryDressage, LevelYoung, numeric(1100))
	other.Gallery = []string{"two.jpg"}
	other.Features = []string{"brave"}

	c, err := New([]Horse{h, other})
	require.NoError(t, err)

	ref, err := c.Get("a")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func()
	}{
		{"get", func() { ref.Gallery[0] = "x"; ref.Features[0] = "x" }},
		{"all", func() { all := c.All(); all[0].Gallery[0] = "x"; all[0].Features[0] = "x" }},
		{"showcase", func() { s := c.Showcase(1); s[0].Gallery[0] = "x"; s[0].Features[0] = "x" }},
		{"filter", func() { f := c.Filter(CategoryDressage, LevelAll); f[0].Gallery[0] = "x"; f[0].Features[0] = "x" }},
		{"related", func() { r := c.Related(ref, 1); r[0].Gallery[0] = "x"; r[0].Features[0] = "x" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mutate()

			a, err := c.Get("a")
			require.NoError(t, err)
			assert.Equal(t, []string{"one.jpg"}, a.Gallery)
			assert.Equal(t, []string{"noble"}, a.Features)

			b, err := c.Get("b")
			require.NoError(t, err)
			assert.Equal(t, []string{"two.jpg"}, b.Gallery)
			assert.Equal(t, []string{"brave"}, b.Features)
		})
	}
}

const sampleTOML = `
[[horse]]
id = "dx-1"
name = "Bailador"
category = "doma"
level = "alto"
age = 9
gender = "stallion"
price = 45000
gallery = ["a.jpg", "b.jpg"]
video_vertical = "https://example.com/short"

[[horse]]
id = "sj-1"
name = "Rayo"
category = "showjumping"
age = 7
price = "Consultar"

[[horse]]
id = "sj-2"
name = "Nube"
category = "salto"
level = "medio"
price = 12500.5
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sampleTOML))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	dx, err := c.Get("dx-1")
	require.NoError(t, err)
	assert.Equal(t, CategoryDressage, dx.Category)
	assert.Equal(t, LevelAdvanced, dx.Level)
	assert.Equal(t, GenderStallion, dx.Gender)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, dx.Gallery)
	assert.Equal(t, "https://example.com/short", dx.VideoVertical)
	amount, ok := dx.Price.Amount()
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(45000)))

	sj, err := c.Get("sj-1")
	require.NoError(t, err)
	assert.Equal(t, LevelNone, sj.Level)
	assert.False(t, sj.Price.Disclosed())
	assert.Equal(t, ReasonAsk, sj.Price.Reason())

	sj2, err := c.Get("sj-2")
	require.NoError(t, err)
	assert.Equal(t, CategoryShowjumping, sj2.Category)
	assert.Equal(t, LevelIntermediate, sj2.Level)
	assert.Equal(t, "12500.5", sj2.Price.String())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed toml", "[[horse]\nid =", "decode catalog"},
		{"unknown key", "[[horse]]\nid = \"x\"\nname = \"x\"\ncategory = \"doma\"\nprice = 1\ncolour = \"bay\"", "unknown catalog keys"},
		{"bad price token", "[[horse]]\nid = \"x\"\nname = \"x\"\ncategory = \"doma\"\nprice = \"cheap\"", "invalid price"},
		{"bad price type", "[[horse]]\nid = \"x\"\nname = \"x\"\ncategory = \"doma\"\nprice = true", "unsupported price"},
		{"missing price", "[[horse]]\nid = \"x\"\nname = \"x\"\ncategory = \"doma\"", "price is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.input))
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog")
}

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, 12, c.Len())

	for _, category := range Categories {
		assert.Positive(t, c.Count(category, LevelAll), "category %s has horses", category)
	}
}
