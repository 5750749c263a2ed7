package navigator

import (
	"testing"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func horse(id string, category catalog.Category) *catalog.Horse {
	return &catalog.Horse{ID: id, Name: id, Category: category}
}

func assertState(t *testing.T, s State, screen Screen, active catalog.Category, selectedID string) {
	t.Helper()
	assert.Equal(t, screen, s.Screen(), "screen")
	assert.Equal(t, active, s.ActiveCategory(), "active category")
	h, ok := s.Selected()
	if selectedID == "" {
		assert.False(t, ok, "no selection expected, got %q", h.ID)
		return
	}
	require.True(t, ok, "selection expected")
	assert.Equal(t, selectedID, h.ID)
}

func mustOpen(t *testing.T, s State, h *catalog.Horse) State {
	t.Helper()
	next, err := s.OpenDetail(h)
	require.NoError(t, err)
	return next
}

func TestInitial(t *testing.T) {
	assertState(t, Initial(), ScreenHome, catalog.CategoryAll, "")

	var zero State
	assertState(t, zero, ScreenHome, catalog.CategoryAll, "")
}

func TestSelectCategory(t *testing.T) {
	sell := Initial().OpenSell()
	detail := mustOpen(t, Initial().SelectCategory(catalog.CategoryDressage), horse("x", catalog.CategoryDressage))

	tests := []struct {
		name     string
		from     State
		category catalog.Category
		screen   Screen
		active   catalog.Category
	}{
		{"home to dressage", Initial(), catalog.CategoryDressage, ScreenCategory, catalog.CategoryDressage},
		{"home to all", Initial(), catalog.CategoryAll, ScreenHome, catalog.CategoryAll},
		{"sell to showjumping", sell, catalog.CategoryShowjumping, ScreenCategory, catalog.CategoryShowjumping},
		{"detail to all clears selection", detail, catalog.CategoryAll, ScreenHome, catalog.CategoryAll},
		{"detail to other category", detail, catalog.CategoryShowjumping, ScreenCategory, catalog.CategoryShowjumping},
		{"category to category", Initial().SelectCategory(catalog.CategoryDressage), catalog.CategoryShowjumping, ScreenCategory, catalog.CategoryShowjumping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertState(t, tt.from.SelectCategory(tt.category), tt.screen, tt.active, "")
		})
	}
}

func TestSelectCategory_InvalidIsNoOp(t *testing.T) {
	s := Initial().SelectCategory(catalog.CategoryDressage)
	next := s.SelectCategory(catalog.Category("polo"))
	assert.Equal(t, s, next)
}

func TestOpenSell(t *testing.T) {
	assertState(t, Initial().OpenSell(), ScreenSell, catalog.CategoryAll, "")

	fromCategory := Initial().SelectCategory(catalog.CategoryShowjumping).OpenSell()
	assertState(t, fromCategory, ScreenSell, catalog.CategoryShowjumping, "")

	fromDetail := mustOpen(t, Initial(), horse("x", catalog.CategoryDressage)).OpenSell()
	assertState(t, fromDetail, ScreenSell, catalog.CategoryAll, "")
}

func TestOpenDetail(t *testing.T) {
	t.Run("keeps active category", func(t *testing.T) {
		s := mustOpen(t, Initial().SelectCategory(catalog.CategoryShowjumping), horse("sj", catalog.CategoryShowjumping))
		assertState(t, s, ScreenDetail, catalog.CategoryShowjumping, "sj")
	})

	t.Run("related horse replaces selection", func(t *testing.T) {
		s := mustOpen(t, Initial(), horse("a", catalog.CategoryDressage))
		s = mustOpen(t, s, horse("b", catalog.CategoryDressage))
		assertState(t, s, ScreenDetail, catalog.CategoryAll, "b")
	})

	t.Run("nil horse is rejected", func(t *testing.T) {
		s := Initial().SelectCategory(catalog.CategoryDressage)
		next, err := s.OpenDetail(nil)
		assert.ErrorIs(t, err, ErrNoSelection)
		assert.Equal(t, s, next)
	})

	t.Run("selection is a copy", func(t *testing.T) {
		h := horse("a", catalog.CategoryDressage)
		s := mustOpen(t, Initial(), h)
		h.ID = "mutated"
		assertState(t, s, ScreenDetail, catalog.CategoryAll, "a")
	})
}

func TestCategoryRoundTrip(t *testing.T) {
	s := Initial().SelectCategory(catalog.CategoryDressage).GoBackFromCategory()
	assertState(t, s, ScreenHome, catalog.CategoryAll, "")
}

func TestDetailBackNavigation(t *testing.T) {
	t.Run("from category returns to category", func(t *testing.T) {
		s := Initial().SelectCategory(catalog.CategoryShowjumping)
		s = mustOpen(t, s, horse("x", catalog.CategoryShowjumping))
		s = s.GoBackFromDetail()
		assertState(t, s, ScreenCategory, catalog.CategoryShowjumping, "")
	})

	t.Run("from home returns home", func(t *testing.T) {
		s := mustOpen(t, Initial(), horse("y", catalog.CategoryDressage))
		s = s.GoBackFromDetail()
		assertState(t, s, ScreenHome, catalog.CategoryAll, "")
	})
}

func TestGoBackFromSell(t *testing.T) {
	s := Initial().SelectCategory(catalog.CategoryDressage).OpenSell().GoBackFromSell()
	assertState(t, s, ScreenHome, catalog.CategoryAll, "")
}

func TestUndocumentedTransitionsAreNoOps(t *testing.T) {
	home := Initial()
	category := home.SelectCategory(catalog.CategoryDressage)
	sell := home.OpenSell()
	detail := mustOpen(t, category, horse("x", catalog.CategoryDressage))

	tests := []struct {
		name string
		from State
		step func(State) State
	}{
		{"back from detail on home", home, State.GoBackFromDetail},
		{"back from detail on category", category, State.GoBackFromDetail},
		{"back from detail on sell", sell, State.GoBackFromDetail},
		{"back from category on home", home, State.GoBackFromCategory},
		{"back from category on sell", sell, State.GoBackFromCategory},
		{"back from category on detail", detail, State.GoBackFromCategory},
		{"back from sell on home", home, State.GoBackFromSell},
		{"back from sell on category", category, State.GoBackFromSell},
		{"back from sell on detail", detail, State.GoBackFromSell},
		{"back on home", home, State.Back},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.from, tt.step(tt.from))
		})
	}
}

func TestBack(t *testing.T) {
	category := Initial().SelectCategory(catalog.CategoryShowjumping)
	detail := mustOpen(t, category, horse("x", catalog.CategoryShowjumping))

	assertState(t, detail.Back(), ScreenCategory, catalog.CategoryShowjumping, "")
	assertState(t, category.Back(), ScreenHome, catalog.CategoryAll, "")
	assertState(t, category.OpenSell().Back(), ScreenHome, catalog.CategoryAll, "")
}

func TestInvariants(t *testing.T) {
	// Walk every transition sequence of length 3 and check the state invariants.
	h := horse("x", catalog.CategoryDressage)
	steps := []func(State) State{
		func(s State) State { return s.SelectCategory(catalog.CategoryAll) },
		func(s State) State { return s.SelectCategory(catalog.CategoryDressage) },
		func(s State) State { return s.SelectCategory(catalog.CategoryShowjumping) },
		State.OpenSell,
		func(s State) State { next, _ := s.OpenDetail(h); return next },
		State.GoBackFromDetail,
		State.GoBackFromCategory,
		State.GoBackFromSell,
	}

	var walk func(s State, depth int)
	walk = func(s State, depth int) {
		if s.Screen() == ScreenCategory {
			assert.NotEqual(t, catalog.CategoryAll, s.ActiveCategory())
		}
		_, selected := s.Selected()
		assert.Equal(t, s.Screen() == ScreenDetail, selected)
		if depth == 0 {
			return
		}
		for _, step := range steps {
			walk(step(s), depth-1)
		}
	}
	walk(Initial(), 3)
}

func TestPath(t *testing.T) {
	category := Initial().SelectCategory(catalog.CategoryDressage)

	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{"home", Initial(), "/"},
		{"category", category, "/category/dressage"},
		{"sell", Initial().OpenSell(), "/sell"},
		{"detail from home", mustOpen(t, Initial(), horse("dx01-valiente", catalog.CategoryDressage)), "/horses/dx01-valiente"},
		{"detail from category", mustOpen(t, category, horse("dx01-valiente", catalog.CategoryDressage)), "/horses/dx01-valiente?from=dressage"},
		{"detail escapes id", mustOpen(t, Initial(), horse("a b", catalog.CategoryDressage)), "/horses/a%20b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Path())
		})
	}
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "home", ScreenHome.String())
	assert.Equal(t, "category", ScreenCategory.String())
	assert.Equal(t, "sell", ScreenSell.String())
	assert.Equal(t, "detail", ScreenDetail.String())
	assert.Equal(t, "unknown", Screen(42).String())
}
