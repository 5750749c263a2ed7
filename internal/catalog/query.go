package catalog

import (
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// UndisclosedComparisonPrice is the amount substituted for "ask" and "private"
// prices when ranking by price proximity. Both tokens share it, so undisclosed
// horses cluster together at the high end.
const UndisclosedComparisonPrice = 100000

var undisclosedComparison = decimal.NewFromInt(UndisclosedComparisonPrice)

// ComparisonPrice returns the value used to compare p with other prices.
func ComparisonPrice(p Price) decimal.Decimal {
	if amount, ok := p.Amount(); ok {
		return amount
	}
	return undisclosedComparison
}

func matches(h Horse, category Category, level Level) bool {
	if category != CategoryAll && h.Category != category {
		return false
	}
	return level == LevelAll || h.Level == level
}

// FilterByCategoryAndLevel returns the horses matching category and level in
// their original order. CategoryAll and LevelAll disable the respective
// predicate; unknown values match nothing. The result is never nil.
func FilterByCategoryAndLevel(horses []Horse, category Category, level Level) []Horse {
	return lo.Filter(horses, func(h Horse, _ int) bool {
		return matches(h, category, level)
	})
}

// RankRelated returns up to limit horses of the reference's category, other than
// the reference itself, ordered by how close their price is to the reference's.
// Ties keep catalog order.
func RankRelated(horses []Horse, reference Horse, limit int) []Horse {
	if limit <= 0 {
		return []Horse{}
	}

	target := ComparisonPrice(reference.Price)

	type candidate struct {
		horse    Horse
		distance decimal.Decimal
	}

	candidates := lo.FilterMap(horses, func(h Horse, _ int) (candidate, bool) {
		if h.Category != reference.Category || h.ID == reference.ID {
			return candidate{}, false
		}
		return candidate{
			horse:    h,
			distance: ComparisonPrice(h.Price).Sub(target).Abs(),
		}, true
	})

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.distance.Cmp(b.distance)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return lo.Map(candidates, func(c candidate, _ int) Horse {
		return c.horse
	})
}
