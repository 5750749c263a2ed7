package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// UndisclosedReason says why a price is not published.
type UndisclosedReason string

const (
	ReasonAsk     UndisclosedReason = "ask"     // "Consultar"
	ReasonPrivate UndisclosedReason = "private" // "Privado"
)

type priceKind uint8

const (
	priceUnset priceKind = iota
	priceNumeric
	priceUndisclosed
)

// Price is either a numeric amount in euros or an undisclosed token.
// The zero value is unset and rejected by catalog validation.
type Price struct {
	kind   priceKind
	amount decimal.Decimal
	reason UndisclosedReason
}

// NumericPrice returns a disclosed price.
func NumericPrice(amount decimal.Decimal) Price {
	return Price{kind: priceNumeric, amount: amount}
}

// AskPrice returns a price available on request.
func AskPrice() Price {
	return Price{kind: priceUndisclosed, reason: ReasonAsk}
}

// PrivatePrice returns a price kept private.
func PrivatePrice() Price {
	return Price{kind: priceUndisclosed, reason: ReasonPrivate}
}

// ParsePrice parses an amount or one of the undisclosed tokens.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "ask", "consultar":
		return AskPrice(), nil
	case "private", "privado":
		return PrivatePrice(), nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return NumericPrice(amount), nil
}

// Amount returns the numeric amount and whether the price is disclosed.
func (p Price) Amount() (decimal.Decimal, bool) {
	if p.kind != priceNumeric {
		return decimal.Zero, false
	}
	return p.amount, true
}

// Disclosed reports whether the price carries a numeric amount.
func (p Price) Disclosed() bool {
	return p.kind == priceNumeric
}

// Reason returns the undisclosed reason, empty for numeric prices.
func (p Price) Reason() UndisclosedReason {
	return p.reason
}

// IsSet reports whether the price was assigned.
func (p Price) IsSet() bool {
	return p.kind != priceUnset
}

// String returns the amount or the reason token.
func (p Price) String() string {
	switch p.kind {
	case priceNumeric:
		return p.amount.String()
	case priceUndisclosed:
		return string(p.reason)
	}
	return ""
}

// UnmarshalTOML accepts integers, floats and strings.
func (p *Price) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case int64:
		*p = NumericPrice(decimal.NewFromInt(val))
	case float64:
		*p = NumericPrice(decimal.NewFromFloat(val))
	case string:
		parsed, err := ParsePrice(val)
		if err != nil {
			return err
		}
		*p = parsed
	default:
		return fmt.Errorf("unsupported price value %v (%T)", v, v)
	}
	return nil
}

// MarshalJSON encodes numeric prices as JSON numbers and undisclosed ones as
// their reason token.
func (p Price) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case priceNumeric:
		return []byte(p.amount.String()), nil
	case priceUndisclosed:
		return json.Marshal(string(p.reason))
	}
	return []byte("null"), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Price{}
		return nil
	}
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		parsed, err := ParsePrice(token)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}
	amount, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid price %s: %w", data, err)
	}
	*p = NumericPrice(amount)
	return nil
}
