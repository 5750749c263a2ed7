package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input     string
		disclosed bool
		reason    UndisclosedReason
		str       string
		wantErr   bool
	}{
		{"45000", true, "", "45000", false},
		{" 12500.50 ", true, "", "12500.5", false},
		{"ask", false, ReasonAsk, "ask", false},
		{"Consultar", false, ReasonAsk, "ask", false},
		{"private", false, ReasonPrivate, "private", false},
		{"PRIVADO", false, ReasonPrivate, "private", false},
		{"", false, "", "", true},
		{"free", false, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePrice(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.disclosed, p.Disclosed())
			assert.Equal(t, tt.reason, p.Reason())
			assert.Equal(t, tt.str, p.String())
			assert.True(t, p.IsSet())
		})
	}
}

func TestPrice_ZeroValueUnset(t *testing.T) {
	var p Price
	assert.False(t, p.IsSet())
	assert.False(t, p.Disclosed())
	_, ok := p.Amount()
	assert.False(t, ok)
}

func TestPrice_JSON(t *testing.T) {
	type wrapper struct {
		Price Price `json:"price"`
	}

	tests := []struct {
		name     string
		price    Price
		expected string
	}{
		{"numeric", numeric(38000), `{"price":38000}`},
		{"ask", AskPrice(), `{"price":"ask"}`},
		{"private", PrivatePrice(), `{"price":"private"}`},
		{"unset", Price{}, `{"price":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(wrapper{Price: tt.price})
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))

			var decoded wrapper
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.price.String(), decoded.Price.String())
			assert.Equal(t, tt.price.IsSet(), decoded.Price.IsSet())
		})
	}
}

func TestPrice_UnmarshalJSON_Invalid(t *testing.T) {
	var p Price
	assert.Error(t, json.Unmarshal([]byte(`"cheap"`), &p))
	assert.Error(t, json.Unmarshal([]byte(`true`), &p))
}
