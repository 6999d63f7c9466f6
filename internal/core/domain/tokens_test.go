package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKey_Digits(t *testing.T) {
	for _, d := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		tok, ok := MapKey(d)

		require.True(t, ok)
		assert.Equal(t, TokenDigit, tok.Kind)
		assert.Equal(t, d, tok.Digit)
	}
}

func TestMapKey_Operators(t *testing.T) {
	tests := []struct {
		key  string
		want Operator
	}{
		{"+", OpAdd},
		{"-", OpSubtract},
		{"*", OpMultiply},
		{"x", OpMultiply},
		{"X", OpMultiply},
		{"/", OpDivide},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tok, ok := MapKey(tt.key)

			require.True(t, ok)
			assert.Equal(t, TokenOperator, tok.Kind)
			assert.Equal(t, tt.want, tok.Op)
		})
	}
}

func TestMapKey_DecimalSeparators(t *testing.T) {
	for _, key := range []string{".", ","} {
		tok, ok := MapKey(key)

		require.True(t, ok)
		assert.Equal(t, TokenDecimal, tok.Kind)
	}
}

func TestMapKey_ControlKeys(t *testing.T) {
	tests := []struct {
		key  string
		want TokenKind
	}{
		{"Enter", TokenEquals},
		{"enter", TokenEquals},
		{"=", TokenEquals},
		{"Escape", TokenClear},
		{"esc", TokenClear},
		{"c", TokenClear},
		{"C", TokenClear},
		{"Delete", TokenClear},
		{"Backspace", TokenBackspace},
		{"backspace", TokenBackspace},
		{"%", TokenPercent},
		{"±", TokenToggleSign},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tok, ok := MapKey(tt.key)

			require.True(t, ok)
			assert.Equal(t, tt.want, tok.Kind)
		})
	}
}

func TestMapKey_UnmappedKeysIgnored(t *testing.T) {
	for _, key := range []string{"q", "tab", " ", "f1", "€"} {
		_, ok := MapKey(key)

		assert.False(t, ok, "key %q should not map", key)
	}
}
