package domain

// TokenKind classifies calculator input tokens.
type TokenKind int

// The closed token set the calculator accepts.
const (
	// TokenDigit is a digit 0-9.
	TokenDigit TokenKind = iota

	// TokenDecimal is the decimal separator.
	TokenDecimal

	// TokenOperator is one of the four binary operators.
	TokenOperator

	// TokenEquals evaluates the pending expression.
	TokenEquals

	// TokenClear resets the session.
	TokenClear

	// TokenBackspace removes the last input character.
	TokenBackspace

	// TokenPercent divides the current input by 100.
	TokenPercent

	// TokenToggleSign flips the sign of the current input.
	TokenToggleSign
)

// Token is one calculator input from the static key mapping.
type Token struct {
	// Kind classifies the token.
	Kind TokenKind

	// Digit holds the digit text for TokenDigit.
	Digit string

	// Op holds the operator for TokenOperator.
	Op Operator
}

// keyTokens is the immutable key-identifier to token mapping. Unmapped
// keys signal "ignore", not a failure. Both browser-style identifiers
// ("Enter", "Escape") and terminal-style ones ("enter", "esc") are
// listed so every adapter shares one table.
var keyTokens = map[string]Token{
	"0": {Kind: TokenDigit, Digit: "0"},
	"1": {Kind: TokenDigit, Digit: "1"},
	"2": {Kind: TokenDigit, Digit: "2"},
	"3": {Kind: TokenDigit, Digit: "3"},
	"4": {Kind: TokenDigit, Digit: "4"},
	"5": {Kind: TokenDigit, Digit: "5"},
	"6": {Kind: TokenDigit, Digit: "6"},
	"7": {Kind: TokenDigit, Digit: "7"},
	"8": {Kind: TokenDigit, Digit: "8"},
	"9": {Kind: TokenDigit, Digit: "9"},

	".": {Kind: TokenDecimal},
	",": {Kind: TokenDecimal},

	"+": {Kind: TokenOperator, Op: OpAdd},
	"-": {Kind: TokenOperator, Op: OpSubtract},
	"*": {Kind: TokenOperator, Op: OpMultiply},
	"x": {Kind: TokenOperator, Op: OpMultiply},
	"X": {Kind: TokenOperator, Op: OpMultiply},
	"×": {Kind: TokenOperator, Op: OpMultiply},
	"/": {Kind: TokenOperator, Op: OpDivide},
	"÷": {Kind: TokenOperator, Op: OpDivide},

	"=":      {Kind: TokenEquals},
	"enter":  {Kind: TokenEquals},
	"Enter":  {Kind: TokenEquals},
	"c":      {Kind: TokenClear},
	"C":      {Kind: TokenClear},
	"esc":    {Kind: TokenClear},
	"Escape": {Kind: TokenClear},
	"delete": {Kind: TokenClear},
	"Delete": {Kind: TokenClear},

	"backspace": {Kind: TokenBackspace},
	"Backspace": {Kind: TokenBackspace},

	"%": {Kind: TokenPercent},
	"±": {Kind: TokenToggleSign},
}

// MapKey looks up the token for a key identifier. The second return is
// false for unmapped keys, which callers treat as "ignore".
func MapKey(key string) (Token, bool) {
	t, ok := keyTokens[key]
	return t, ok
}
