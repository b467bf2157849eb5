package amount

import (
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidNumber error = errors.New("invalid number")
var ErrNotPositive error = errors.New("amount must be greater than zero")
var ErrInsufficientBalance error = errors.New("insufficient balance")

const maxCachedScale = 18

// scaleTable is filled once at init and read-only afterwards, so concurrent
// parses share it without locking.
var scaleTable = func() map[int]*big.Int {
	table := make(map[int]*big.Int, maxCachedScale+1)
	for decimals := 0; decimals <= maxCachedScale; decimals++ {
		table[decimals] = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	}
	return table
}()

func pow10(decimals int) *big.Int {
	if cached, ok := scaleTable[decimals]; ok {
		return cached
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// Parse converts a user-entered decimal string into an integer scaled by
// 10^decimals. It never fails: on any malformed input it returns a copy of
// fallback (zero when fallback is nil) and true, and callers gate submission
// on that flag.
func Parse(input string, decimals int, fallback *big.Int) (*big.Int, bool) {
	fb := func() (*big.Int, bool) {
		if fallback == nil {
			return new(big.Int), true
		}
		return new(big.Int).Set(fallback), true
	}

	if decimals < 0 {
		return fb()
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return fb()
	}

	intPart := input
	fracPart := ""
	if i := strings.IndexByte(input, '.'); i >= 0 {
		intPart = input[:i]
		fracPart = input[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return fb()
		}
	}

	if intPart == "" && fracPart == "" {
		return fb()
	}
	if len(fracPart) > decimals {
		return fb()
	}
	if !digitsOnly(intPart) || !digitsOnly(fracPart) {
		return fb()
	}

	whole := new(big.Int)
	if intPart != "" {
		if _, ok := whole.SetString(intPart, 10); !ok {
			return fb()
		}
	}
	whole.Mul(whole, pow10(decimals))

	if fracPart != "" {
		frac := new(big.Int)
		if _, ok := frac.SetString(fracPart, 10); !ok {
			return fb()
		}
		frac.Mul(frac, pow10(decimals-len(fracPart)))
		whole.Add(whole, frac)
	}

	return whole, false
}

// Format renders a scaled integer back to a decimal string at the same
// precision, with trailing fractional zeros trimmed.
func Format(value *big.Int, decimals int) string {
	if value == nil {
		return "0"
	}
	quo, rem := new(big.Int).QuoRem(value, pow10(decimals), new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}

	frac := rem.String()
	for len(frac) < decimals {
		frac = "0" + frac
	}
	frac = strings.TrimRight(frac, "0")
	return quo.String() + "." + frac
}

// ValidateTokenInput applies the form-input rules in order, first match wins.
// Empty input is "not yet entered" and passes; max is the caller's balance in
// scaled units.
func ValidateTokenInput(input string, decimals int, max *big.Int) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	value, isFallback := Parse(input, decimals, nil)
	if isFallback {
		return ErrInvalidNumber
	}
	if value.Sign() <= 0 {
		return ErrNotPositive
	}
	if max != nil && value.Cmp(max) > 0 {
		return ErrInsufficientBalance
	}

	return nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
