package kernel

import (
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every arithmetic result is
// rounded to.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney, MoneyFromString, or ZeroMoney so that an
// amount is always present.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money is an immutable value object representing an exact decimal amount.
// Every arithmetic operation returns a new instance whose amount is rounded to
// two fractional digits using round-half-to-even (banker's rounding), so
// repeated folds over Money values stay stable.
//
// The zero value of Money has no amount: comparisons on it degrade to false
// and Validate reports ErrMoneyIsNotConstructed. Callers performing arithmetic
// must only use constructed instances.
//
// Example:
//
//	price, err := kernel.MoneyFromString("19.99")
//	if err != nil {
//	    // handle parse error
//	}
//	total := price.Multiply(3) // 59.97
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money holding the given decimal amount. The amount is
// stored as supplied; rounding to the money scale happens on arithmetic
// results and normalized comparisons, not at construction.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// MoneyFromString parses a decimal string such as "10.00" or "-3.5" into a
// Money. Returns an error for malformed input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount), nil
}

// ZeroMoney returns a constructed Money with amount zero. It is the additive
// identity used as the starting value when summing line items.
func ZeroMoney() Money {
	return NewMoney(decimal.Zero)
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsGreaterThanZero reports whether an amount is present and strictly
// positive. A zero-value Money returns false.
func (m Money) IsGreaterThanZero() bool {
	return m.guard.Validate(nil) == nil && m.amount.IsPositive()
}

// IsGreaterThan reports whether an amount is present and strictly greater
// than other's amount.
//
// Note the asymmetry: only the receiver's presence is checked, not other's.
// A zero-value argument compares as amount zero. This mirrors the original
// behavior of the pricing rules and is kept deliberately; callers must ensure
// other is well-formed.
func (m Money) IsGreaterThan(other Money) bool {
	return m.guard.Validate(nil) == nil && m.amount.GreaterThan(other.amount)
}

// Add returns a new Money holding the sum of both amounts, rounded to two
// fractional digits with round-half-to-even.
func (m Money) Add(other Money) Money {
	return NewMoney(setScale(m.amount.Add(other.amount)))
}

// Subtract returns a new Money holding the difference of both amounts,
// rounded to two fractional digits with round-half-to-even.
func (m Money) Subtract(other Money) Money {
	return NewMoney(setScale(m.amount.Sub(other.amount)))
}

// Multiply returns a new Money holding the amount scaled by an integer
// multiplier, rounded to two fractional digits with round-half-to-even.
// It is used for unit-price × quantity line subtotals.
func (m Money) Multiply(multiplier int) Money {
	return NewMoney(setScale(m.amount.Mul(decimal.NewFromInt(int64(multiplier)))))
}

// IsEqual compares two Money values structurally on the normalized
// two-decimal amount, so 10.5 and 10.50 are equal.
func (m Money) IsEqual(other Money) bool {
	return setScale(m.amount).Equal(setScale(other.amount))
}

// String renders the amount with exactly two fractional digits, e.g. "10.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// Validate checks that the Money was created through a constructor and thus
// carries an amount. Returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func setScale(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(moneyScale)
}
