package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("19.99")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("nineteen")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money amount")
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should pass for constructed money", func(t *testing.T) {
		m := kernel.NewMoney(decimal.NewFromInt(5))

		require.NoError(t, m.Validate())
	})

	t.Run("should pass for zero money constant", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})

	t.Run("should fail for zero value money", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add with two decimal result", func(t *testing.T) {
		sum := mustMoney(t, "10.00").Add(mustMoney(t, "5.50"))

		assert.Equal(t, "15.50", sum.String())
	})

	t.Run("should subtract with two decimal result", func(t *testing.T) {
		diff := mustMoney(t, "10.00").Subtract(mustMoney(t, "2.25"))

		assert.Equal(t, "7.75", diff.String())
	})

	t.Run("should multiply by integer quantity", func(t *testing.T) {
		total := mustMoney(t, "19.99").Multiply(3)

		assert.Equal(t, "59.97", total.String())
	})

	t.Run("should round half to even", func(t *testing.T) {
		testCases := []struct {
			amount   string
			expected string
		}{
			{"1.005", "1.00"},
			{"1.015", "1.02"},
			{"1.025", "1.02"},
			{"1.035", "1.04"},
			{"-1.005", "-1.00"},
		}

		for _, tc := range testCases {
			t.Run(tc.amount, func(t *testing.T) {
				rounded := mustMoney(t, tc.amount).Add(kernel.ZeroMoney())

				assert.Equal(t, tc.expected, rounded.String())
			})
		}
	})

	t.Run("should be idempotent when re-adding zero", func(t *testing.T) {
		sum := mustMoney(t, "1.005").Add(mustMoney(t, "2.015"))
		again := sum.Add(kernel.ZeroMoney())

		assert.True(t, sum.IsEqual(again))
		assert.Equal(t, sum.String(), again.String())
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		a := mustMoney(t, "10.00")
		b := mustMoney(t, "1.00")

		_ = a.Add(b)
		_ = a.Subtract(b)
		_ = a.Multiply(7)

		assert.Equal(t, "10.00", a.String())
		assert.Equal(t, "1.00", b.String())
	})
}

func TestMoney_IsGreaterThanZero(t *testing.T) {
	t.Run("should be true for positive amounts", func(t *testing.T) {
		assert.True(t, mustMoney(t, "0.01").IsGreaterThanZero())
	})

	t.Run("should be false for zero", func(t *testing.T) {
		assert.False(t, kernel.ZeroMoney().IsGreaterThanZero())
	})

	t.Run("should be false for negative amounts", func(t *testing.T) {
		assert.False(t, mustMoney(t, "-5.00").IsGreaterThanZero())
	})

	t.Run("should be false for zero value money", func(t *testing.T) {
		var m kernel.Money

		assert.False(t, m.IsGreaterThanZero())
	})
}

func TestMoney_IsGreaterThan(t *testing.T) {
	t.Run("should compare strictly", func(t *testing.T) {
		assert.True(t, mustMoney(t, "10.01").IsGreaterThan(mustMoney(t, "10.00")))
		assert.False(t, mustMoney(t, "10.00").IsGreaterThan(mustMoney(t, "10.00")))
		assert.False(t, mustMoney(t, "9.99").IsGreaterThan(mustMoney(t, "10.00")))
	})

	t.Run("should be false when receiver has no amount", func(t *testing.T) {
		var m kernel.Money

		assert.False(t, m.IsGreaterThan(kernel.ZeroMoney()))
	})

	// Documented quirk: only the receiver's presence is checked. A zero value
	// argument compares as amount zero instead of failing.
	t.Run("ignores_other_side_presence", func(t *testing.T) {
		var absent kernel.Money

		assert.True(t, mustMoney(t, "1.00").IsGreaterThan(absent))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare on normalized two decimal amount", func(t *testing.T) {
		assert.True(t, mustMoney(t, "10.5").IsEqual(mustMoney(t, "10.50")))
		assert.False(t, mustMoney(t, "10.50").IsEqual(mustMoney(t, "10.51")))
	})

	t.Run("should treat zero money and zero value as equal amounts", func(t *testing.T) {
		var absent kernel.Money

		assert.True(t, kernel.ZeroMoney().IsEqual(absent))
	})
}
