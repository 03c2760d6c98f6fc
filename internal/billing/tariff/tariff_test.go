package tariff_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tirtadata/tirtabill/internal/billing/tariff"
)

func TestComputeSplitsAcrossBands(t *testing.T) {
	rates := tariff.Rates{
		T1: decimal.NewFromInt(2),
		T2: decimal.NewFromInt(3),
		T3: decimal.NewFromInt(4),
	}

	charges := tariff.Compute(decimal.NewFromInt(25), rates)

	require.True(t, charges.R1.Equal(decimal.NewFromInt(20)), "r1 = %s", charges.R1)
	require.True(t, charges.R2.Equal(decimal.NewFromInt(30)), "r2 = %s", charges.R2)
	require.True(t, charges.R3.Equal(decimal.NewFromInt(20)), "r3 = %s", charges.R3)
}

func TestComputeFirstBandOnly(t *testing.T) {
	rates := tariff.Rates{
		T1: decimal.NewFromInt(2),
		T2: decimal.NewFromInt(3),
		T3: decimal.NewFromInt(4),
	}

	charges := tariff.Compute(decimal.NewFromInt(5), rates)

	require.True(t, charges.R1.Equal(decimal.NewFromInt(10)))
	require.True(t, charges.R2.IsZero())
	require.True(t, charges.R3.IsZero())
}

func TestComputeZeroConsumption(t *testing.T) {
	rates := tariff.Rates{
		T1: decimal.NewFromInt(2),
		T2: decimal.NewFromInt(3),
		T3: decimal.NewFromInt(4),
	}

	charges := tariff.Compute(decimal.Zero, rates)

	require.True(t, charges.R1.IsZero())
	require.True(t, charges.R2.IsZero())
	require.True(t, charges.R3.IsZero())
}

func TestComputeThirdBandUnbounded(t *testing.T) {
	rates := tariff.Rates{
		T1: decimal.NewFromInt(1),
		T2: decimal.NewFromInt(1),
		T3: decimal.NewFromInt(1),
	}

	charges := tariff.Compute(decimal.NewFromInt(100), rates)

	require.True(t, charges.R1.Equal(decimal.NewFromInt(10)))
	require.True(t, charges.R2.Equal(decimal.NewFromInt(10)))
	require.True(t, charges.R3.Equal(decimal.NewFromInt(80)))
}

func TestComputeFloatFractionalRates(t *testing.T) {
	r1, r2, r3 := tariff.ComputeFloat(25, 2.5, 3.5, 4.5)

	require.InDelta(t, 25.0, r1, 1e-9)
	require.InDelta(t, 35.0, r2, 1e-9)
	require.InDelta(t, 22.5, r3, 1e-9)
}
