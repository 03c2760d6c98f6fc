package tariff

import "github.com/shopspring/decimal"

// TierSize is the width of each progressive consumption band in m3.
const TierSize = 10

// Rates are the stored per-m3 unit rates for the first three bands. The
// fourth band keeps whatever charge was synced from the source; recompute
// never touches it.
type Rates struct {
	T1 decimal.Decimal
	T2 decimal.Decimal
	T3 decimal.Decimal
}

// Charges are the recomputed band charges.
type Charges struct {
	R1 decimal.Decimal
	R2 decimal.Decimal
	R3 decimal.Decimal
}

// Compute splits consumption across the three 10-m3 bands and prices each
// band at its own rate. Consumption beyond 30 m3 keeps accruing in band
// three.
func Compute(consumption decimal.Decimal, rates Rates) Charges {
	tier := decimal.NewFromInt(TierSize)

	band1 := decimal.Min(tier, consumption)
	band2 := decimal.Min(tier, decimal.Max(decimal.Zero, consumption.Sub(band1)))
	band3 := decimal.Max(decimal.Zero, consumption.Sub(band1).Sub(band2))

	return Charges{
		R1: band1.Mul(rates.T1),
		R2: band2.Mul(rates.T2),
		R3: band3.Mul(rates.T3),
	}
}

// ComputeFloat is the float64 adapter for callers storing DOUBLE columns.
func ComputeFloat(consumption float64, t1, t2, t3 float64) (r1, r2, r3 float64) {
	charges := Compute(decimal.NewFromFloat(consumption), Rates{
		T1: decimal.NewFromFloat(t1),
		T2: decimal.NewFromFloat(t2),
		T3: decimal.NewFromFloat(t3),
	})
	return charges.R1.InexactFloat64(), charges.R2.InexactFloat64(), charges.R3.InexactFloat64()
}
