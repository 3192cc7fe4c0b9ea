package payout

import "github.com/shopspring/decimal"

// DefaultCommissionRate applies when a creation request omits the rate.
var DefaultCommissionRate = decimal.NewFromInt(10)

var oneHundred = decimal.NewFromInt(100)

// ComputeCommission derives the platform's cut and the venue's net
// amount from gross revenue. Pure; callers validate 0 <= rate <= 100.
// commission + net always reassembles the gross revenue exactly: only
// the commission is rounded, the net takes the remainder.
func ComputeCommission(totalRevenue, commissionRatePercent decimal.Decimal) (commissionAmount, netAmount decimal.Decimal) {
	commissionAmount = totalRevenue.Mul(commissionRatePercent).Div(oneHundred).Round(2)
	netAmount = totalRevenue.Sub(commissionAmount)
	return commissionAmount, netAmount
}
