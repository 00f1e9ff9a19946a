package utils

import "github.com/premiafi/finance-terms/internal/domain"

// SumPolicies returns the premium and tax fee totals across all policies.
func SumPolicies(policies domain.PolicyList) (totalPremium, totalTaxFee float64) {
	for _, policy := range policies {
		totalPremium += policy.Premium
		totalTaxFee += policy.TaxFee
	}
	return totalPremium, totalTaxFee
}

// CalculateDownpayment calculates the downpayment amount
// Formula: rate * totalPremium + totalTaxFee
// No rounding is applied; values keep native float precision.
func CalculateDownpayment(totalPremium, totalTaxFee, rate float64) float64 {
	return rate*totalPremium + totalTaxFee
}

// CalculateAmountFinanced calculates the remaining financed balance
// Formula: (totalPremium + totalTaxFee) - downpayment
func CalculateAmountFinanced(totalPremium, totalTaxFee, downpayment float64) float64 {
	return (totalPremium + totalTaxFee) - downpayment
}
