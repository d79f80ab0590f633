package services

import (
	"math"

	"parceltrack/internal/core/domain/model/parcel"
)

const (
	// DefaultRatePerUnit is the flat price per unit of weight.
	DefaultRatePerUnit = 80.0

	// CouponSave50 is the promotional code that takes 50 off the fee.
	CouponSave50 = "Save50"
)

// FeePolicy is the pricing table. Coupon codes are matched exactly.
type FeePolicy struct {
	RatePerUnit float64
	Coupons     map[string]float64
}

// DefaultFeePolicy is the canonical flat-rate policy: weight * 80, with the
// Save50 coupon worth 50.
func DefaultFeePolicy() FeePolicy {
	return FeePolicy{
		RatePerUnit: DefaultRatePerUnit,
		Coupons:     map[string]float64{CouponSave50: 50},
	}
}

// FeeCalculator is a pure function of its policy and inputs.
type FeeCalculator struct {
	policy FeePolicy
}

func NewFeeCalculator(policy FeePolicy) FeeCalculator {
	return FeeCalculator{policy: policy}
}

// Calculate returns the fee for weight with couponCode applied.
//
// A weight that is not a positive finite number yields a zero base fee
// instead of an error; callers that need a meaningful fee validate weight
// first. The fee never goes below zero. An unrecognized coupon code is kept
// on the charge but grants no discount.
func (c FeeCalculator) Calculate(weight float64, couponCode string) parcel.Charge {
	fee := 0.0
	if parcel.IsValidWeight(weight) {
		fee = weight * c.policy.RatePerUnit
	}

	charge := parcel.Charge{CouponCode: couponCode}
	if discount, ok := c.policy.Coupons[couponCode]; ok && couponCode != "" {
		charge.DiscountAmount = discount
		fee = math.Max(0, fee-discount)
	}
	charge.Fee = fee

	return charge
}
