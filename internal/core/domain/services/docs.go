// Package services contains the stateless domain services used when a parcel
// is created:
//
//   - FeeCalculator: maps a weight and an optional coupon to a parcel.Charge
//   - TrackingIDGenerator: produces TRK-YYYYMMDD-XXXXXX tracking identifiers
package services
