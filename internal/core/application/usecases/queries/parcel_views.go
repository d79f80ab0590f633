package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParcelView is the full parcel record returned to its parties and to
// administrators.
type ParcelView struct {
	ID              kernel.UUID
	TrackingID      string
	SenderID        kernel.UUID
	ReceiverID      kernel.UUID
	Type            string
	Weight          float64
	PickupAddress   string
	DeliveryAddress string
	DeliveryDate    *time.Time
	Fee             float64
	CouponCode      string
	DiscountAmount  float64
	Status          parcel.Status
	IsBlocked       bool
	TrackingEvents  []TrackingEventView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TrackingEventView struct {
	Status    parcel.Status
	Timestamp time.Time
	Location  string
	UpdatedBy kernel.UUID
	Note      string
}

type parcelRow struct {
	ID              uuid.UUID
	TrackingID      string
	SenderID        uuid.UUID
	ReceiverID      uuid.UUID
	Type            string
	Weight          float64
	PickupAddress   string
	DeliveryAddress string
	DeliveryDate    *time.Time
	Fee             float64
	CouponCode      string
	DiscountAmount  float64
	Status          int
	IsBlocked       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type eventRow struct {
	ParcelID  uuid.UUID
	Sequence  int
	Status    int
	Timestamp time.Time
	Location  string
	UpdatedBy uuid.UUID
	Note      string
}

// snapshot reads parcels and their events from one consistent view of the
// database, so a concurrent transition cannot split a parcel from its history.
var snapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// findParcels loads the parcels selected by scope, oldest first, together
// with their ordered histories.
func findParcels(ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]ParcelView, error) {
	var views []ParcelView
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		views, err = readParcels(tx, scope)
		return err
	}, snapshot)
	if err != nil {
		return nil, err
	}
	return views, nil
}

func readParcels(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]ParcelView, error) {
	var rows []parcelRow
	err := db.
		Table("parcels").
		Scopes(scope).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]ParcelView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	events, err := findEvents(db, ids)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		view, viewErr := r.toView(events[r.ID])
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
	}

	return views, nil
}

func findEvents(db *gorm.DB, parcelIDs []uuid.UUID) (map[uuid.UUID][]TrackingEventView, error) {
	var rows []eventRow
	err := db.
		Table("tracking_events").
		Where("parcel_id IN ?", parcelIDs).
		Order("parcel_id, sequence").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byParcel := make(map[uuid.UUID][]TrackingEventView, len(parcelIDs))
	for _, r := range rows {
		by, err := kernel.UUIDFromBytes(r.UpdatedBy[:])
		if err != nil {
			return nil, err
		}
		byParcel[r.ParcelID] = append(byParcel[r.ParcelID], TrackingEventView{
			Status:    parcel.Status(r.Status),
			Timestamp: r.Timestamp.UTC(),
			Location:  r.Location,
			UpdatedBy: by,
			Note:      r.Note,
		})
	}

	return byParcel, nil
}

func (r parcelRow) toView(events []TrackingEventView) (ParcelView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ParcelView{}, err
	}
	sender, err := kernel.UUIDFromBytes(r.SenderID[:])
	if err != nil {
		return ParcelView{}, err
	}
	receiver, err := kernel.UUIDFromBytes(r.ReceiverID[:])
	if err != nil {
		return ParcelView{}, err
	}
	if events == nil {
		events = []TrackingEventView{}
	}

	var deliveryDate *time.Time
	if r.DeliveryDate != nil {
		d := r.DeliveryDate.UTC()
		deliveryDate = &d
	}

	return ParcelView{
		ID:              id,
		TrackingID:      r.TrackingID,
		SenderID:        sender,
		ReceiverID:      receiver,
		Type:            r.Type,
		Weight:          r.Weight,
		PickupAddress:   r.PickupAddress,
		DeliveryAddress: r.DeliveryAddress,
		DeliveryDate:    deliveryDate,
		Fee:             r.Fee,
		CouponCode:      r.CouponCode,
		DiscountAmount:  r.DiscountAmount,
		Status:          parcel.Status(r.Status),
		IsBlocked:       r.IsBlocked,
		TrackingEvents:  events,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}, nil
}
