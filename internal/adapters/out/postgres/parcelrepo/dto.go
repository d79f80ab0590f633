// Package parcelrepo persists the parcel aggregate: one row in parcels and
// one row per tracking event in tracking_events.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the parcels row. Version backs the conditional update.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingID      string     `gorm:"size:32;not null;uniqueIndex"`
	SenderID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiverID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type            string     `gorm:"not null"`
	Weight          float64    `gorm:"not null"`
	PickupAddress   string     `gorm:"not null"`
	DeliveryAddress string     `gorm:"not null"`
	DeliveryDate    *time.Time `gorm:"type:timestamptz"`
	Fee             float64    `gorm:"not null"`
	CouponCode      string     `gorm:"size:64"`
	DiscountAmount  float64    `gorm:"not null;default:0"`
	Status          int        `gorm:"not null;index"`
	IsBlocked       bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime:false"`
	Version         int        `gorm:"not null;default:0"`

	Events []TrackingEventDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// TrackingEventDTO is keyed by (parcel_id, sequence), so re-inserting an
// already stored event is a no-op and the history stays append-only.
type TrackingEventDTO struct {
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence  int       `gorm:"primaryKey;autoIncrement:false"`
	Status    int       `gorm:"not null"`
	Timestamp time.Time `gorm:"not null"`
	Location  string    `gorm:"type:text"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null"`
	Note      string    `gorm:"type:text"`
}

func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	details := p.Details()
	charge := p.Charge()

	return ParcelDTO{
		ID:              p.ID().Bytes(),
		TrackingID:      p.TrackingID(),
		SenderID:        p.Sender().Bytes(),
		ReceiverID:      p.Receiver().Bytes(),
		Type:            details.Type,
		Weight:          details.Weight,
		PickupAddress:   details.PickupAddress,
		DeliveryAddress: details.DeliveryAddress,
		DeliveryDate:    details.DeliveryDate,
		Fee:             charge.Fee,
		CouponCode:      charge.CouponCode,
		DiscountAmount:  charge.DiscountAmount,
		Status:          int(p.Status()),
		IsBlocked:       p.IsBlocked(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
		Version:         p.Version(),
		Events:          eventsFromDomain(p.ID(), p.Events()),
	}
}

func eventsFromDomain(parcelID kernel.UUID, events []parcel.TrackingEvent) []TrackingEventDTO {
	dtos := make([]TrackingEventDTO, 0, len(events))
	for i, e := range events {
		dtos = append(dtos, TrackingEventDTO{
			ParcelID:  parcelID.Bytes(),
			Sequence:  i + 1,
			Status:    int(e.Status()),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
			UpdatedBy: e.UpdatedBy().Bytes(),
			Note:      e.Note(),
		})
	}
	return dtos
}

// toDomain expects dto.Events ordered by sequence.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sender, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	receiver, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	events := make([]parcel.TrackingEvent, 0, len(dto.Events))
	for _, e := range dto.Events {
		by, byErr := kernel.UUIDFromBytes(e.UpdatedBy[:])
		if byErr != nil {
			return nil, byErr
		}
		event, eventErr := parcel.NewTrackingEvent(parcel.Status(e.Status), e.Timestamp, by, e.Location, e.Note)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	var deliveryDate *time.Time
	if dto.DeliveryDate != nil {
		d := dto.DeliveryDate.UTC()
		deliveryDate = &d
	}

	return parcel.RestoreParcel(parcel.RestoreParams{
		ID:         id,
		TrackingID: dto.TrackingID,
		Sender:     sender,
		Receiver:   receiver,
		Details: parcel.Details{
			Type:            dto.Type,
			Weight:          dto.Weight,
			PickupAddress:   dto.PickupAddress,
			DeliveryAddress: dto.DeliveryAddress,
			DeliveryDate:    deliveryDate,
		},
		Charge: parcel.Charge{
			Fee:            dto.Fee,
			CouponCode:     dto.CouponCode,
			DiscountAmount: dto.DiscountAmount,
		},
		Status:    parcel.Status(dto.Status),
		IsBlocked: dto.IsBlocked,
		Events:    events,
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
		Version:   dto.Version,
	})
}
