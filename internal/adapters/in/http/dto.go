package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createParcelRequest struct {
	Type            string  `json:"type"`
	Weight          float64 `json:"weight"`
	ReceiverID      string  `json:"receiverId"`
	PickupAddress   string  `json:"pickupAddress"`
	DeliveryAddress string  `json:"deliveryAddress"`
	DeliveryDate    string  `json:"deliveryDate"`
	CouponCode      string  `json:"couponCode"`
}

type updateStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Note     string `json:"note"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

type trackingEventResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	UpdatedBy string    `json:"updatedBy"`
	Note      string    `json:"note,omitempty"`
}

type parcelResponse struct {
	ID              string                  `json:"id"`
	TrackingID      string                  `json:"trackingId"`
	Sender          string                  `json:"sender"`
	Receiver        string                  `json:"receiver"`
	Type            string                  `json:"type"`
	Weight          float64                 `json:"weight"`
	PickupAddress   string                  `json:"pickupAddress"`
	DeliveryAddress string                  `json:"deliveryAddress"`
	DeliveryDate    *time.Time              `json:"deliveryDate,omitempty"`
	Fee             float64                 `json:"fee"`
	CouponCode      *string                 `json:"couponCode"`
	DiscountAmount  float64                 `json:"discountAmount"`
	Status          string                  `json:"status"`
	IsBlocked       bool                    `json:"isBlocked"`
	TrackingEvents  []trackingEventResponse `json:"trackingEvents"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

type publicEventResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	Note      string    `json:"note,omitempty"`
}

type publicTrackingResponse struct {
	TrackingID    string                `json:"trackingId"`
	CurrentStatus string                `json:"currentStatus"`
	History       []publicEventResponse `json:"history"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newParcelResponse(p *parcel.Parcel) parcelResponse {
	details, charge := p.Details(), p.Charge()

	events := make([]trackingEventResponse, 0, len(p.Events()))
	for _, e := range p.Events() {
		events = append(events, trackingEventResponse{
			Status:    e.Status().String(),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
			UpdatedBy: e.UpdatedBy().String(),
			Note:      e.Note(),
		})
	}

	return parcelResponse{
		ID:              p.ID().String(),
		TrackingID:      p.TrackingID(),
		Sender:          p.Sender().String(),
		Receiver:        p.Receiver().String(),
		Type:            details.Type,
		Weight:          details.Weight,
		PickupAddress:   details.PickupAddress,
		DeliveryAddress: details.DeliveryAddress,
		DeliveryDate:    details.DeliveryDate,
		Fee:             charge.Fee,
		CouponCode:      optional(charge.CouponCode),
		DiscountAmount:  charge.DiscountAmount,
		Status:          p.Status().String(),
		IsBlocked:       p.IsBlocked(),
		TrackingEvents:  events,
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

func newEventResponses(views []queries.TrackingEventView) []trackingEventResponse {
	events := make([]trackingEventResponse, 0, len(views))
	for _, e := range views {
		events = append(events, trackingEventResponse{
			Status:    e.Status.String(),
			Timestamp: e.Timestamp,
			Location:  e.Location,
			UpdatedBy: e.UpdatedBy.String(),
			Note:      e.Note,
		})
	}
	return events
}

func newParcelViewResponse(v queries.ParcelView) parcelResponse {
	return parcelResponse{
		ID:              v.ID.String(),
		TrackingID:      v.TrackingID,
		Sender:          v.SenderID.String(),
		Receiver:        v.ReceiverID.String(),
		Type:            v.Type,
		Weight:          v.Weight,
		PickupAddress:   v.PickupAddress,
		DeliveryAddress: v.DeliveryAddress,
		DeliveryDate:    v.DeliveryDate,
		Fee:             v.Fee,
		CouponCode:      optional(v.CouponCode),
		DiscountAmount:  v.DiscountAmount,
		Status:          v.Status.String(),
		IsBlocked:       v.IsBlocked,
		TrackingEvents:  newEventResponses(v.TrackingEvents),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func newParcelViewResponses(views []queries.ParcelView) []parcelResponse {
	out := make([]parcelResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newParcelViewResponse(v))
	}
	return out
}

func newPublicTrackingResponse(r queries.TrackParcelQueryResponse) publicTrackingResponse {
	history := make([]publicEventResponse, 0, len(r.History))
	for _, e := range r.History {
		history = append(history, publicEventResponse{
			Status:    e.Status.String(),
			Timestamp: e.Timestamp,
			Location:  e.Location,
			Note:      e.Note,
		})
	}
	return publicTrackingResponse{
		TrackingID:    r.TrackingID,
		CurrentStatus: r.CurrentStatus.String(),
		History:       history,
	}
}

func newUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		IsBlocked: u.IsBlocked(),
		CreatedAt: u.CreatedAt(),
	}
}

func newUserViewResponses(views []queries.UserView) []userResponse {
	out := make([]userResponse, 0, len(views))
	for _, v := range views {
		out = append(out, userResponse{
			ID:        v.ID.String(),
			Name:      v.Name,
			Email:     v.Email,
			Role:      v.Role.String(),
			IsBlocked: v.IsBlocked,
			CreatedAt: v.CreatedAt,
		})
	}
	return out
}

func newLoginResponse(r commands.LoginResult) loginResponse {
	return loginResponse{
		Token: r.Token,
		ID:    r.User.ID().String(),
		Name:  r.User.Name(),
		Role:  r.User.Role().String(),
	}
}
