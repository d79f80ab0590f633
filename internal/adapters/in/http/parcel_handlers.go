package http

import (
	"net/http"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateParcel handles POST /api/parcels.
func (s *Server) CreateParcel(c echo.Context) error {
	var req createParcelRequest
	if err := c.Bind(&req); err != nil {
		return failure(c, http.StatusBadRequest, "Invalid request body")
	}

	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return s.fail(c, err)
	}
	deliveryDate, err := parseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateParcelCommand(callerFrom(c), receiverID, parcel.Details{
		Type:            req.Type,
		Weight:          req.Weight,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    deliveryDate,
	}, req.CouponCode)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.handlers.CreateParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusCreated, newParcelResponse(p))
}

// ListSenderParcels handles GET /api/parcels/me.
func (s *Server) ListSenderParcels(c echo.Context) error {
	query, err := queries.NewListSenderParcelsQuery(callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListSenderParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newParcelViewResponses(views))
}

// ListReceiverParcels handles GET /api/parcels/received.
func (s *Server) ListReceiverParcels(c echo.Context) error {
	query, err := queries.NewListReceiverParcelsQuery(callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListReceiverParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newParcelViewResponses(views))
}

// ListAllParcels handles GET /api/parcels?status=&from=&to=.
func (s *Server) ListAllParcels(c echo.Context) error {
	var params listParcelsParams
	if err := params.bind(c); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListAllParcelsQuery(callerFrom(c), params.Status.String(), params.From.String(), params.To.String())
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListAllParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newParcelViewResponses(views))
}

// GetParcel handles GET /api/parcels/:id.
func (s *Server) GetParcel(c echo.Context) error {
	parcelID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetParcelQuery(callerFrom(c), parcelID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newParcelViewResponse(view))
}

// GetParcelStatusLog handles GET /api/parcels/:id/status-log.
func (s *Server) GetParcelStatusLog(c echo.Context) error {
	parcelID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetParcelStatusLogQuery(callerFrom(c), parcelID)
	if err != nil {
		return s.fail(c, err)
	}

	events, err := s.handlers.GetParcelStatusLog.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newEventResponses(events))
}

// TrackParcel handles the public GET /api/parcels/track/:trackingId.
func (s *Server) TrackParcel(c echo.Context) error {
	var trackingID string
	err := runtime.BindStyledParameterWithOptions("simple", "trackingId", c.Param("trackingId"), &trackingID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("trackingId", err))
	}

	query, err := queries.NewTrackParcelQuery(trackingID)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.handlers.TrackParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newPublicTrackingResponse(resp))
}

// CancelParcel handles PATCH /api/parcels/:id/cancel.
func (s *Server) CancelParcel(c echo.Context) error {
	parcelID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCancelParcelCommand(callerFrom(c), parcelID)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.handlers.CancelParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failMutation(c, err, "Cannot cancel dispatched/delivered/blocked parcel")
	}

	return ok(c, http.StatusOK, newParcelResponse(p))
}

// ConfirmDelivery handles PATCH /api/parcels/:id/confirm.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	parcelID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewConfirmDeliveryCommand(callerFrom(c), parcelID)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.handlers.ConfirmDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failMutation(c, err, "Parcel not ready for delivery confirmation")
	}

	return ok(c, http.StatusOK, newParcelResponse(p))
}

// UpdateParcelStatus handles PATCH /api/parcels/:id/status.
func (s *Server) UpdateParcelStatus(c echo.Context) error {
	parcelID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return failure(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(callerFrom(c), parcelID, req.Status, req.Location, req.Note)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.handlers.UpdateParcelStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failMutation(c, err, "Cannot update status for blocked/canceled/delivered parcel")
	}

	return ok(c, http.StatusOK, newParcelResponse(p))
}

// BlockParcel handles PATCH /api/parcels/:id/block.
func (s *Server) BlockParcel(c echo.Context) error {
	parcelID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewBlockParcelCommand(callerFrom(c), parcelID)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.handlers.BlockParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newParcelResponse(p))
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromString(raw)
}

// parseDeliveryDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func parseDeliveryDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absent date
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errs.NewValueIsInvalidError("deliveryDate")
}

