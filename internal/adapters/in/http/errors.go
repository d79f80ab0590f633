package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func failure(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message})
}

// fail writes the envelope for a use case error. Unclassified errors become a
// bare 500; their detail only goes to the log.
func (s *Server) fail(c echo.Context, err error) error {
	status, message := problem(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return failure(c, status, message)
}

// failMutation is fail with an operation specific message for illegal
// transitions.
func (s *Server) failMutation(c echo.Context, err error, transitionMessage string) error {
	if errors.Is(err, parcel.ErrInvalidTransition) {
		return failure(c, http.StatusUnprocessableEntity, transitionMessage)
	}
	return s.fail(c, err)
}

func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := fmt.Sprint(he.Message)
		if he.Internal != nil {
			s.logger.WarnContext(c.Request().Context(), "http error", "status", he.Code, "error", he.Internal)
		}
		_ = failure(c, he.Code, message)
		return
	}

	_ = s.fail(c, err)
}

func problem(err error) (int, string) {
	var (
		notFound *errs.ObjectNotFoundError
		denied   *errs.AccessDeniedError
		exists   *errs.ObjectAlreadyExistsError
	)

	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Email or password incorrect"
	case errors.Is(err, commands.ErrUserBlocked):
		return http.StatusForbidden, "User blocked"
	case errors.Is(err, commands.ErrReceiverInvalid):
		return http.StatusNotFound, "Receiver not found or invalid"
	case errors.Is(err, commands.ErrDuplicateTrackingID):
		return http.StatusConflict, "Could not allocate a unique tracking id, please retry"
	case errors.Is(err, parcel.ErrAlreadyDelivered):
		return http.StatusConflict, "Parcel has already been delivered."
	case errors.Is(err, parcel.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "Invalid status"
	case errors.Is(err, parcel.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "Invalid status transition"
	case errors.As(err, &notFound):
		return http.StatusNotFound, capitalize(notFound.ParamName) + " not found"
	case errors.As(err, &denied):
		return http.StatusForbidden, forbiddenMessage(denied.Reason)
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Invalid token"
	case errors.As(err, &exists):
		if exists.ParamName == "email" {
			return http.StatusConflict, "Email already registered"
		}
		return http.StatusConflict, capitalize(exists.ParamName) + " already exists"
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, "Parcel was modified concurrently, please retry"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity, "Validation error: " + strings.ReplaceAll(err.Error(), "\n", "; ")
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func forbiddenMessage(reason string) string {
	switch reason {
	case parcel.ReasonParcelBlocked:
		return "Parcel is blocked"
	case parcel.ReasonNotAuthorized:
		return "Forbidden: Not authorized"
	case kernel.ReasonInsufficientRole:
		return "Forbidden: Insufficient role"
	default:
		return "Forbidden"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
