package http

import (
	"context"
	"log/slog"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers are the use cases the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	CreateParcel       Handler[commands.CreateParcelCommand, *parcel.Parcel]
	CancelParcel       Handler[commands.CancelParcelCommand, *parcel.Parcel]
	ConfirmDelivery    Handler[commands.ConfirmDeliveryCommand, *parcel.Parcel]
	UpdateParcelStatus Handler[commands.UpdateParcelStatusCommand, *parcel.Parcel]
	BlockParcel        Handler[commands.BlockParcelCommand, *parcel.Parcel]
	RegisterUser       Handler[commands.RegisterUserCommand, *user.User]
	LoginUser          Handler[commands.LoginUserCommand, commands.LoginResult]
	SetUserBlocked     Handler[commands.SetUserBlockedCommand, *user.User]

	// Query handlers
	GetParcel           Handler[queries.GetParcelQuery, queries.ParcelView]
	GetParcelStatusLog  Handler[queries.GetParcelStatusLogQuery, []queries.TrackingEventView]
	TrackParcel         Handler[queries.TrackParcelQuery, queries.TrackParcelQueryResponse]
	ListSenderParcels   Handler[queries.ListSenderParcelsQuery, []queries.ParcelView]
	ListReceiverParcels Handler[queries.ListReceiverParcelsQuery, []queries.ParcelView]
	ListAllParcels      Handler[queries.ListAllParcelsQuery, []queries.ParcelView]
	ListUsers           Handler[queries.ListUsersQuery, []queries.UserView]
	GetUser             Handler[queries.GetUserQuery, queries.UserView]
}

// Server maps HTTP requests onto use cases and their results onto the
// {success, data, message} envelope.
type Server struct {
	handlers Handlers
	tokens   ports.TokenVerifier
	doc      *openapi3.T
	logger   *slog.Logger
}

func NewServer(handlers Handlers, tokens ports.TokenVerifier, doc *openapi3.T, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		doc:      doc,
		logger:   logger.With("component", "http"),
	}
}

// Router builds the echo instance with every route and middleware attached.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = s.handleHTTPError

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.registerRoutes(e)

	return e
}

func (s *Server) registerRoutes(e *echo.Echo) {
	validate := s.validateRequest()
	guarded := func(roles ...kernel.Role) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{s.authenticate(roles...), validate}
	}

	auth := e.Group("/api/auth")
	auth.POST("/register", s.RegisterUser, validate)
	auth.POST("/login", s.LoginUser, validate)

	parcels := e.Group("/api/parcels")
	parcels.GET("/track/:trackingId", s.TrackParcel, validate)

	parcels.POST("", s.CreateParcel, guarded(kernel.RoleSender)...)
	parcels.GET("/me", s.ListSenderParcels, guarded(kernel.RoleSender)...)
	parcels.PATCH("/:id/cancel", s.CancelParcel, guarded(kernel.RoleSender)...)

	parcels.GET("/received", s.ListReceiverParcels, guarded(kernel.RoleReceiver)...)
	parcels.PATCH("/:id/confirm", s.ConfirmDelivery, guarded(kernel.RoleReceiver)...)

	parcels.GET("", s.ListAllParcels, guarded(kernel.RoleAdmin)...)
	parcels.PATCH("/:id/block", s.BlockParcel, guarded(kernel.RoleAdmin)...)
	parcels.PATCH("/:id/status", s.UpdateParcelStatus, guarded(kernel.RoleAdmin)...)

	parcels.GET("/:id", s.GetParcel, guarded()...)
	parcels.GET("/:id/status-log", s.GetParcelStatusLog, guarded()...)

	users := e.Group("/api/users")
	users.GET("", s.ListUsers, guarded(kernel.RoleAdmin)...)
	users.PATCH("/:id/block", s.BlockUser, guarded(kernel.RoleAdmin)...)
	users.PATCH("/:id/unblock", s.UnblockUser, guarded(kernel.RoleAdmin)...)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
