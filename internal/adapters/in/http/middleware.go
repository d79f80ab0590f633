package http

import (
	"errors"
	"net/http"
	"strings"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// authenticate resolves the bearer token to a live account and, when roles
// are given, requires the account to hold one of them. The role is read from
// the directory, so a changed or blocked account takes effect immediately.
func (s *Server) authenticate(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, found := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !found {
				return failure(c, http.StatusUnauthorized, "No token provided")
			}

			claimed, err := s.tokens.Verify(token)
			if err != nil {
				return failure(c, http.StatusUnauthorized, "Invalid token")
			}

			query, err := queries.NewGetUserQuery(claimed.ID())
			if err != nil {
				return failure(c, http.StatusUnauthorized, "Invalid token")
			}
			account, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
			if errors.Is(err, errs.ErrObjectNotFound) || (err == nil && account.IsBlocked) {
				return failure(c, http.StatusForbidden, "User blocked or not found")
			}
			if err != nil {
				return s.fail(c, err)
			}

			caller, err := kernel.NewIdentity(account.ID, account.Role)
			if err != nil {
				return s.fail(c, err)
			}
			if len(roles) > 0 && caller.RequireRole(roles...) != nil {
				return failure(c, http.StatusForbidden, "Forbidden: Insufficient role")
			}

			c.Set(callerKey, caller)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

// callerFrom returns the identity stored by authenticate. Routes without
// authentication get the zero Identity, which every use case rejects.
func callerFrom(c echo.Context) kernel.Identity {
	caller, _ := c.Get(callerKey).(kernel.Identity)
	return caller
}

// validateRequest checks parameters and bodies against the OpenAPI document.
// The route is taken from echo's match, so the document never has to
// disambiguate /api/parcels/me from /api/parcels/{id}.
func (s *Server) validateRequest() echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := openAPIPath(c.Path())
			item := s.doc.Paths.Find(path)
			if item == nil {
				return next(c)
			}
			req := c.Request()
			operation := item.GetOperation(req.Method)
			if operation == nil {
				return next(c)
			}

			pathParams := make(map[string]string, len(c.ParamNames()))
			for i, name := range c.ParamNames() {
				pathParams[name] = c.ParamValues()[i]
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route: &routers.Route{
					Spec:      s.doc,
					Path:      path,
					PathItem:  item,
					Method:    req.Method,
					Operation: operation,
				},
				Options: options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return failure(c, http.StatusUnprocessableEntity, validationMessage(err))
			}

			return next(c)
		}
	}
}

// openAPIPath turns echo's /parcels/:id into the document's /parcels/{id}.
func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, segment := range segments {
		if name, found := strings.CutPrefix(segment, ":"); found {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

func validationMessage(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		if field == "" {
			return "Invalid request: " + schemaErr.Reason
		}
		return "Invalid request: " + field + ": " + schemaErr.Reason
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "Invalid request: parameter " + reqErr.Parameter.Name + ": " + reqErr.Reason
		}
		if reqErr.Reason != "" {
			return "Invalid request: " + reqErr.Reason
		}
	}

	return "Invalid request"
}
