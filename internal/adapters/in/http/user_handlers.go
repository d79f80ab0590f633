package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/auth/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return failure(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return s.fail(c, err)
	}

	u, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusCreated, newUserResponse(u))
}

// LoginUser handles POST /api/auth/login.
func (s *Server) LoginUser(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return failure(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewLoginUserCommand(req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.LoginUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newLoginResponse(result))
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c echo.Context) error {
	query, err := queries.NewListUsersQuery(callerFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	users, err := s.handlers.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newUserViewResponses(users))
}

// BlockUser handles PATCH /api/users/:id/block.
func (s *Server) BlockUser(c echo.Context) error {
	return s.setUserBlocked(c, true)
}

// UnblockUser handles PATCH /api/users/:id/unblock.
func (s *Server) UnblockUser(c echo.Context) error {
	return s.setUserBlocked(c, false)
}

func (s *Server) setUserBlocked(c echo.Context, blocked bool) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewSetUserBlockedCommand(callerFrom(c), userID, blocked)
	if err != nil {
		return s.fail(c, err)
	}

	u, err := s.handlers.SetUserBlocked.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, newUserResponse(u))
}
