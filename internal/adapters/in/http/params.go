package http

import (
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// listParcelsParams are the optional filters of GET /api/parcels. Each field
// stays nil when its parameter is absent.
type listParcelsParams struct {
	Status *statusParam
	From   *dateBoundParam
	To     *dateBoundParam
}

func (p *listParcelsParams) bind(c echo.Context) error {
	query := c.QueryParams()

	// An unknown status keeps its own error so it maps to "Invalid status".
	if err := runtime.BindQueryParameter("form", true, false, "status", query, &p.Status); err != nil {
		return err
	}
	if err := runtime.BindQueryParameter("form", true, false, "from", query, &p.From); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("from", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", query, &p.To); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("to", err)
	}
	return nil
}

// statusParam binds a lifecycle status by its wire name ("In Transit").
type statusParam struct {
	status parcel.Status
}

func (p *statusParam) Bind(src string) error {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	status, err := parcel.ParseStatus(src)
	if err != nil {
		return err
	}
	p.status = status
	return nil
}

// String returns the canonical status name, or "" when no filter was given.
func (p *statusParam) String() string {
	if p == nil || p.status == parcel.Unknown {
		return ""
	}
	return p.status.String()
}

// dateBoundParam accepts a YYYY-MM-DD date or an RFC 3339 timestamp. The raw
// text is kept because a bare date and a timestamp bound the range
// differently.
type dateBoundParam struct {
	raw string
}

func (p *dateBoundParam) Bind(src string) error {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, src); err == nil {
		p.raw = src
		return nil
	}
	if _, err := time.Parse(time.RFC3339, src); err != nil {
		return fmt.Errorf("%q is neither YYYY-MM-DD nor an RFC 3339 timestamp", src)
	}
	p.raw = src
	return nil
}

func (p *dateBoundParam) String() string {
	if p == nil {
		return ""
	}
	return p.raw
}
