package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindListParams(t *testing.T, rawQuery string) (listParcelsParams, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/parcels?"+rawQuery, nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var params listParcelsParams
	err := params.bind(c)
	return params, err
}

func TestListParcelsParams_Bind(t *testing.T) {
	t.Run("absent filters stay nil", func(t *testing.T) {
		params, err := bindListParams(t, "")
		require.NoError(t, err)

		assert.Nil(t, params.Status)
		assert.Nil(t, params.From)
		assert.Nil(t, params.To)
		assert.Empty(t, params.Status.String())
		assert.Empty(t, params.To.String())
	})

	t.Run("status is bound to its lifecycle value", func(t *testing.T) {
		params, err := bindListParams(t, "status=In%20Transit&from=2026-03-01&to=2026-03-31T10:00:00Z")
		require.NoError(t, err)

		require.NotNil(t, params.Status)
		assert.Equal(t, parcel.InTransit, params.Status.status)
		assert.Equal(t, "In Transit", params.Status.String())
		assert.Equal(t, "2026-03-01", params.From.String())
		assert.Equal(t, "2026-03-31T10:00:00Z", params.To.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := bindListParams(t, "status=Lost")
		require.ErrorIs(t, err, parcel.ErrInvalidStatus)
	})

	t.Run("malformed date bound", func(t *testing.T) {
		_, err := bindListParams(t, "to=31/03/2026")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
