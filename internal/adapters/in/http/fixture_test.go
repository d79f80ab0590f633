package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parceltrack/api"
	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type handlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f handlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// fakeTokens accepts "token-<name>" for every account registered on the fixture.
type fakeTokens struct {
	identities map[string]kernel.Identity
}

func (f fakeTokens) Verify(token string) (kernel.Identity, error) {
	id, ok := f.identities[token]
	if !ok {
		return kernel.Identity{}, errs.NewNotAuthenticatedError("unknown token")
	}
	return id, nil
}

type fixture struct {
	t        *testing.T
	handlers httpadapter.Handlers
	tokens   fakeTokens
	accounts map[kernel.UUID]queries.UserView

	admin    kernel.Identity
	sender   kernel.Identity
	receiver kernel.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:        t,
		tokens:   fakeTokens{identities: map[string]kernel.Identity{}},
		accounts: map[kernel.UUID]queries.UserView{},
	}
	f.admin = f.addAccount("admin", kernel.RoleAdmin, false)
	f.sender = f.addAccount("sender", kernel.RoleSender, false)
	f.receiver = f.addAccount("receiver", kernel.RoleReceiver, false)

	f.handlers.GetUser = handlerFunc[queries.GetUserQuery, queries.UserView](
		func(_ context.Context, q queries.GetUserQuery) (queries.UserView, error) {
			account, ok := f.accounts[q.UserID()]
			if !ok {
				return queries.UserView{}, errs.NewObjectNotFoundError("user", q.UserID().String())
			}
			return account, nil
		})
	return f
}

func (f *fixture) addAccount(name string, role kernel.Role, blocked bool) kernel.Identity {
	f.t.Helper()
	id, err := kernel.NewIdentity(kernel.NewUUID(), role)
	require.NoError(f.t, err)
	f.tokens.identities["token-"+name] = id
	f.accounts[id.ID()] = queries.UserView{
		ID:        id.ID(),
		Name:      name,
		Email:     name + "@example.com",
		Role:      role,
		IsBlocked: blocked,
		CreatedAt: fixedNow,
	}
	return id
}

func (f *fixture) router() *echo.Echo {
	f.t.Helper()
	doc, err := api.Load()
	require.NoError(f.t, err)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return httpadapter.NewServer(f.handlers, f.tokens, doc, logger).Router()
}

type response struct {
	Code    int             `json:"-"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (f *fixture) do(method, path, token string, body any) response {
	f.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router().ServeHTTP(rec, req)

	resp := response{Code: rec.Code}
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	}
	return resp
}

func (r response) decode(t *testing.T, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, dest))
}

func newParcel(t *testing.T, sender, receiver kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), "TRK-20260314-ABC123", sender, receiver,
		parcel.Details{Type: "Documents", Weight: 5, PickupAddress: "1 Main St", DeliveryAddress: "9 Side Rd"},
		parcel.Charge{Fee: 400}, fixedNow)
	require.NoError(t, err)
	return p
}

func parcelView(p *parcel.Parcel) queries.ParcelView {
	events := make([]queries.TrackingEventView, 0, len(p.Events()))
	for _, e := range p.Events() {
		events = append(events, queries.TrackingEventView{
			Status:    e.Status(),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
			UpdatedBy: e.UpdatedBy(),
			Note:      e.Note(),
		})
	}
	d, c := p.Details(), p.Charge()
	return queries.ParcelView{
		ID:              p.ID(),
		TrackingID:      p.TrackingID(),
		SenderID:        p.Sender(),
		ReceiverID:      p.Receiver(),
		Type:            d.Type,
		Weight:          d.Weight,
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		Fee:             c.Fee,
		CouponCode:      c.CouponCode,
		DiscountAmount:  c.DiscountAmount,
		Status:          p.Status(),
		IsBlocked:       p.IsBlocked(),
		TrackingEvents:  events,
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}
