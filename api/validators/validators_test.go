package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/guitarshop-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemBody struct {
	Name     string           `json:"name" validate:"required,notblank"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Quantity *int             `json:"quantity" validate:"required,gte=0"`
}

func decode(t *testing.T, body string) (itemBody, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dest itemBody
	err := DecodeJSONBody(req, &dest)
	return dest, err
}

func detailsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok, "unexpected details %T", typed.Details())
	return details
}

func TestDecodeJSONBodyAcceptsZeroValues(t *testing.T) {
	dest, err := decode(t, `{"name":"Strap","price":0,"quantity":0}`)
	require.NoError(t, err)
	assert.True(t, dest.Price.IsZero())
	assert.Equal(t, 0, *dest.Quantity)
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	_, err := decode(t, `{"name":"   ","quantity":-1}`)
	details := detailsOf(t, err)
	assert.Equal(t, map[string]string{
		"name":     "must not be blank",
		"price":    "is required",
		"quantity": "must be at least 0",
	}, details)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	_, err := decode(t, `{"name":"Strap","price":1,"quantity":1,"color":"red"}`)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, "invalid request body", typed.Message())
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	_, err := decode(t, `{"name":`)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func withParam(key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestParsePathID(t *testing.T) {
	id, err := ParsePathID(withParam("id", "42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for raw, want := range map[string]int64{"0": 0, "-3": -3} {
		id, err := ParsePathID(withParam("id", raw), "id")
		require.NoError(t, err, "raw=%q", raw)
		assert.Equal(t, want, id)
	}

	for _, raw := range []string{"abc", "1.5", ""} {
		_, err := ParsePathID(withParam("id", raw), "id")
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), "raw=%q", raw)
	}
}
