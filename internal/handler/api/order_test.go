package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/domain/settings"
	"rentdesk/internal/handler/api"
	"rentdesk/internal/infra/memstore"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	router     *gin.Engine
	clk        *clock.MockClock
	customerID uuid.UUID
	speakerID  uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.NewStore(settings.Default(5))
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	orders := usecase.NewOrderUseCase(store, clk)
	catalog := usecase.NewCatalogUseCase(store, clk)
	customers := usecase.NewCustomerUseCase(store, clk)

	ctx := t.Context()
	cust, err := customers.Create(ctx, usecase.CustomerParams{Name: "Desert Events LLC", Phone: "050-1234567"})
	require.NoError(t, err)

	speaker, err := catalog.CreateEquipment(ctx, usecase.CreateEquipmentParams{
		Name:          "PA Speaker",
		Category:      "Audio",
		PricePerDay:   100,
		TotalQuantity: 2,
		Status:        equipment.StatusNew,
	})
	require.NoError(t, err)

	h := api.NewOrderHandler(orders)
	router := gin.New()
	router.POST("/orders", h.Create)
	router.GET("/orders", h.List)
	router.GET("/orders/:id", h.Get)
	router.PUT("/orders/:id", h.Update)
	router.DELETE("/orders/:id", h.Delete)
	router.POST("/orders/:id/convert", h.Convert)
	router.POST("/orders/:id/return", h.ProcessReturn)
	router.GET("/orders/:id/invoice", h.Invoice)

	return &apiFixture{
		router:     router,
		clk:        clk,
		customerID: cust.ID,
		speakerID:  speaker.ID,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (f *apiFixture) standardOrderBody() map[string]any {
	return map[string]any{
		"customer_id": f.customerID,
		"items": []map[string]any{
			{"equipment_id": f.speakerID, "quantity": 2},
		},
		"start_date":     "2024-01-01",
		"end_date":       "2024-01-04",
		"discount_type":  "percentage",
		"discount_value": 10,
		"paid_amount":    200,
		"payment_method": "cash",
	}
}

func (f *apiFixture) createStandardOrder(t *testing.T) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/orders", f.standardOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func TestCreateOrderEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/orders", f.standardOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Active", body["status"])
	assert.InDelta(t, 600.0, body["subtotal"], 0.001)
	assert.InDelta(t, 567.0, body["total_amount"], 0.001)
	assert.InDelta(t, 367.0, body["balance"], 0.001)
	assert.Equal(t, "2024-01-04", body["end_date"])
}

func TestCreateOrderStockConflict(t *testing.T) {
	f := newAPIFixture(t)

	body := f.standardOrderBody()
	body["items"] = []map[string]any{
		{"equipment_id": f.speakerID, "quantity": 3},
	}
	rec := f.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	resp := decodeBody(t, rec)
	detail, ok := resp["detail"].(map[string]any)
	require.True(t, ok, "conflict response carries stock detail")
	assert.InDelta(t, 3, detail["requested"], 0.001)
	assert.InDelta(t, 2, detail["available"], 0.001)
	assert.InDelta(t, 1, detail["shortfall"], 0.001)
}

func TestCreateOrderValidationErrors(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("malformed date", func(t *testing.T) {
		body := f.standardOrderBody()
		body["start_date"] = "01/01/2024"
		rec := f.do(t, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown customer", func(t *testing.T) {
		body := f.standardOrderBody()
		body["customer_id"] = uuid.New()
		rec := f.do(t, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zero quantity", func(t *testing.T) {
		body := f.standardOrderBody()
		body["items"] = []map[string]any{
			{"equipment_id": f.speakerID, "quantity": 0},
		}
		rec := f.do(t, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestGetOrderNotFound(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/orders/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuotationConvertEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	body := f.standardOrderBody()
	body["as_quotation"] = true
	rec := f.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/orders/%s/convert", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Active", decodeBody(t, rec)["status"])

	// A second conversion attempt conflicts.
	rec = f.do(t, http.MethodPost, fmt.Sprintf("/orders/%s/convert", id), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReturnEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createStandardOrder(t)

	f.clk.Set(time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC))

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/orders/%s/return", id), map[string]any{
		"lines": []map[string]any{
			{"equipment_id": f.speakerID, "good_quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Returned", body["status"])
	assert.Equal(t, "2024-01-04", *jsonString(body, "return_date"))
	assert.InDelta(t, 0.0, body["late_fee"], 0.001)
	assert.InDelta(t, 367.0, body["balance"], 0.001)
}

func TestReturnEndpointDamage(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createStandardOrder(t)

	f.clk.Set(time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC))

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/orders/%s/return", id), map[string]any{
		"lines": []map[string]any{
			{"equipment_id": f.speakerID, "good_quantity": 1, "replacement_cost": 150},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Returned", body["status"])
	assert.InDelta(t, 150.0, body["damage_fee"], 0.001)
	assert.InDelta(t, 517.0, body["balance"], 0.001)
}

func TestUpdateFrozenItemsConflict(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createStandardOrder(t)

	f.clk.Set(time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC))
	rec := f.do(t, http.MethodPost, fmt.Sprintf("/orders/%s/return", id), map[string]any{
		"lines": []map[string]any{
			{"equipment_id": f.speakerID, "good_quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/orders/"+id, map[string]any{
		"end_date": "2024-01-10",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Payments still go through after a return.
	rec = f.do(t, http.MethodPut, "/orders/"+id, map[string]any{
		"additional_payment": 367,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 0.0, decodeBody(t, rec)["balance"], 0.001)
}

func TestHistoryView(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createStandardOrder(t)

	rec := f.do(t, http.MethodGet, "/orders?view=history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list, "open orders are not history")

	f.clk.Set(time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC))
	rec = f.do(t, http.MethodPost, fmt.Sprintf("/orders/%s/return", id), map[string]any{
		"lines": []map[string]any{
			{"equipment_id": f.speakerID, "good_quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPut, "/orders/"+id, map[string]any{"additional_payment": 367})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/orders?view=history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])
}

func TestInvoiceEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createStandardOrder(t)

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/orders/%s/invoice", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	orderPart, ok := body["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id, orderPart["id"])

	customerPart, ok := body["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Desert Events LLC", customerPart["name"])

	companyPart, ok := body["company"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "$", companyPart["currency"])
}

func TestDeleteOrderEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createStandardOrder(t)

	rec := f.do(t, http.MethodDelete, "/orders/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/orders/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func jsonString(body map[string]any, key string) *string {
	if v, ok := body[key].(string); ok {
		return &v
	}
	return nil
}
