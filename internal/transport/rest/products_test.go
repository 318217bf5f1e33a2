package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	catalogerrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/service"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(products service.ProductService, stores service.StoreService, links service.ProductStoreService) *chi.Mux {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(products, stores, links, logger).RegisterRoutes(r)
	return r
}

func Test_ProductAPI_FindByID(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	product := &service.ProductDto{ID: mockID, Name: "Widget", Price: 100, Type: service.ProductTypePerishable, Stores: []service.StoreSummaryDto{}}

	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			mockService:  mockProductService{product: product},
			productID:    mockID.String(),
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, product),
		},
		{
			name:         "Error - invalid id",
			mockService:  mockProductService{},
			productID:    "123-invalid-id",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: 123-invalid-id"}),
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{error: fmt.Errorf("failed to fetch product by ID %s: %w", mockID, catalogerrors.ErrProductNotFound)},
			productID:    mockID.String(),
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "product does not exist"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("connection reset")},
			productID:    mockID.String(),
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to retrieve product with ID " + mockID.String()}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&tc.mockService, &mockStoreService{}, &mockProductStoreService{})
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_FindAll(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	products := []service.ProductDto{{ID: mockID, Name: "Widget", Price: 100, Type: service.ProductTypePerishable, Stores: []service.StoreSummaryDto{}}}

	// given
	router := newTestRouter(&mockProductService{products: products}, &mockStoreService{}, &mockProductStoreService{})
	rr := httptest.NewRecorder()

	// when
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, toJSON(t, products), rr.Body.String())
}

func Test_ProductAPI_Create(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	created := &service.ProductDto{ID: mockID, Name: "Widget", Price: 100, Type: service.ProductTypePerishable, Stores: []service.StoreSummaryDto{}}
	free := &service.ProductDto{ID: mockID, Name: "Sample", Price: 0, Type: service.ProductTypePerishable, Stores: []service.StoreSummaryDto{}}

	testCases := []struct {
		name         string
		mockService  mockProductService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product created",
			mockService:  mockProductService{product: created},
			body:         `{"name":"Widget","price":100,"type":"Perishable"}`,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, created),
		},
		{
			name:         "Success - zero price",
			mockService:  mockProductService{product: free},
			body:         `{"name":"Sample","price":0,"type":"Perishable"}`,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, free),
		},
		{
			name:         "Error - missing price",
			body:         `{"name":"Widget","type":"Perishable"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"Price": "failed on rule: required"}}),
		},
		{
			name:         "Error - negative price",
			body:         `{"name":"Widget","price":-1,"type":"Perishable"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"Price": "failed on rule: min"}}),
		},
		{
			name:         "Error - malformed json",
			body:         `{"name":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid request body"}),
		},
		{
			name:         "Error - missing fields",
			body:         `{"price":100}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{
				"Name": "failed on rule: required",
				"Type": "failed on rule: required",
			}}),
		},
		{
			name:         "Error - name too long",
			body:         `{"name":"` + strings.Repeat("x", 101) + `","price":100,"type":"Perishable"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"Name": "failed on rule: max"}}),
		},
		{
			name:         "Error - unknown product type",
			mockService:  mockProductService{error: fmt.Errorf("%w: got %q", catalogerrors.ErrInvalidProductType, "Unknown")},
			body:         `{"name":"Widget","price":100,"type":"Unknown"}`,
			expectedCode: http.StatusPreconditionFailed,
			expectedBody: toJSON(t, ErrorResponse{Error: catalogerrors.ErrInvalidProductType.Error()}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&tc.mockService, &mockStoreService{}, &mockProductStoreService{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_Update(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	updated := &service.ProductDto{ID: mockID, Name: "Gadget", Price: 250, Type: service.ProductTypeNonPerishable, Stores: []service.StoreSummaryDto{}}
	free := &service.ProductDto{ID: mockID, Name: "Gadget", Price: 0, Type: service.ProductTypeNonPerishable, Stores: []service.StoreSummaryDto{}}

	testCases := []struct {
		name         string
		mockService  mockProductService
		body         string
		expectedDto  service.ProductCreateDto
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product updated",
			mockService:  mockProductService{product: updated},
			body:         `{"name":"Gadget","price":250,"type":"Non-perishable"}`,
			expectedDto:  service.ProductCreateDto{Name: "Gadget", Price: price(250), Type: "Non-perishable"},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, updated),
		},
		{
			name:         "Success - zero price",
			mockService:  mockProductService{product: free},
			body:         `{"name":"Gadget","price":0,"type":"Non-perishable"}`,
			expectedDto:  service.ProductCreateDto{Name: "Gadget", Price: price(0), Type: "Non-perishable"},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, free),
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{error: catalogerrors.ErrProductNotFound},
			body:         `{"name":"Gadget","price":250,"type":"Non-perishable"}`,
			expectedDto:  service.ProductCreateDto{Name: "Gadget", Price: price(250), Type: "Non-perishable"},
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "product does not exist"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&tc.mockService, &mockStoreService{}, &mockProductStoreService{})
			req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+mockID.String(), strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			assert.Equal(t, tc.expectedDto, tc.mockService.gotDto)
		})
	}
}

func Test_ProductAPI_Delete(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")

	testCases := []struct {
		name         string
		mockService  mockProductService
		expectedCode int
	}{
		{name: "Success - product deleted", expectedCode: http.StatusNoContent},
		{name: "Error - product not found", mockService: mockProductService{error: catalogerrors.ErrProductNotFound}, expectedCode: http.StatusNotFound},
		{name: "Error - service error", mockService: mockProductService{error: errors.New("boom")}, expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&tc.mockService, &mockStoreService{}, &mockProductStoreService{})
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+mockID.String(), nil)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func Test_HealthCheck(t *testing.T) {
	router := newTestRouter(&mockProductService{}, &mockStoreService{}, &mockProductStoreService{})
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func price(v int64) *int64 {
	return &v
}
