package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	catalogerrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/service"
	"github.com/stretchr/testify/assert"
)

var (
	linkProductID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	linkStoreID   = uuid.MustParse("123e4567-e89b-12d3-a456-426614174100")
	linkStore     = service.StoreSummaryDto{ID: linkStoreID, Name: "Central", City: "MED", Address: "Main St"}
	linkProduct   = &service.ProductDto{
		ID: linkProductID, Name: "Widget", Price: 100, Type: service.ProductTypePerishable,
		Stores: []service.StoreSummaryDto{linkStore},
	}
)

func Test_ProductStoreAPI_AddStoreToProduct(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductStoreService
		storeID      string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - store added",
			mockService:  mockProductStoreService{product: linkProduct},
			storeID:      linkStoreID.String(),
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, linkProduct),
		},
		{
			name:         "Error - store does not exist",
			mockService:  mockProductStoreService{error: fmt.Errorf("failed to fetch store by ID %s: %w", linkStoreID, catalogerrors.ErrStoreNotFound)},
			storeID:      linkStoreID.String(),
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "store does not exist"}),
		},
		{
			name:         "Error - product does not exist",
			mockService:  mockProductStoreService{error: catalogerrors.ErrProductNotFound},
			storeID:      linkStoreID.String(),
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "product does not exist"}),
		},
		{
			name:         "Error - invalid store id",
			storeID:      "not-a-uuid",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: not-a-uuid"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&mockProductService{}, &mockStoreService{}, &tc.mockService)
			url := fmt.Sprintf("/api/v1/products/%s/stores/%s", linkProductID, tc.storeID)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, url, nil))

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			if tc.expectedCode == http.StatusOK {
				assert.Equal(t, linkProductID, tc.mockService.gotProductID)
				assert.Equal(t, linkStoreID, tc.mockService.gotStoreID)
			}
		})
	}
}

func Test_ProductStoreAPI_FindStoreByProductIDStoreID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductStoreService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - associated store",
			mockService:  mockProductStoreService{store: &linkStore},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, linkStore),
		},
		{
			name:         "Error - store not associated",
			mockService:  mockProductStoreService{error: catalogerrors.ErrStoreNotAssociated},
			expectedCode: http.StatusPreconditionFailed,
			expectedBody: toJSON(t, ErrorResponse{Error: "store is not associated to the product"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductStoreService{error: errors.New("timeout")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: fmt.Sprintf("Failed to retrieve store %s of product %s", linkStoreID, linkProductID)}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&mockProductService{}, &mockStoreService{}, &tc.mockService)
			url := fmt.Sprintf("/api/v1/products/%s/stores/%s", linkProductID, linkStoreID)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_ProductStoreAPI_FindStoresByProductID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductStoreService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - no stores encodes as empty list",
			mockService:  mockProductStoreService{stores: []service.StoreSummaryDto{}},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Success - stores listed",
			mockService:  mockProductStoreService{stores: []service.StoreSummaryDto{linkStore}},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, []service.StoreSummaryDto{linkStore}),
		},
		{
			name:         "Error - product does not exist",
			mockService:  mockProductStoreService{error: catalogerrors.ErrProductNotFound},
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "product does not exist"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&mockProductService{}, &mockStoreService{}, &tc.mockService)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products/"+linkProductID.String()+"/stores", nil))

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_ProductStoreAPI_UpdateStoresProduct(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductStoreService
		body         string
		expectedCode int
		expectedBody string
		expectedRefs []service.StoreRefDto
	}{
		{
			name:         "Success - stores replaced",
			mockService:  mockProductStoreService{product: linkProduct},
			body:         `[{"id":"` + linkStoreID.String() + `"}]`,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, linkProduct),
			expectedRefs: []service.StoreRefDto{{ID: linkStoreID}},
		},
		{
			name:         "Error - missing id",
			body:         `[{"id":"` + linkStoreID.String() + `"},{}]`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"[1].ID": "failed on rule: required"}}),
		},
		{
			name:         "Error - malformed id",
			body:         `[{"id":"abc"}]`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid request body"}),
		},
		{
			name:         "Error - not a list",
			body:         `null`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid request body"}),
		},
		{
			name:         "Error - store does not exist",
			mockService:  mockProductStoreService{error: catalogerrors.ErrStoreNotFound},
			body:         `[{"id":"` + linkStoreID.String() + `"}]`,
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "store does not exist"}),
			expectedRefs: []service.StoreRefDto{{ID: linkStoreID}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&mockProductService{}, &mockStoreService{}, &tc.mockService)
			url := "/api/v1/products/" + linkProductID.String() + "/stores"
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, url, strings.NewReader(tc.body)))

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			assert.Equal(t, tc.expectedRefs, tc.mockService.gotRefs)
		})
	}
}

func Test_ProductStoreAPI_DeleteStoreFromProduct(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductStoreService
		expectedCode int
		expectedBody string
	}{
		{name: "Success - store removed", expectedCode: http.StatusNoContent},
		{
			name:         "Error - store not associated",
			mockService:  mockProductStoreService{error: catalogerrors.ErrStoreNotAssociated},
			expectedCode: http.StatusPreconditionFailed,
			expectedBody: toJSON(t, ErrorResponse{Error: "store is not associated to the product"}),
		},
		{
			name:         "Error - store does not exist",
			mockService:  mockProductStoreService{error: catalogerrors.ErrStoreNotFound},
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "store does not exist"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(&mockProductService{}, &mockStoreService{}, &tc.mockService)
			url := fmt.Sprintf("/api/v1/products/%s/stores/%s", linkProductID, linkStoreID)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, url, nil))

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
