package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customer-management/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockService lets each test script the service layer.
type mockService struct {
	listFn   func(search, sortField, sortOrder string, page, limit int) ([]models.Customer, error)
	getFn    func(id int64) (*models.CustomerDetail, error)
	createFn func(req models.CreateCustomerRequest) (int64, error)
	updateFn func(id int64, req models.UpdateCustomerRequest) (int64, error)
	deleteFn func(id int64) (int64, error)
}

func (m *mockService) List(_ context.Context, search, sortField, sortOrder string, page, limit int) ([]models.Customer, error) {
	return m.listFn(search, sortField, sortOrder, page, limit)
}

func (m *mockService) Get(_ context.Context, id int64) (*models.CustomerDetail, error) {
	return m.getFn(id)
}

func (m *mockService) Create(_ context.Context, req models.CreateCustomerRequest) (int64, error) {
	return m.createFn(req)
}

func (m *mockService) Update(_ context.Context, id int64, req models.UpdateCustomerRequest) (int64, error) {
	return m.updateFn(id, req)
}

func (m *mockService) Delete(_ context.Context, id int64) (int64, error) {
	return m.deleteFn(id)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListReturnsDataEnvelope(t *testing.T) {
	svc := &mockService{
		listFn: func(search, sortField, sortOrder string, page, limit int) ([]models.Customer, error) {
			assert.Equal(t, "rao", search)
			assert.Equal(t, "last_name", sortField)
			assert.Equal(t, "desc", sortOrder)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return []models.Customer{
				{ID: 1, FirstName: "Asha", LastName: "Rao", PhoneNumber: "111", AddressesCount: 2},
			}, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	c, rec := newTestContext(http.MethodGet, "/api/customers?search=rao&sortField=last_name&sortOrder=desc&page=2&limit=5", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(2), resp.Data[0].AddressesCount)
}

func TestListDefaultsPageAndLimit(t *testing.T) {
	var gotPage, gotLimit int
	svc := &mockService{
		listFn: func(_, _, _ string, page, limit int) ([]models.Customer, error) {
			gotPage, gotLimit = page, limit
			return []models.Customer{}, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	c, rec := newTestContext(http.MethodGet, "/api/customers?page=abc&limit=", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 10, gotLimit)
}

func TestGetNotFound(t *testing.T) {
	svc := &mockService{
		getFn: func(id int64) (*models.CustomerDetail, error) {
			return nil, models.ErrNotFound
		},
	}
	h := NewHandler(svc, zap.NewNop())

	c, rec := newTestContext(http.MethodGet, "/api/customers/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer not found")
}

func TestGetInvalidID(t *testing.T) {
	h := NewHandler(&mockService{}, zap.NewNop())

	c, rec := newTestContext(http.MethodGet, "/api/customers/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetIncludesDerivedFields(t *testing.T) {
	svc := &mockService{
		getFn: func(id int64) (*models.CustomerDetail, error) {
			return &models.CustomerDetail{
				Customer:       models.Customer{ID: id, FirstName: "Ravi", AddressesCount: 1},
				OnlyOneAddress: true,
			}, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	c, rec := newTestContext(http.MethodGet, "/api/customers/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"success"`)
	assert.Contains(t, rec.Body.String(), `"addresses_count":1`)
	assert.Contains(t, rec.Body.String(), `"only_one_address":true`)
}

func TestCreateReturnsID(t *testing.T) {
	svc := &mockService{
		createFn: func(req models.CreateCustomerRequest) (int64, error) {
			assert.Equal(t, "Asha", req.FirstName)
			return 42, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	body := `{"first_name":"Asha","last_name":"Rao","phone_number":"9876500001"}`
	c, rec := newTestContext(http.MethodPost, "/api/customers", body)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), "Customer created")
}

func TestCreateMissingFieldRejected(t *testing.T) {
	called := false
	svc := &mockService{
		createFn: func(req models.CreateCustomerRequest) (int64, error) {
			called = true
			return 0, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	body := `{"first_name":"Asha","last_name":"Rao"}`
	c, rec := newTestContext(http.MethodPost, "/api/customers", body)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PhoneNumber")
	assert.False(t, called, "service must not be reached on validation failure")
}

func TestCreateDuplicatePhoneConflict(t *testing.T) {
	svc := &mockService{
		createFn: func(req models.CreateCustomerRequest) (int64, error) {
			return 0, models.ErrConflict
		},
	}
	h := NewHandler(svc, zap.NewNop())

	body := `{"first_name":"Asha","last_name":"Rao","phone_number":"9876500001"}`
	c, rec := newTestContext(http.MethodPost, "/api/customers", body)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already in use")
}

func TestUpdateReportsChanges(t *testing.T) {
	svc := &mockService{
		updateFn: func(id int64, req models.UpdateCustomerRequest) (int64, error) {
			assert.Equal(t, int64(7), id)
			return 1, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	body := `{"first_name":"Asha","last_name":"Rao","phone_number":"9876500001"}`
	c, rec := newTestContext(http.MethodPut, "/api/customers/7", body)
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"changes":1`)
}

func TestDeleteNotFound(t *testing.T) {
	svc := &mockService{
		deleteFn: func(id int64) (int64, error) {
			return 0, models.ErrNotFound
		},
	}
	h := NewHandler(svc, zap.NewNop())

	c, rec := newTestContext(http.MethodDelete, "/api/customers/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteReportsChanges(t *testing.T) {
	svc := &mockService{
		deleteFn: func(id int64) (int64, error) {
			return 1, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	c, rec := newTestContext(http.MethodDelete, "/api/customers/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer deleted")
}
