package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

type stubCustomerService struct {
	listFn   func(ctx context.Context) ([]*ports.CustomerDetail, error)
	getFn    func(ctx context.Context, id string) (*ports.CustomerDetail, error)
	createFn func(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error)
	updateFn func(ctx context.Context, id string, fields ports.UpdateCustomerFields) (*domain.Customer, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCustomerService) List(ctx context.Context) ([]*ports.CustomerDetail, error) {
	return s.listFn(ctx)
}

func (s *stubCustomerService) Get(ctx context.Context, id string) (*ports.CustomerDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubCustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	return s.createFn(ctx, input)
}

func (s *stubCustomerService) Update(ctx context.Context, id string, fields ports.UpdateCustomerFields) (*domain.Customer, error) {
	return s.updateFn(ctx, id, fields)
}

func (s *stubCustomerService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCustomerService{
		createFn: func(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
			if input.Name != "Acme" || input.AssignedRep != "user-2" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Customer{ID: "cust-1", Name: input.Name, Email: input.Email, AssignedRep: input.AssignedRep}, nil
		},
	}
	handler := NewCustomerHandler(stub)

	body := strings.NewReader(`{"name":"Acme","email":"acme@example.com","assigned_rep":"user-2"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/customers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "cust-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCustomerHandler_Create_InvalidAssignedRep(t *testing.T) {
	e := newTestEcho()
	stub := &stubCustomerService{
		createFn: func(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
			return nil, domain.ErrInvalidAssignedRep
		},
	}
	handler := NewCustomerHandler(stub)

	body := strings.NewReader(`{"name":"Acme","email":"acme@example.com","assigned_rep":"admin-user"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/customers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); !errors.Is(err, domain.ErrInvalidAssignedRep) {
		t.Fatalf("expected ErrInvalidAssignedRep passed through, got %v", err)
	}
}

func TestCustomerHandler_Create_MissingEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubCustomerService{
		createFn: func(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCustomerHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCustomerHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	var gotFields ports.UpdateCustomerFields
	stub := &stubCustomerService{
		updateFn: func(ctx context.Context, id string, fields ports.UpdateCustomerFields) (*domain.Customer, error) {
			gotFields = fields
			return &domain.Customer{ID: id, Name: "Acme", Phone: *fields.Phone}, nil
		},
	}
	handler := NewCustomerHandler(stub)

	body := strings.NewReader(`{"phone":"555-0100"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/customers/cust-1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cust-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFields.Phone == nil || *gotFields.Phone != "555-0100" {
		t.Fatalf("phone not forwarded: %+v", gotFields.Phone)
	}
	if gotFields.Name != nil || gotFields.Email != nil {
		t.Fatalf("absent fields should stay nil: %+v", gotFields)
	}
}

func TestCustomerHandler_Delete_NoContent(t *testing.T) {
	e := newTestEcho()
	stub := &stubCustomerService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "cust-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewCustomerHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/cust-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cust-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubCustomerService{
		getFn: func(ctx context.Context, id string) (*ports.CustomerDetail, error) {
			return nil, domain.ErrCustomerNotFound
		},
	}
	handler := NewCustomerHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/customers/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound passed through, got %v", err)
	}
}
