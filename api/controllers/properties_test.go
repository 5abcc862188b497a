package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	propertysvc "github.com/malith-nethsiri/valuerpro-backend/internal/properties"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

type stubPropertyService struct {
	createResp *propertysvc.PropertyDTO
	createErr  error
	getResp    *propertysvc.PropertyDTO
	getErr     error
	updateResp *propertysvc.PropertyDTO
	updateErr  error
	deleteErr  error
}

func (s stubPropertyService) Create(_ context.Context, _ uuid.UUID, _ propertysvc.CreatePropertyInput) (*propertysvc.PropertyDTO, error) {
	return s.createResp, s.createErr
}

func (s stubPropertyService) GetByReport(_ context.Context, _, _ uuid.UUID) (*propertysvc.PropertyDTO, error) {
	return s.getResp, s.getErr
}

func (s stubPropertyService) Update(_ context.Context, _, _ uuid.UUID, _ propertysvc.UpdatePropertyInput) (*propertysvc.PropertyDTO, error) {
	return s.updateResp, s.updateErr
}

func (s stubPropertyService) Delete(_ context.Context, _, _ uuid.UUID) error {
	return s.deleteErr
}

func TestCreatePropertySuccess(t *testing.T) {
	reportID := uuid.New()
	dto := &propertysvc.PropertyDTO{
		ID:          uuid.New(),
		ReportID:    reportID,
		DeedNumbers: []string{},
	}
	handler := CreateProperty(stubPropertyService{createResp: dto}, nil)

	payload := []byte(`{"report_id":"` + reportID.String() + `","address":"12 Temple Rd"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = authed(req, uuid.New())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var envelope struct {
		Data propertysvc.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ReportID != reportID {
		t.Fatalf("unexpected report id %s", envelope.Data.ReportID)
	}
}

func TestCreatePropertyForeignReport(t *testing.T) {
	handler := CreateProperty(stubPropertyService{createErr: pkgerrors.New(pkgerrors.CodeNotFound, "Report not found")}, nil)

	payload := []byte(`{"report_id":"` + uuid.NewString() + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = authed(req, uuid.New())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestGetPropertyNullWhenAbsent(t *testing.T) {
	handler := GetProperty(stubPropertyService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?report_id="+uuid.NewString(), nil)
	req = authed(req, uuid.New())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data *propertysvc.PropertyDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data != nil {
		t.Fatalf("expected null data got %+v", envelope.Data)
	}
}

func TestGetPropertyMissingReportID(t *testing.T) {
	handler := GetProperty(stubPropertyService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req = authed(req, uuid.New())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUpdatePropertyNotFound(t *testing.T) {
	handler := UpdateProperty(stubPropertyService{updateErr: pkgerrors.New(pkgerrors.CodeNotFound, "Property not found")}, nil)

	propertyID := uuid.NewString()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/"+propertyID, bytes.NewReader([]byte(`{"village":"Kandy"}`)))
	req.Header.Set("Content-Type", "application/json")
	req = authed(req, uuid.New())
	req = withRouteParam(req, "propertyID", propertyID)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestDeletePropertySuccess(t *testing.T) {
	handler := DeleteProperty(stubPropertyService{}, nil)

	propertyID := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/properties/"+propertyID, nil)
	req = authed(req, uuid.New())
	req = withRouteParam(req, "propertyID", propertyID)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data["message"] != "Property deleted successfully" {
		t.Fatalf("unexpected message %q", envelope.Data["message"])
	}
}
