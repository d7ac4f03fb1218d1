package medicine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medcare/medcare/internal/platform/auth"
	"github.com/medcare/medcare/internal/platform/validation"
)

func newTestHandler() (*Handler, *echo.Echo) {
	e := echo.New()
	e.Validator = validation.New()
	return NewHandler(newTestService()), e
}

func asUser(req *http.Request, userID string, roles ...string) *http.Request {
	return req.WithContext(auth.WithIdentity(req.Context(), userID, roles))
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Paracetamol","dosage":"500mg","time":"08:00"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), "u1")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var got Medicine
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Frequency != "Daily" || got.UserID != "u1" {
		t.Errorf("unexpected medicine: %+v", got)
	}
}

func TestHandler_Create_MissingDosage(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Paracetamol","time":"08:00"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), "u1")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "dosage is required" {
		t.Errorf("unexpected message %v", he.Message)
	}
}

func TestHandler_ListByUser(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), &Medicine{UserID: "u1", Name: "A", Dosage: "1", Time: "08:00"})
	h.svc.Create(context.Background(), &Medicine{UserID: "u1", Name: "B", Dosage: "1", Time: "09:00"})

	req := asUser(httptest.NewRequest(http.MethodGet, "/", nil), "u1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []Medicine
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 2 {
		t.Errorf("expected 2 medicines, got %d", len(items))
	}
}

func TestHandler_Delete_Admin(t *testing.T) {
	h, e := newTestHandler()
	m := &Medicine{UserID: "u1", Name: "A", Dosage: "1", Time: "08:00"}
	h.svc.Create(context.Background(), m)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/", nil), "root", "admin")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, e := newTestHandler()
	m := &Medicine{UserID: "u1", Name: "A", Dosage: "1", Time: "08:00"}
	h.svc.Create(context.Background(), m)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/", nil), "u2")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
