package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"imobdesk/internal/client"
	"imobdesk/internal/property"
	"imobdesk/internal/schedule"
	"imobdesk/internal/seed"
	"imobdesk/internal/store/memory"
	"imobdesk/internal/visit"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(memory.New(), schedule.Options{})
}

func seededServer(t *testing.T) *Server {
	t.Helper()

	st := memory.New()
	if err := seed.Load(context.Background(), st); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	return NewServer(st, schedule.Options{})
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want status ok", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/metrics", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestListPropertiesEmpty(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/api/properties", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var props []property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &props); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(props) != 0 {
		t.Errorf("got %d properties, want 0", len(props))
	}
}

func TestListPropertiesWithFilters(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "GET", "/api/properties?status=available&min_price=400000&max_price=800000", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var props []property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &props); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1: %s", len(props), w.Body.String())
	}
	if props[0].Title != "Apartamento Moderno no Centro" {
		t.Errorf("title = %q", props[0].Title)
	}
}

func TestAddProperty(t *testing.T) {
	srv := testServer(t)

	body := `{"title":"Loft","address":"Rua A, 1","city":"São Paulo","price":500000,"type":"apartment","status":"available"}`
	w := doJSON(t, srv, "POST", "/api/properties", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var p property.Property
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if p.ID == "" {
		t.Error("expected generated id")
	}

	w = doJSON(t, srv, "GET", "/api/properties/"+p.ID, "")
	if w.Code != http.StatusOK {
		t.Errorf("get status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAddPropertyInvalid(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "POST", "/api/properties", `{"title":"Loft","price":-5,"type":"apartment","status":"available"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = doJSON(t, srv, "POST", "/api/properties", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "GET", "/api/properties/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteProperty(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "DELETE", "/api/properties/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}

	w = doJSON(t, srv, "GET", "/api/properties/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestSearchClients(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "GET", "/api/clients?search=SMITH", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var clients []client.Client
	if err := json.Unmarshal(w.Body.Bytes(), &clients); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "John Smith" {
		t.Errorf("search SMITH = %v", clients)
	}
}

func TestAddClientForcesCountersToZero(t *testing.T) {
	srv := testServer(t)

	body := `{"name":"Ana Pereira","email":"ana@example.com","scheduledVisits":50,"viewedProperties":50}`
	w := doJSON(t, srv, "POST", "/api/clients", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var c client.Client
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if c.ScheduledVisits != 0 || c.ViewedProperties != 0 {
		t.Errorf("counters = %d/%d, want 0/0", c.ScheduledVisits, c.ViewedProperties)
	}
}

func TestUpdateClientIgnoresCounterEdit(t *testing.T) {
	srv := seededServer(t)

	// Seeded client 1 has scheduledVisits 4; an edit must not change it.
	body := `{"name":"John Q. Smith","email":"john.smith@example.com","scheduledVisits":0}`
	w := doJSON(t, srv, "PUT", "/api/clients/1", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var c client.Client
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if c.Name != "John Q. Smith" {
		t.Errorf("name = %q, want updated name", c.Name)
	}
	if c.ScheduledVisits != 4 {
		t.Errorf("scheduledVisits = %d, want 4 (stored value)", c.ScheduledVisits)
	}
}

func TestRecordClientView(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "POST", "/api/clients/2/view", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var c client.Client
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if c.ViewedProperties != 9 {
		t.Errorf("viewedProperties = %d, want 9", c.ViewedProperties)
	}
}

func TestScheduleVisit(t *testing.T) {
	srv := seededServer(t)

	body := `{"clientId":"1","agentId":"1","propertyId":"1","date":"2025-05-01","time":"10:30","notes":"chaves na portaria"}`
	w := doJSON(t, srv, "POST", "/api/visits", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var v visit.Visit
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if v.Status != visit.StatusScheduled {
		t.Errorf("status = %q, want scheduled", v.Status)
	}
	if v.ClientName != "John Smith" {
		t.Errorf("clientName = %q, want snapshot", v.ClientName)
	}

	// The seeded client started at 4 scheduled visits.
	w = doJSON(t, srv, "GET", "/api/clients/1", "")
	var c client.Client
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("decoding client: %v", err)
	}
	if c.ScheduledVisits != 5 {
		t.Errorf("scheduledVisits = %d, want 5", c.ScheduledVisits)
	}
}

func TestScheduleVisitUnknownClientStillCreated(t *testing.T) {
	srv := seededServer(t)

	body := `{"clientId":"ghost","agentId":"1","propertyId":"1","date":"2025-05-01","time":"10:30"}`
	w := doJSON(t, srv, "POST", "/api/visits", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	// No client counter changed.
	w = doJSON(t, srv, "GET", "/api/clients/1", "")
	var c client.Client
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("decoding client: %v", err)
	}
	if c.ScheduledVisits != 4 {
		t.Errorf("scheduledVisits = %d, want 4 (unchanged)", c.ScheduledVisits)
	}
}

func TestScheduleVisitUnknownProperty(t *testing.T) {
	srv := seededServer(t)

	body := `{"clientId":"1","agentId":"1","propertyId":"ghost","date":"2025-05-01","time":"10:30"}`
	w := doJSON(t, srv, "POST", "/api/visits", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestFilterVisitsByDate(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "GET", "/api/visits?date=2025-04-07", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var visits []visit.Visit
	if err := json.Unmarshal(w.Body.Bytes(), &visits); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(visits) != 1 || visits[0].ID != "1" {
		t.Errorf("date filter = %v", visits)
	}
}

func TestSetVisitStatus(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "POST", "/api/visits/5/status", `{"status":"completed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var v visit.Visit
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	// Visit 5 was canceled; canceled -> completed is allowed.
	if v.Status != visit.StatusCompleted {
		t.Errorf("status = %q, want completed", v.Status)
	}

	w = doJSON(t, srv, "POST", "/api/visits/5/status", `{"status":"postponed"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListContractsByStatus(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "GET", "/api/contracts?status=active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Apartamento Moderno no Centro") {
		t.Error("expected the active sale contract in the response")
	}
	if strings.Contains(w.Body.String(), `"expired"`) {
		t.Error("expired contracts should be filtered out")
	}
}

func TestStats(t *testing.T) {
	srv := seededServer(t)

	w := doJSON(t, srv, "GET", "/api/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var summary struct {
		Properties int `json:"properties"`
		Clients    int `json:"clients"`
		Visits     int `json:"visits"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if summary.Properties != 6 || summary.Clients != 6 || summary.Visits != 5 {
		t.Errorf("summary = %+v, want 6/6/5", summary)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := testServer(t)

	w := doJSON(t, srv, "PATCH", "/api/properties", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
