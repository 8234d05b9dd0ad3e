//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"market-admin/internal/domain/session"
	"market-admin/internal/usecase/readmodel"
	"market-admin/tests/common/authtest"
)

const adminBase = "/api/v1/admin"

const (
	AdminEmail       = "ada@example.com"
	NewcomerEmail    = "new@example.com"
	AdminPassword    = "secret-password"
	NewcomerPassword = "first-password"
)

// FakeAdminAPI stands in for the remote admin API. It keeps booking state so status
// changes made through the dashboard can be observed, and counts every request it serves.
type FakeAdminAPI struct {
	server *httptest.Server
	tokens map[string]string

	mu       sync.Mutex
	bookings map[int64]readmodel.Booking
	rejected map[int64]string
	hits     map[string]int
	auth     map[string][]string
}

func NewFakeAdminAPI(t *testing.T) *FakeAdminAPI {
	f := &FakeAdminAPI{
		tokens: map[string]string{
			AdminEmail:    authtest.Token(t, time.Now().Add(2*time.Hour)),
			NewcomerEmail: authtest.Token(t, time.Now().Add(2*time.Hour)),
		},
	}
	f.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+adminBase+"/login", f.login)
	mux.HandleFunc("POST "+adminBase+"/change-password", f.changePassword)
	mux.HandleFunc("GET "+adminBase+"/bookings", f.listBookings)
	mux.HandleFunc("GET "+adminBase+"/bookings/{id}", f.getBooking)
	mux.HandleFunc("PUT "+adminBase+"/booking/{id}/status", f.changeStatus("status"))
	mux.HandleFunc("PUT "+adminBase+"/booking/{id}/payment-status", f.changeStatus("payment_status"))

	f.server = httptest.NewServer(f.record(mux))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeAdminAPI) URL() string {
	return f.server.URL
}

// Token is the token the fake issues at login for email.
func (f *FakeAdminAPI) Token(email string) string {
	return f.tokens[email]
}

func (f *FakeAdminAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = map[int64]readmodel.Booking{
		7: seedBooking(7, "processing", "pending"),
		8: seedBooking(8, "processing", "pending"),
		9: seedBooking(9, "ongoing", "completed"),
	}
	f.rejected = map[int64]string{}
	f.hits = map[string]int{}
	f.auth = map[string][]string{}
}

// Reject makes status changes of booking id answer with a non-success envelope.
func (f *FakeAdminAPI) Reject(id int64, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejected[id] = message
}

func (f *FakeAdminAPI) Booking(id int64) readmodel.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id]
}

// Hits counts requests by "METHOD path" relative to the admin base.
func (f *FakeAdminAPI) Hits(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[method+" "+path]
}

// Authorizations lists the Authorization headers received on "METHOD path".
func (f *FakeAdminAPI) Authorizations(method, path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.auth[method+" "+path]...)
}

func (f *FakeAdminAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, adminBase)
		f.mu.Lock()
		f.hits[key]++
		f.auth[key] = append(f.auth[key], r.Header.Get("Authorization"))
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAdminAPI) login(w http.ResponseWriter, r *http.Request) {
	email, password := r.FormValue("email"), r.FormValue("password")

	var profile session.Profile
	switch {
	case email == AdminEmail && password == AdminPassword:
		changed := "2025-01-01T00:00:00Z"
		profile = session.Profile{ID: "1", Name: "Ada Admin", Email: email, Role: "admin", PasswordChangedAt: &changed}
	case email == NewcomerEmail && password == NewcomerPassword:
		profile = session.Profile{ID: "2", Name: "New Admin", Email: email, Role: "admin"}
	default:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"status": "error", "message": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "token": f.tokens[email], "data": profile})
}

func (f *FakeAdminAPI) changePassword(w http.ResponseWriter, r *http.Request) {
	var change readmodel.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"status": "error", "message": err.Error()})
		return
	}
	if change.CurrentPassword != NewcomerPassword && change.CurrentPassword != AdminPassword {
		writeJSON(w, http.StatusOK, map[string]string{"status": "error", "message": "Current password is incorrect"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Password changed successfully"})
}

func (f *FakeAdminAPI) listBookings(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	page := readmodel.BookingPage{Envelope: readmodel.Envelope{Status: "success"}, Total: len(f.bookings)}
	for _, id := range []int64{7, 8, 9} {
		page.Data = append(page.Data, f.bookings[id])
	}
	writeJSON(w, http.StatusOK, page)
}

func (f *FakeAdminAPI) getBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	f.mu.Lock()
	b, ok := f.bookings[id]
	f.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"status": "error", "message": "Booking not found"})
		return
	}
	var detail readmodel.BookingDetail
	detail.Status = "success"
	detail.Data.Booking = b
	detail.Data.Stats = &readmodel.BookingStats{TotalBookings: 3}
	writeJSON(w, http.StatusOK, detail)
}

func (f *FakeAdminAPI) changeStatus(field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"status": "error", "message": err.Error()})
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		b, ok := f.bookings[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"status": "error", "message": "Booking not found"})
			return
		}
		if msg, rejected := f.rejected[id]; rejected {
			writeJSON(w, http.StatusOK, map[string]string{"status": "error", "message": msg})
			return
		}
		if field == "status" {
			b.DeliveryStatus = body[field]
		} else {
			b.PaymentStatus = body[field]
		}
		f.bookings[id] = b
		writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": fmt.Sprintf("Booking %d updated", id)})
	}
}

func seedBooking(id int64, delivery, payment string) readmodel.Booking {
	return readmodel.Booking{
		ID:             id,
		Amount:         "1500.00",
		DeliveryStatus: delivery,
		PaymentStatus:  payment,
		StartDate:      "2025-05-01",
		EndDate:        "2025-05-03",
		CreatedAt:      "2025-04-28T09:00:00Z",
		Service:        &readmodel.ServiceRef{Title: "Catering", Image: "https://cdn.example.com/catering.png"},
		Customer:       &readmodel.UserRef{ID: 40 + id, Name: "Customer " + strconv.FormatInt(id, 10), Email: "customer@example.com"},
		Vendor:         &readmodel.UserRef{ID: 90, Name: "Vendor", Email: "vendor@example.com"},
		Shop:           &readmodel.ShopRef{ID: 5, Name: "Mama's Kitchen"},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
