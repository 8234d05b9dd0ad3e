//go:build unit || e2e

package apiclient_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type fakeBackend struct {
	mu      sync.Mutex
	hits    map[string]int
	headers map[string]http.Header
	respond func(w http.ResponseWriter, r *http.Request)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{hits: map[string]int{}, headers: map[string]http.Header{}}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.hits[key]++
	f.headers[key] = r.Header.Clone()
	respond := f.respond
	f.mu.Unlock()

	if respond != nil {
		respond(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"success","message":"ok","path":"` + r.URL.Path + `"}`))
}

func (f *fakeBackend) Respond(fn func(w http.ResponseWriter, r *http.Request)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.respond = fn
}

func (f *fakeBackend) Hits(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[method+" "+path]
}

func (f *fakeBackend) Header(method, path string) http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.headers[method+" "+path]
}

// newCountingServer serves backend until the test ends and returns its URL.
func newCountingServer(t *testing.T, backend *fakeBackend) string {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return server.URL
}

type payload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

