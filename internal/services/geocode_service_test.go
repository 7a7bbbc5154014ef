package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/harshekka/smart-trip-planner/internal/providers"
)

// fakeGeocoder serves canned Nominatim responses keyed by query text and
// records the order queries arrive in.
type fakeGeocoder struct {
	mu      sync.Mutex
	queries []string
	answers map[string]string // query -> JSON array body
	server  *httptest.Server
}

func newFakeGeocoder(answers map[string]string) *fakeGeocoder {
	f := &fakeGeocoder{answers: answers}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		f.mu.Lock()
		f.queries = append(f.queries, q)
		f.mu.Unlock()

		body, ok := f.answers[q]
		if !ok {
			body = "[]"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	return f
}

func (f *fakeGeocoder) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func TestRelaxedQueries(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected []string
	}{
		{
			name:     "Single part",
			address:  "Mumbai",
			expected: []string{"Mumbai"},
		},
		{
			name:    "Two parts",
			address: "Gateway of India, Mumbai",
			expected: []string{
				"Gateway of India, Mumbai",
				"Gateway of India, Mumbai",
			},
		},
		{
			name:    "Four parts",
			address: "Flat 2, MG Road, Andheri, Mumbai",
			expected: []string{
				"Flat 2, MG Road, Andheri, Mumbai",
				"Flat 2, Andheri, Mumbai",
				"Flat 2, MG Road",
			},
		},
		{
			name:    "Whitespace around commas is trimmed",
			address: " A ,  B , C ",
			expected: []string{
				" A ,  B , C ",
				"A, B, C",
				"A, B",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relaxedQueries(tt.address)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("relaxedQueries(%q) = %v, expected %v", tt.address, got, tt.expected)
			}
		})
	}
}

func TestGeocodeService_ResolveFirstAttempt(t *testing.T) {
	fake := newFakeGeocoder(map[string]string{
		"Mumbai": `[{"lat":"19.0760","lon":"72.8777","display_name":"Mumbai"}]`,
	})
	defer fake.server.Close()

	svc := NewGeocodeService(providers.NewNominatimClient(fake.server.URL))
	coord, err := svc.Resolve(context.Background(), "Mumbai")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if coord.Latitude != 19.0760 || coord.Longitude != 72.8777 {
		t.Errorf("Resolve() = %+v, expected Mumbai coordinates", coord)
	}
	if seen := fake.seen(); len(seen) != 1 {
		t.Errorf("Expected a single lookup, got %v", seen)
	}
}

func TestGeocodeService_ResolveRelaxes(t *testing.T) {
	// Only the most relaxed form resolves.
	fake := newFakeGeocoder(map[string]string{
		"Flat 2, MG Road": `[{"lat":"19.1","lon":"72.9","display_name":"MG Road"}]`,
	})
	defer fake.server.Close()

	svc := NewGeocodeService(providers.NewNominatimClient(fake.server.URL))
	coord, err := svc.Resolve(context.Background(), "Flat 2, MG Road, Andheri, Mumbai")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if coord.Latitude != 19.1 {
		t.Errorf("Resolve() = %+v, expected the relaxed match", coord)
	}

	expected := []string{
		"Flat 2, MG Road, Andheri, Mumbai",
		"Flat 2, Andheri, Mumbai",
		"Flat 2, MG Road",
	}
	if got := fake.seen(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Lookup order = %v, expected %v", got, expected)
	}
}

func TestGeocodeService_ResolveNotFound(t *testing.T) {
	fake := newFakeGeocoder(nil)
	defer fake.server.Close()

	svc := NewGeocodeService(providers.NewNominatimClient(fake.server.URL))
	_, err := svc.Resolve(context.Background(), "Nowhere, Atlantis")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Errorf("Resolve() error = %v, expected ErrAddressNotFound", err)
	}
}

func TestGeocodeService_MalformedCoordinatesSkipped(t *testing.T) {
	fake := newFakeGeocoder(map[string]string{
		"Mumbai, India": `[{"lat":"not-a-number","lon":"72.9","display_name":"bad"}]`,
	})
	defer fake.server.Close()

	svc := NewGeocodeService(providers.NewNominatimClient(fake.server.URL))
	_, err := svc.Resolve(context.Background(), "Mumbai, India")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Errorf("Resolve() error = %v, expected ErrAddressNotFound after discarding bad match", err)
	}
}

func TestUnresolvedToken(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "Plain name", address: "Mumbai", expected: "Mumbai"},
		{name: "First segment", address: "Gateway of India, Mumbai, India", expected: "Gateway of India"},
		{name: "Trims whitespace", address: "  Agra , UP", expected: "Agra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnresolvedToken(tt.address); got != tt.expected {
				t.Errorf("UnresolvedToken(%q) = %q, expected %q", tt.address, got, tt.expected)
			}
		})
	}
}
