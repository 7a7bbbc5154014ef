package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/harshekka/smart-trip-planner/internal/api/handlers"
	"github.com/harshekka/smart-trip-planner/internal/api/middleware"
	"github.com/harshekka/smart-trip-planner/internal/config"
	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/providers"
	"github.com/harshekka/smart-trip-planner/internal/repository/memory"
	"github.com/harshekka/smart-trip-planner/internal/services"
)

// fakeProviders hosts stand-ins for every external API on one test server,
// multiplexed by path.
func fakeProviders(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "Bandra":
			fmt.Fprint(w, `[{"lat":"19.0596","lon":"72.8295","display_name":"Bandra"}]`)
		case "Andheri":
			fmt.Fprint(w, `[{"lat":"19.1136","lon":"72.8697","display_name":"Andheri"}]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	})
	mux.HandleFunc("/route/v1/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"code":"Ok",
			"routes":[{
				"duration":1500,
				"distance":9000,
				"geometry":{"coordinates":[[72.8295,19.0596],[72.85,19.08],[72.8697,19.1136]]}
			}]
		}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Everything else (AQI, weather, attractions) fails; those paths
		// degrade rather than break the search.
		w.WriteHeader(http.StatusInternalServerError)
	})

	return httptest.NewServer(mux)
}

func setupTestServer(t *testing.T) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := fakeProviders(t)

	cfg := config.NewDefaultConfig()

	nominatim := providers.NewNominatimClient(fake.URL)
	osrm := providers.NewOSRMClient(fake.URL)
	waqi := providers.NewWAQIClient(fake.URL)
	openaq := providers.NewOpenAQClient(fake.URL)
	meteo := providers.NewOpenMeteoClient(fake.URL)
	overpass := providers.NewOverpassClient(fake.URL)
	amadeus := providers.NewAmadeusClient(fake.URL, "", "")
	rail := providers.NewRailClient(fake.URL, "", "")

	resultRepo := memory.NewResultRepository()

	geocodeService := services.NewGeocodeService(nominatim)
	aqiService := services.NewAirQualityService(waqi, openaq, "")
	candidateService := services.NewCandidateService(osrm, aqiService)
	searchService := services.NewSearchService(geocodeService, candidateService, resultRepo)
	enrichmentService := services.NewEnrichmentService(amadeus, overpass, meteo, cfg.Search)
	inventoryService := services.NewInventoryService(amadeus, rail, cfg.Search.InventoryLeadDays)

	router := NewRouter(
		handlers.NewSearchHandler(searchService, resultRepo),
		handlers.NewEnrichmentHandler(enrichmentService),
		handlers.NewInventoryHandler(inventoryService),
	)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.Setup(engine)

	return engine, fake
}

func TestHealthEndpoint(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health = %d, expected 200", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected a request id in the response headers")
	}
}

func TestSearchEndpoint(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	body, _ := json.Marshal(map[string]string{
		"start":       "Bandra",
		"destination": "Andheri",
		"preference":  "speed",
	})
	req, _ := http.NewRequest("POST", "/api/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/search = %d, body %s", w.Code, w.Body.String())
	}

	var result entities.SearchResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if result.Fallback {
		t.Fatalf("Expected a real result, got fallback: %s", result.ErrorMessage)
	}
	if len(result.Candidates) == 0 {
		t.Fatal("Expected candidates in the response")
	}
}

func TestSearchEndpoint_Validation(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	tests := []struct {
		name string
		body string
	}{
		{name: "Missing destination", body: `{"start":"Bandra"}`},
		{name: "Unknown preference", body: `{"start":"Bandra","destination":"Andheri","preference":"vibes"}`},
		{name: "Malformed JSON", body: `{"start":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("POST", "/api/search", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("POST /api/search = %d, expected 400", w.Code)
			}
		})
	}
}

func TestActiveEndpoint(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	// No search yet.
	req, _ := http.NewRequest("GET", "/api/search/active", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /api/search/active = %d before any search, expected 404", w.Code)
	}

	// Run a search, then the active set is available.
	body := []byte(`{"start":"Bandra","destination":"Andheri"}`)
	req, _ = http.NewRequest("POST", "/api/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	req, _ = http.NewRequest("GET", "/api/search/active", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/search/active = %d after a search, expected 200", w.Code)
	}
}

func TestEnrichmentEndpoint_Validation(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	req, _ := http.NewRequest("GET", "/api/enrichment?lat=abc&lon=72.8", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/enrichment with bad lat = %d, expected 400", w.Code)
	}
}

func TestEnrichmentEndpoint_DegradesToEmpty(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	req, _ := http.NewRequest("GET", "/api/enrichment?lat=19.07&lon=72.87", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/enrichment = %d, expected 200", w.Code)
	}

	var enrichment services.Enrichment
	if err := json.Unmarshal(w.Body.Bytes(), &enrichment); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if len(enrichment.Hotels) != 0 || len(enrichment.Attractions) != 0 || enrichment.Weather != nil {
		t.Errorf("Expected empty enrichment with failing providers, got %+v", enrichment)
	}
}

func TestInventoryEndpoints_NotConfigured(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	req, _ := http.NewRequest("GET", "/api/trains?from=Mumbai&to=Delhi", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/trains = %d without credentials, expected 503", w.Code)
	}

	req, _ = http.NewRequest("GET", "/api/flights?origin_lat=19.0&origin_lon=72.8&dest_lat=28.6&dest_lon=77.2", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/flights = %d without credentials, expected 503", w.Code)
	}
}

func TestTrainsEndpoint_MissingParams(t *testing.T) {
	engine, fake := setupTestServer(t)
	defer fake.Close()

	req, _ := http.NewRequest("GET", "/api/trains?from=Mumbai", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/trains without to = %d, expected 400", w.Code)
	}
}
