package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/providers"
)

func TestStationCode(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		wantCode string
		wantOK   bool
	}{
		{name: "Exact city", city: "mumbai", wantCode: "BCT", wantOK: true},
		{name: "Case insensitive", city: "Mumbai", wantCode: "BCT", wantOK: true},
		{name: "Keyword inside address", city: "Bandra West, Mumbai, Maharashtra", wantCode: "BCT", wantOK: true},
		{name: "Alternate spelling", city: "Bengaluru", wantCode: "SBC", wantOK: true},
		{name: "Delhi", city: "New Delhi", wantCode: "NDLS", wantOK: true},
		{name: "Unknown city", city: "Springfield", wantOK: false},
		{name: "Empty", city: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := StationCode(tt.city)
			if ok != tt.wantOK {
				t.Fatalf("StationCode(%q) ok = %v, expected %v", tt.city, ok, tt.wantOK)
			}
			if ok && code != tt.wantCode {
				t.Errorf("StationCode(%q) = %q, expected %q", tt.city, code, tt.wantCode)
			}
		})
	}
}

func TestInventoryService_TrainOffers(t *testing.T) {
	railSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-RapidAPI-Key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		from := r.URL.Query().Get("fromStationCode")
		to := r.URL.Query().Get("toStationCode")
		fmt.Fprintf(w, `{"data":[{
			"train_number":"12951",
			"train_name":"Mumbai Rajdhani",
			"from_sta":"17:00",
			"to_sta":"08:32",
			"duration":"15:32",
			"from_station_name":"%s",
			"to_station_name":"%s"
		}]}`, from, to)
	}))
	defer railSrv.Close()

	svc := NewInventoryService(
		providers.NewAmadeusClient("http://invalid", "", ""),
		providers.NewRailClient(railSrv.URL, "test-key", "test-host"),
		2,
	)

	offers, err := svc.TrainOffers(context.Background(), "Mumbai, Maharashtra", "New Delhi")
	if err != nil {
		t.Fatalf("TrainOffers() error = %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("Got %d offers, expected 1", len(offers))
	}
	offer := offers[0]
	if offer.TrainNumber != "12951" || offer.TrainName != "Mumbai Rajdhani" {
		t.Errorf("Offer = %+v, expected the Rajdhani", offer)
	}
	if offer.FromStation != "BCT" || offer.ToStation != "NDLS" {
		t.Errorf("Stations = %s -> %s, expected BCT -> NDLS", offer.FromStation, offer.ToStation)
	}
}

func TestInventoryService_TrainOffersUnknownStation(t *testing.T) {
	svc := NewInventoryService(
		providers.NewAmadeusClient("http://invalid", "", ""),
		providers.NewRailClient("http://invalid", "test-key", "test-host"),
		2,
	)

	_, err := svc.TrainOffers(context.Background(), "Springfield", "Mumbai")
	if !errors.Is(err, ErrUnknownStation) {
		t.Errorf("TrainOffers() error = %v, expected ErrUnknownStation", err)
	}
}

func TestInventoryService_NotConfigured(t *testing.T) {
	svc := NewInventoryService(
		providers.NewAmadeusClient("http://invalid", "", ""),
		providers.NewRailClient("http://invalid", "", ""),
		2,
	)

	if _, err := svc.TrainOffers(context.Background(), "Mumbai", "Delhi"); !errors.Is(err, ErrInventoryNotConfigured) {
		t.Errorf("TrainOffers() error = %v, expected ErrInventoryNotConfigured", err)
	}
	origin := entities.NewCoordinate(19.0, 72.8)
	dest := entities.NewCoordinate(28.6, 77.2)
	if _, err := svc.FlightOffers(context.Background(), origin, dest); !errors.Is(err, ErrInventoryNotConfigured) {
		t.Errorf("FlightOffers() error = %v, expected ErrInventoryNotConfigured", err)
	}
}

func TestInventoryService_FlightOffers(t *testing.T) {
	amadeusSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/v1/security/oauth2/token"):
			fmt.Fprint(w, `{"access_token":"tok","expires_in":1799}`)
		case strings.HasSuffix(r.URL.Path, "/v1/reference-data/locations/airports"):
			lat := r.URL.Query().Get("latitude")
			iata := "BOM"
			if strings.HasPrefix(lat, "28") {
				iata = "DEL"
			}
			fmt.Fprintf(w, `{"data":[{"iataCode":"%s"}]}`, iata)
		case strings.HasSuffix(r.URL.Path, "/v2/shopping/flight-offers"):
			fmt.Fprintf(w, `{"data":[{
				"id":"1",
				"itineraries":[{"segments":[
					{"departure":{"iataCode":"%s","at":"2026-09-01T06:00:00"},
					 "arrival":{"iataCode":"%s","at":"2026-09-01T08:15:00"},
					 "carrierCode":"AI"}
				]}],
				"price":{"total":"5400.00","currency":"INR"}
			}]}`, r.URL.Query().Get("originLocationCode"), r.URL.Query().Get("destinationLocationCode"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer amadeusSrv.Close()

	svc := NewInventoryService(
		providers.NewAmadeusClient(amadeusSrv.URL, "key", "secret"),
		providers.NewRailClient("http://invalid", "", ""),
		2,
	)

	origin := entities.NewCoordinate(19.0760, 72.8777)
	dest := entities.NewCoordinate(28.6139, 77.2090)
	offers, err := svc.FlightOffers(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("FlightOffers() error = %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("Got %d offers, expected 1", len(offers))
	}
	offer := offers[0]
	if offer.Origin != "BOM" || offer.Destination != "DEL" {
		t.Errorf("Offer route = %s -> %s, expected BOM -> DEL", offer.Origin, offer.Destination)
	}
	if offer.Carrier != "AI" || offer.Price != "5400.00" || offer.Currency != "INR" {
		t.Errorf("Offer pricing = %+v, expected AI 5400.00 INR", offer)
	}
}
