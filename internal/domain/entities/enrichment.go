package entities

// Weather holds current conditions at the destination. Condition is one of
// clear, cloudy, rain, snow, fog, thunder, derived from the provider's
// numeric WMO weather code.
type Weather struct {
	TempC     float64 `json:"temp_c"`
	Humidity  float64 `json:"humidity"`
	WindKmh   float64 `json:"wind_kmh"`
	Condition string  `json:"condition"`
	Label     string  `json:"label"`
	Icon      string  `json:"icon"`
}

// Attraction is a point of interest near the destination.
type Attraction struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Location Coordinate `json:"location"`
}

// HotelPrice is a live offer price for a hotel. Attached best-effort; the
// inventory sandbox frequently has no offers for a property.
type HotelPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// Hotel is an inventory-provider hotel near the destination.
type Hotel struct {
	HotelID  string      `json:"hotel_id"`
	Name     string      `json:"name"`
	Location Coordinate  `json:"location"`
	Price    *HotelPrice `json:"price,omitempty"`
}

// FlightOffer is a pass-through flight inventory entry.
type FlightOffer struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Carrier     string `json:"carrier"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
}

// TrainOffer is a pass-through train inventory entry.
type TrainOffer struct {
	ID          string `json:"id"`
	TrainName   string `json:"train_name"`
	TrainNumber string `json:"train_number"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Duration    string `json:"duration"`
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	Price       string `json:"price"`
}
