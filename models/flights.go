package models

import "time"

// Cabin classes accepted by the flight search.
const (
	CabinEconomy        = "economy"
	CabinPremiumEconomy = "premium_economy"
	CabinBusiness       = "business"
	CabinFirst          = "first"
)

func ValidCabinClass(c string) bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

type FlightSearchRequest struct {
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	DepartureDate     string  `json:"departure_date"` // YYYY-MM-DD
	ReturnDate        string  `json:"return_date,omitempty"`
	Adults            int     `json:"adults"`
	Children          int     `json:"children"`
	Infants           int     `json:"infants"`
	CabinClass        string  `json:"cabin_class"`
	MaxPrice          float64 `json:"max_price,omitempty"`
	DirectFlightsOnly bool    `json:"direct_flights_only"`
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Airline struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type FlightSegment struct {
	Origin          Airport   `json:"origin"`
	Destination     Airport   `json:"destination"`
	DepartureTime   time.Time `json:"departure_time"`
	ArrivalTime     time.Time `json:"arrival_time"`
	DurationMinutes int       `json:"duration_minutes"`
	FlightNumber    string    `json:"flight_number"`
	Airline         Airline   `json:"airline"`
	CabinClass      string    `json:"cabin_class"`
}

type Flight struct {
	ID                   string          `json:"id"`
	Segments             []FlightSegment `json:"segments"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
	Stops                int             `json:"stops"`
	Price                float64         `json:"price"`
	Currency             string          `json:"currency"`
	DeepLink             string          `json:"deep_link"`
	Provider             string          `json:"provider"`
}

func (f Flight) IsDirect() bool { return f.Stops == 0 }

type FlightSearchResponse struct {
	Flights      []Flight            `json:"flights"`
	SearchID     string              `json:"search_id"`
	TotalResults int                 `json:"total_results"`
	SearchParams FlightSearchRequest `json:"search_params"`
	Providers    []string            `json:"providers"`
	CacheHit     bool                `json:"cache_hit"`
	SearchTimeMs int64               `json:"search_time_ms"`
}
