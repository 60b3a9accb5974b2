package search

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"next24/models"
)

// FlightProvider is one upstream flight source. Providers are queried
// concurrently; a failing provider is logged and skipped, never fatal.
type FlightProvider interface {
	Name() string
	SearchFlights(ctx context.Context, req models.FlightSearchRequest) ([]models.Flight, error)
}

type HotelProvider interface {
	Name() string
	SearchHotels(ctx context.Context, req models.HotelSearchRequest) ([]models.Hotel, error)
}

// mockFlightAPI generates plausible offers, deterministic per search
// parameters so cached and fresh responses agree.
type mockFlightAPI struct{}

func (mockFlightAPI) Name() string { return "MockAir" }

var mockAirlines = []models.Airline{
	{Code: "AA", Name: "American Airlines"},
	{Code: "DL", Name: "Delta Air Lines"},
	{Code: "UA", Name: "United Airlines"},
	{Code: "B6", Name: "JetBlue Airways"},
	{Code: "AF", Name: "Air France"},
	{Code: "BA", Name: "British Airways"},
}

var mockAirports = map[string]models.Airport{
	"NYC": {Code: "NYC", Name: "New York", City: "New York", Country: "USA"},
	"LAX": {Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA"},
	"SFO": {Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "USA"},
	"MIA": {Code: "MIA", Name: "Miami International", City: "Miami", Country: "USA"},
	"LON": {Code: "LON", Name: "London Heathrow", City: "London", Country: "UK"},
	"PAR": {Code: "PAR", Name: "Paris Charles de Gaulle", City: "Paris", Country: "France"},
	"ROM": {Code: "ROM", Name: "Rome Fiumicino", City: "Rome", Country: "Italy"},
	"TYO": {Code: "TYO", Name: "Tokyo Haneda", City: "Tokyo", Country: "Japan"},
}

func airportFor(code string) models.Airport {
	if a, ok := mockAirports[code]; ok {
		return a
	}
	return models.Airport{Code: code, Name: code, City: code}
}

func seedFor(parts ...string) int64 {
	var h int64 = 1125899906842597
	for _, p := range parts {
		for _, c := range p {
			h = 31*h + int64(c)
		}
	}
	return h
}

func (m mockFlightAPI) SearchFlights(ctx context.Context, req models.FlightSearchRequest) ([]models.Flight, error) {
	rng := rand.New(rand.NewSource(seedFor(req.Origin, req.Destination, req.DepartureDate, req.CabinClass)))

	depDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("invalid departure date: %w", err)
	}

	n := 5 + rng.Intn(16)
	flights := make([]models.Flight, 0, n)
	for i := 0; i < n; i++ {
		airline := mockAirlines[rng.Intn(len(mockAirlines))]

		stops := 0
		switch r := rng.Intn(10); {
		case r >= 9:
			stops = 2
		case r >= 6:
			stops = 1
		}

		price := float64(150 + rng.Intn(651))
		if stops > 0 {
			price *= 0.8 // connections undercut direct fares
		}

		departure := depDate.Add(time.Duration(6+rng.Intn(14)) * time.Hour)
		duration := 90 + rng.Intn(600)
		arrival := departure.Add(time.Duration(duration) * time.Minute)

		flights = append(flights, models.Flight{
			ID:                   fmt.Sprintf("mock_%s_%d_%s", airline.Code, i, req.DepartureDate),
			TotalDurationMinutes: duration,
			Stops:                stops,
			Price:                price,
			Currency:             "USD",
			DeepLink:             fmt.Sprintf("https://example.com/book/%s%d", airline.Code, 1000+rng.Intn(9000)),
			Provider:             m.Name(),
			Segments: []models.FlightSegment{{
				Origin:          airportFor(req.Origin),
				Destination:     airportFor(req.Destination),
				DepartureTime:   departure,
				ArrivalTime:     arrival,
				DurationMinutes: duration,
				FlightNumber:    fmt.Sprintf("%s%d", airline.Code, 100+rng.Intn(900)),
				Airline:         airline,
				CabinClass:      req.CabinClass,
			}},
		})
	}
	return flights, nil
}

type mockHotelAPI struct{}

func (mockHotelAPI) Name() string { return "MockStay" }

var mockHotelNames = []string{
	"Grand Central Hotel", "Riverside Boutique", "The Artisan", "Plaza Royale",
	"Old Town Inn", "Skyline Suites", "Garden Court Hotel", "Harbor View Lodge",
}

var mockAmenities = []string{"wifi", "pool", "gym", "spa", "parking", "bar", "restaurant"}

func (m mockHotelAPI) SearchHotels(ctx context.Context, req models.HotelSearchRequest) ([]models.Hotel, error) {
	rng := rand.New(rand.NewSource(seedFor(req.Destination, req.CheckIn, req.CheckOut)))

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date: %w", err)
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	n := 4 + rng.Intn(10)
	hotels := make([]models.Hotel, 0, n)
	for i := 0; i < n; i++ {
		perNight := float64(60 + rng.Intn(341))
		amenities := make([]string, 0, 4)
		for _, a := range mockAmenities {
			if rng.Intn(2) == 1 {
				amenities = append(amenities, a)
			}
		}

		hotels = append(hotels, models.Hotel{
			ID:            fmt.Sprintf("mock_hotel_%d_%s", i, req.CheckIn),
			Name:          mockHotelNames[rng.Intn(len(mockHotelNames))],
			Location:      models.HotelLocation{Address: fmt.Sprintf("%d Main Street", 1+rng.Intn(200)), City: req.Destination, Country: ""},
			Rating:        float64(2+rng.Intn(4)) + 0.5*float64(rng.Intn(2)),
			ReviewScore:   6 + 4*rng.Float64(),
			ReviewCount:   50 + rng.Intn(5000),
			PricePerNight: perNight,
			TotalPrice:    perNight * float64(nights),
			Currency:      "USD",
			RoomType: models.RoomType{
				Name:         "Double Room",
				MaxOccupancy: 2 + rng.Intn(3),
			},
			Amenities:         amenities,
			DeepLink:          fmt.Sprintf("https://example.com/stay/%d", 1000+rng.Intn(9000)),
			Provider:          m.Name(),
			BreakfastIncluded: rng.Intn(2) == 1,
		})
	}
	return hotels, nil
}
