package search

import (
	"context"
	"testing"
	"time"

	"next24/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlightRequest() models.FlightSearchRequest {
	return models.FlightSearchRequest{
		Origin:        "NYC",
		Destination:   "PAR",
		DepartureDate: time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02"),
		Adults:        1,
	}
}

func validHotelRequest() models.HotelSearchRequest {
	checkIn := time.Now().UTC().AddDate(0, 1, 0)
	return models.HotelSearchRequest{
		Destination: "Paris",
		CheckIn:     checkIn.Format("2006-01-02"),
		CheckOut:    checkIn.AddDate(0, 0, 3).Format("2006-01-02"),
		Adults:      2,
		Rooms:       1,
	}
}

func TestValidateFlightRequest(t *testing.T) {
	req := validFlightRequest()
	require.NoError(t, ValidateFlightRequest(&req))
	assert.Equal(t, models.CabinEconomy, req.CabinClass)
}

func TestValidateFlightRequestRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.FlightSearchRequest)
	}{
		{"bad origin", func(r *models.FlightSearchRequest) { r.Origin = "NewYork" }},
		{"bad destination", func(r *models.FlightSearchRequest) { r.Destination = "paris" }},
		{"same airports", func(r *models.FlightSearchRequest) { r.Destination = r.Origin }},
		{"bad date", func(r *models.FlightSearchRequest) { r.DepartureDate = "tomorrow" }},
		{"past date", func(r *models.FlightSearchRequest) { r.DepartureDate = "2020-01-01" }},
		{"too far ahead", func(r *models.FlightSearchRequest) {
			r.DepartureDate = time.Now().UTC().AddDate(1, 1, 0).Format("2006-01-02")
		}},
		{"return before departure", func(r *models.FlightSearchRequest) { r.ReturnDate = r.DepartureDate }},
		{"no adults", func(r *models.FlightSearchRequest) { r.Adults = 0 }},
		{"too many adults", func(r *models.FlightSearchRequest) { r.Adults = 10 }},
		{"negative children", func(r *models.FlightSearchRequest) { r.Children = -1 }},
		{"bad cabin", func(r *models.FlightSearchRequest) { r.CabinClass = "budget" }},
		{"negative max price", func(r *models.FlightSearchRequest) { r.MaxPrice = -10 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validFlightRequest()
			tc.mutate(&req)
			assert.Error(t, ValidateFlightRequest(&req))
		})
	}
}

func TestValidateHotelRequest(t *testing.T) {
	req := validHotelRequest()
	assert.NoError(t, ValidateHotelRequest(&req))
}

func TestValidateHotelRequestRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.HotelSearchRequest)
	}{
		{"no destination", func(r *models.HotelSearchRequest) { r.Destination = "" }},
		{"bad check-in", func(r *models.HotelSearchRequest) { r.CheckIn = "next week" }},
		{"past check-in", func(r *models.HotelSearchRequest) { r.CheckIn = "2020-01-01" }},
		{"check-out not after check-in", func(r *models.HotelSearchRequest) { r.CheckOut = r.CheckIn }},
		{"no adults", func(r *models.HotelSearchRequest) { r.Adults = 0 }},
		{"no rooms", func(r *models.HotelSearchRequest) { r.Rooms = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validHotelRequest()
			tc.mutate(&req)
			assert.Error(t, ValidateHotelRequest(&req))
		})
	}
}

func TestMockFlightAPIDeterministic(t *testing.T) {
	req := validFlightRequest()
	req.CabinClass = models.CabinEconomy

	a, err := mockFlightAPI{}.SearchFlights(context.Background(), req)
	require.NoError(t, err)
	b, err := mockFlightAPI{}.SearchFlights(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
	for _, f := range a {
		assert.Greater(t, f.Price, 0.0)
		assert.Equal(t, "USD", f.Currency)
		assert.Equal(t, "MockAir", f.Provider)
	}
}

func TestFilterFlightsDropsUnpriced(t *testing.T) {
	flights := []models.Flight{
		{ID: "f1", Price: 200, Currency: "USD"},
		{ID: "f2", Price: 0, Currency: "USD"},
		{ID: "f3", Price: -5, Currency: "USD"},
		{ID: "f4", Price: 300, Currency: ""},
	}

	out := filterFlights(flights, models.FlightSearchRequest{})
	require.Len(t, out, 1)
	assert.Equal(t, "f1", out[0].ID)
}

func TestFilterFlightsMaxPriceAndDirect(t *testing.T) {
	flights := []models.Flight{
		{ID: "cheap-direct", Price: 200, Currency: "USD", Stops: 0},
		{ID: "cheap-connecting", Price: 180, Currency: "USD", Stops: 1},
		{ID: "pricey-direct", Price: 900, Currency: "USD", Stops: 0},
	}

	out := filterFlights(flights, models.FlightSearchRequest{MaxPrice: 500, DirectFlightsOnly: true})
	require.Len(t, out, 1)
	assert.Equal(t, "cheap-direct", out[0].ID)
}

func TestDedupeFlights(t *testing.T) {
	dep := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	seg := models.FlightSegment{
		Origin:        models.Airport{Code: "NYC"},
		FlightNumber:  "AA100",
		DepartureTime: dep,
	}
	flights := []models.Flight{
		{ID: "a", Price: 200, Segments: []models.FlightSegment{seg}},
		{ID: "b", Price: 200, Segments: []models.FlightSegment{seg}},
		{ID: "c", Price: 250, Segments: []models.FlightSegment{seg}},
	}

	out := dedupeFlights(flights)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
}

func TestFilterHotels(t *testing.T) {
	hotels := []models.Hotel{
		{ID: "h1", PricePerNight: 100, Currency: "USD", Rating: 4.5, Amenities: []string{"wifi", "pool"}},
		{ID: "h2", PricePerNight: 0, Currency: "USD", Rating: 5},
		{ID: "h3", PricePerNight: 90, Currency: "", Rating: 5},
		{ID: "h4", PricePerNight: 80, Currency: "USD", Rating: 3, Amenities: []string{"wifi"}},
		{ID: "h5", PricePerNight: 300, Currency: "USD", Rating: 4.8, Amenities: []string{"wifi", "pool"}},
	}

	out := filterHotels(hotels, models.HotelSearchRequest{
		MinRating: 4,
		MaxPrice:  200,
		Amenities: []string{"pool"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "h1", out[0].ID)
}

func TestDedupeHotels(t *testing.T) {
	hotels := []models.Hotel{
		{ID: "a", Name: "Plaza", Location: models.HotelLocation{Address: "1 Main St"}, PricePerNight: 120},
		{ID: "b", Name: "Plaza", Location: models.HotelLocation{Address: "1 Main St"}, PricePerNight: 120},
		{ID: "c", Name: "Plaza", Location: models.HotelLocation{Address: "1 Main St"}, PricePerNight: 140},
	}

	out := dedupeHotels(hotels)
	assert.Len(t, out, 2)
}

func TestCapFlights(t *testing.T) {
	flights := make([]models.Flight, resultCap+10)
	assert.Len(t, capFlights(flights), resultCap)
	assert.NotNil(t, capFlights(nil))
}
