package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"next24/db"
	"next24/models"
	"next24/rdx"
	"next24/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// resultCap bounds how many offers one response carries; TotalResults
// still reflects the full filtered count.
const resultCap = 50

const cacheTTL = 5 * time.Minute

var flightProviders = []FlightProvider{mockFlightAPI{}}

// SearchFlights fans out to every provider, merges, dedupes, filters and
// sorts the offers, with a short-lived cache in front.
func SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.FlightSearchResponse, error) {
	start := time.Now()

	if err := ValidateFlightRequest(&req); err != nil {
		return nil, err
	}

	cacheKey := rdx.CacheKey("flightsearch", req)
	var cached models.FlightSearchResponse
	if rdx.GetJSON(cacheKey, &cached) {
		cached.CacheHit = true
		cached.SearchTimeMs = time.Since(start).Milliseconds()
		logSearch("flight", req, cached.TotalResults, true)
		return &cached, nil
	}

	var (
		mu        sync.Mutex
		all       []models.Flight
		providers []string
		wg        sync.WaitGroup
	)

	for _, p := range flightProviders {
		wg.Add(1)
		go func(p FlightProvider) {
			defer wg.Done()
			flights, err := p.SearchFlights(ctx, req)
			mu.Lock()
			defer mu.Unlock()
			providers = append(providers, p.Name())
			if err != nil {
				log.Printf("flight provider %s failed: %v", p.Name(), err)
				return
			}
			all = append(all, flights...)
		}(p)
	}
	wg.Wait()

	filtered := filterFlights(dedupeFlights(all), req)
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })

	resp := &models.FlightSearchResponse{
		Flights:      capFlights(filtered),
		SearchID:     uuid.NewString(),
		TotalResults: len(filtered),
		SearchParams: req,
		Providers:    providers,
		CacheHit:     false,
		SearchTimeMs: time.Since(start).Milliseconds(),
	}

	rdx.SetJSON(cacheKey, resp, cacheTTL)
	logSearch("flight", req, resp.TotalResults, false)
	return resp, nil
}

func capFlights(flights []models.Flight) []models.Flight {
	if len(flights) > resultCap {
		return flights[:resultCap]
	}
	if flights == nil {
		return []models.Flight{}
	}
	return flights
}

// dedupeFlights drops offers that repeat the same route and departure at
// the same price from different providers.
func dedupeFlights(flights []models.Flight) []models.Flight {
	seen := make(map[string]bool, len(flights))
	out := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		var sig strings.Builder
		for _, s := range f.Segments {
			fmt.Fprintf(&sig, "%s-%s-%s|", s.FlightNumber, s.Origin.Code, s.DepartureTime.Format(time.RFC3339))
		}
		fmt.Fprintf(&sig, "%.2f", f.Price)
		if seen[sig.String()] {
			continue
		}
		seen[sig.String()] = true
		out = append(out, f)
	}
	return out
}

// filterFlights enforces the display preconditions (positive price,
// non-empty currency) and the caller's optional constraints.
func filterFlights(flights []models.Flight, req models.FlightSearchRequest) []models.Flight {
	out := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Price <= 0 || f.Currency == "" {
			continue
		}
		if req.MaxPrice > 0 && f.Price > req.MaxPrice {
			continue
		}
		if req.DirectFlightsOnly && !f.IsDirect() {
			continue
		}
		out = append(out, f)
	}
	return out
}

func logSearch(kind string, params interface{}, results int, cacheHit bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_, err := db.SearchesCollection.InsertOne(ctx, utils.M{
			"kind":      kind,
			"params":    params,
			"results":   results,
			"cache_hit": cacheHit,
			"at":        time.Now().UTC(),
		})
		if err != nil {
			log.Printf("search log insert: %v", err)
		}
	}()
}

// POST /api/search/flights
func SearchFlightsHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.FlightSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	respondFlightSearch(w, r, req)
}

// GET /api/search/flights?origin=&destination=&departure_date=...
// GET variant for shareable URLs.
func SearchFlightsGetHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	adults, _ := strconv.Atoi(q.Get("adults"))
	if adults == 0 {
		adults = 1
	}
	children, _ := strconv.Atoi(q.Get("children"))
	infants, _ := strconv.Atoi(q.Get("infants"))
	maxPrice, _ := strconv.ParseFloat(q.Get("max_price"), 64)

	req := models.FlightSearchRequest{
		Origin:            strings.ToUpper(q.Get("origin")),
		Destination:       strings.ToUpper(q.Get("destination")),
		DepartureDate:     q.Get("departure_date"),
		ReturnDate:        q.Get("return_date"),
		Adults:            adults,
		Children:          children,
		Infants:           infants,
		CabinClass:        q.Get("cabin_class"),
		MaxPrice:          maxPrice,
		DirectFlightsOnly: q.Get("direct_flights_only") == "true",
	}
	respondFlightSearch(w, r, req)
}

func respondFlightSearch(w http.ResponseWriter, r *http.Request, req models.FlightSearchRequest) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	resp, err := SearchFlights(ctx, req)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
