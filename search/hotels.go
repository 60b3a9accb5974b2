package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"next24/models"
	"next24/rdx"
	"next24/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

var hotelProviders = []HotelProvider{mockHotelAPI{}}

// SearchHotels mirrors SearchFlights: concurrent provider fan-out,
// dedupe, filter, sort by price, cached for a few minutes.
func SearchHotels(ctx context.Context, req models.HotelSearchRequest) (*models.HotelSearchResponse, error) {
	start := time.Now()

	if err := ValidateHotelRequest(&req); err != nil {
		return nil, err
	}

	cacheKey := rdx.CacheKey("hotelsearch", req)
	var cached models.HotelSearchResponse
	if rdx.GetJSON(cacheKey, &cached) {
		cached.CacheHit = true
		cached.SearchTimeMs = time.Since(start).Milliseconds()
		logSearch("hotel", req, cached.TotalResults, true)
		return &cached, nil
	}

	var (
		mu        sync.Mutex
		all       []models.Hotel
		providers []string
		wg        sync.WaitGroup
	)

	for _, p := range hotelProviders {
		wg.Add(1)
		go func(p HotelProvider) {
			defer wg.Done()
			hotels, err := p.SearchHotels(ctx, req)
			mu.Lock()
			defer mu.Unlock()
			providers = append(providers, p.Name())
			if err != nil {
				log.Printf("hotel provider %s failed: %v", p.Name(), err)
				return
			}
			all = append(all, hotels...)
		}(p)
	}
	wg.Wait()

	filtered := filterHotels(dedupeHotels(all), req)
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].PricePerNight < filtered[j].PricePerNight })

	resp := &models.HotelSearchResponse{
		Hotels:       capHotels(filtered),
		SearchID:     uuid.NewString(),
		TotalResults: len(filtered),
		SearchParams: req,
		Providers:    providers,
		CacheHit:     false,
		SearchTimeMs: time.Since(start).Milliseconds(),
	}

	rdx.SetJSON(cacheKey, resp, cacheTTL)
	logSearch("hotel", req, resp.TotalResults, false)
	return resp, nil
}

func capHotels(hotels []models.Hotel) []models.Hotel {
	if len(hotels) > resultCap {
		return hotels[:resultCap]
	}
	if hotels == nil {
		return []models.Hotel{}
	}
	return hotels
}

func dedupeHotels(hotels []models.Hotel) []models.Hotel {
	seen := make(map[string]bool, len(hotels))
	out := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		sig := fmt.Sprintf("%s|%s|%.2f", h.Name, h.Location.Address, h.PricePerNight)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, h)
	}
	return out
}

func filterHotels(hotels []models.Hotel, req models.HotelSearchRequest) []models.Hotel {
	out := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.PricePerNight <= 0 || h.Currency == "" {
			continue
		}
		if req.MaxPrice > 0 && h.PricePerNight > req.MaxPrice {
			continue
		}
		if req.MinRating > 0 && h.Rating < req.MinRating {
			continue
		}
		if len(req.Amenities) > 0 && !hasAmenities(h.Amenities, req.Amenities) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func hasAmenities(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, a := range have {
		set[a] = true
	}
	for _, a := range want {
		if !set[a] {
			return false
		}
	}
	return true
}

// POST /api/search/hotels
func SearchHotelsHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.HotelSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	respondHotelSearch(w, r, req)
}

// GET /api/search/hotels?destination=&check_in=...
func SearchHotelsGetHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	adults, _ := strconv.Atoi(q.Get("adults"))
	if adults == 0 {
		adults = 1
	}
	children, _ := strconv.Atoi(q.Get("children"))
	rooms, _ := strconv.Atoi(q.Get("rooms"))
	if rooms == 0 {
		rooms = 1
	}
	minRating, _ := strconv.ParseFloat(q.Get("min_rating"), 64)
	maxPrice, _ := strconv.ParseFloat(q.Get("max_price"), 64)

	req := models.HotelSearchRequest{
		Destination: q.Get("destination"),
		CheckIn:     q.Get("check_in"),
		CheckOut:    q.Get("check_out"),
		Adults:      adults,
		Children:    children,
		Rooms:       rooms,
		MinRating:   minRating,
		MaxPrice:    maxPrice,
	}
	respondHotelSearch(w, r, req)
}

func respondHotelSearch(w http.ResponseWriter, r *http.Request, req models.HotelSearchRequest) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	resp, err := SearchHotels(ctx, req)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
