package models

type HotelSearchRequest struct {
	Destination string   `json:"destination"`
	CheckIn     string   `json:"check_in"`  // YYYY-MM-DD
	CheckOut    string   `json:"check_out"` // YYYY-MM-DD
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
	Rooms       int      `json:"rooms"`
	MinRating   float64  `json:"min_rating,omitempty"`
	MaxPrice    float64  `json:"max_price,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

type HotelLocation struct {
	Address            string  `json:"address"`
	City               string  `json:"city"`
	Country            string  `json:"country"`
	Latitude           float64 `json:"latitude,omitempty"`
	Longitude          float64 `json:"longitude,omitempty"`
	DistanceToCenterKm float64 `json:"distance_to_center_km,omitempty"`
}

type RoomType struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	MaxOccupancy int      `json:"max_occupancy"`
	Amenities    []string `json:"amenities,omitempty"`
}

type Hotel struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Location          HotelLocation `json:"location"`
	Rating            float64       `json:"rating,omitempty"`
	ReviewScore       float64       `json:"review_score,omitempty"`
	ReviewCount       int           `json:"review_count,omitempty"`
	PricePerNight     float64       `json:"price_per_night"`
	TotalPrice        float64       `json:"total_price"`
	Currency          string        `json:"currency"`
	RoomType          RoomType      `json:"room_type"`
	Amenities         []string      `json:"amenities,omitempty"`
	DeepLink          string        `json:"deep_link"`
	Provider          string        `json:"provider"`
	BreakfastIncluded bool          `json:"breakfast_included"`
}

type HotelSearchResponse struct {
	Hotels       []Hotel            `json:"hotels"`
	SearchID     string             `json:"search_id"`
	TotalResults int                `json:"total_results"`
	SearchParams HotelSearchRequest `json:"search_params"`
	Providers    []string           `json:"providers"`
	CacheHit     bool               `json:"cache_hit"`
	SearchTimeMs int64              `json:"search_time_ms"`
}
