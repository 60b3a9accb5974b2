package models

// Location pins an activity on the map. Address is display-only; Lat/Lng
// feed marker placement and routing.
type Location struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
	Address string  `json:"address" bson:"address"`
}

// Activity categories form a closed set.
const (
	CategoryAttraction = "attraction"
	CategoryRestaurant = "restaurant"
	CategoryHotel      = "hotel"
	CategoryTransport  = "transport"
	CategoryActivity   = "activity"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryAttraction, CategoryRestaurant, CategoryHotel, CategoryTransport, CategoryActivity:
		return true
	}
	return false
}

// Activity is one plannable item in a day. CatalogID keeps the original
// suggestion-catalog id after the instance gets its own ID, so the same
// catalog item can be added twice without colliding and the suggestion
// engine can still exclude it.
type Activity struct {
	ID           string   `json:"id" bson:"id"`
	CatalogID    string   `json:"catalogId,omitempty" bson:"catalogid,omitempty"`
	Name         string   `json:"name" bson:"name"`
	Description  string   `json:"description" bson:"description"`
	Location     Location `json:"location" bson:"location"`
	Duration     int      `json:"duration" bson:"duration"` // minutes
	Category     string   `json:"category" bson:"category"`
	Rating       float64  `json:"rating,omitempty" bson:"rating,omitempty"`
	Price        string   `json:"price,omitempty" bson:"price,omitempty"`
	Image        string   `json:"image,omitempty" bson:"image,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty" bson:"openinghours,omitempty"`
}

// ItineraryDay holds the planned chronological order of activities for one
// calendar date. Activity order is array order, nothing else.
type ItineraryDay struct {
	ID         string     `json:"id" bson:"id"`
	Date       string     `json:"date" bson:"date"` // YYYY-MM-DD
	Activities []Activity `json:"activities" bson:"activities"`
}

// Itinerary is the full trip plan. Days are ordered by date ascending, one
// per date in [StartDate, EndDate].
type Itinerary struct {
	ItineraryID string         `json:"itineraryid" bson:"itineraryid,omitempty"`
	UserID      string         `json:"user_id" bson:"user_id"`
	Title       string         `json:"title" bson:"title"`
	Destination string         `json:"destination" bson:"destination"`
	StartDate   string         `json:"start_date" bson:"start_date"`
	EndDate     string         `json:"end_date" bson:"end_date"`
	Days        []ItineraryDay `json:"days" bson:"days"`
	IsPublic    bool           `json:"isPublic" bson:"ispublic"`
	CreatedAt   string         `json:"createdAt" bson:"createdat"`
	UpdatedAt   string         `json:"updatedAt" bson:"updatedat"`
	Deleted     bool           `json:"-" bson:"deleted,omitempty"` // Internal use only
}

// Collaborator roles; exactly one owner exists per itinerary.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// Collaborator is the single source of truth for the sharing relationship.
// The flat email list the front-end shows is derived from these records.
type Collaborator struct {
	ID          string `json:"id" bson:"id"`
	ItineraryID string `json:"itineraryid" bson:"itineraryid"`
	Email       string `json:"email" bson:"email"`
	Name        string `json:"name" bson:"name"`
	Role        string `json:"role" bson:"role"`
	Status      string `json:"status" bson:"status"`
	JoinedAt    string `json:"joinedAt" bson:"joinedat"`
}
