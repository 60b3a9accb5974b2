package suggestions

import (
	"next24/models"
	"next24/utils"
)

// Catalog maps a normalized destination key to activity templates. Lookup
// is exact after normalization; unknown destinations yield an empty set by
// design, no fuzzy matching.
type Catalog map[string][]models.Activity

func (c Catalog) Lookup(destination string) []models.Activity {
	return c[utils.NormalizeDestination(destination)]
}

// DefaultCatalog ships the hand-authored sample activities.
var DefaultCatalog = Catalog{
	"paris, france": {
		{
			ID:           "eiffel-tower",
			Name:         "Eiffel Tower",
			Description:  "Iconic iron lattice tower and symbol of Paris with breathtaking city views",
			Location:     models.Location{Lat: 48.8584, Lng: 2.2945, Address: "Champ de Mars, 5 Avenue Anatole France, 75007 Paris"},
			Duration:     120,
			Category:     models.CategoryAttraction,
			Rating:       4.6,
			Price:        "€29",
			OpeningHours: "9:30 AM - 11:45 PM",
		},
		{
			ID:           "louvre-museum",
			Name:         "Louvre Museum",
			Description:  "World's largest art museum, home to the Mona Lisa and countless masterpieces",
			Location:     models.Location{Lat: 48.8606, Lng: 2.3376, Address: "Rue de Rivoli, 75001 Paris"},
			Duration:     180,
			Category:     models.CategoryAttraction,
			Rating:       4.7,
			Price:        "€17",
			OpeningHours: "9:00 AM - 6:00 PM",
		},
		{
			ID:           "seine-cruise",
			Name:         "Seine River Cruise",
			Description:  "Romantic boat cruise along the Seine with views of Paris landmarks",
			Location:     models.Location{Lat: 48.8566, Lng: 2.3522, Address: "Port de la Bourdonnais, 75007 Paris"},
			Duration:     60,
			Category:     models.CategoryActivity,
			Rating:       4.4,
			Price:        "€15",
			OpeningHours: "10:00 AM - 10:00 PM",
		},
		{
			ID:           "cafe-de-flore",
			Name:         "Café de Flore",
			Description:  "Historic Parisian café famous for its literary clientele and classic atmosphere",
			Location:     models.Location{Lat: 48.8542, Lng: 2.3320, Address: "172 Boulevard Saint-Germain, 75006 Paris"},
			Duration:     90,
			Category:     models.CategoryRestaurant,
			Rating:       4.2,
			Price:        "€25",
			OpeningHours: "7:00 AM - 1:30 AM",
		},
		{
			ID:           "montmartre-walk",
			Name:         "Montmartre Walking Tour",
			Description:  "Explore the bohemian hilltop district with its artists, cafés, and Sacré-Cœur",
			Location:     models.Location{Lat: 48.8867, Lng: 2.3431, Address: "Place du Tertre, 75018 Paris"},
			Duration:     150,
			Category:     models.CategoryActivity,
			Rating:       4.5,
			Price:        "Free",
			OpeningHours: "All day",
		},
		{
			ID:           "le-comptoir-relais",
			Name:         "Le Comptoir du Relais",
			Description:  "Authentic French bistro serving traditional cuisine in a cozy setting",
			Location:     models.Location{Lat: 48.8529, Lng: 2.3364, Address: "9 Carrefour de l'Odéon, 75006 Paris"},
			Duration:     120,
			Category:     models.CategoryRestaurant,
			Rating:       4.3,
			Price:        "€45",
			OpeningHours: "12:00 PM - 11:00 PM",
		},
	},
	"rome, italy": {
		{
			ID:           "colosseum",
			Name:         "Colosseum",
			Description:  "Ancient amphitheatre at the heart of imperial Rome",
			Location:     models.Location{Lat: 41.8902, Lng: 12.4922, Address: "Piazza del Colosseo, 1, 00184 Roma"},
			Duration:     150,
			Category:     models.CategoryAttraction,
			Rating:       4.7,
			Price:        "€18",
			OpeningHours: "8:30 AM - 7:00 PM",
		},
		{
			ID:           "vatican-museums",
			Name:         "Vatican Museums",
			Description:  "Papal art collections ending in the Sistine Chapel",
			Location:     models.Location{Lat: 41.9065, Lng: 12.4536, Address: "Viale Vaticano, 00165 Roma"},
			Duration:     210,
			Category:     models.CategoryAttraction,
			Rating:       4.6,
			Price:        "€20",
			OpeningHours: "9:00 AM - 6:00 PM",
		},
		{
			ID:           "trastevere-food-tour",
			Name:         "Trastevere Food Tour",
			Description:  "Guided evening walk through Trastevere's trattorias and street food",
			Location:     models.Location{Lat: 41.8897, Lng: 12.4694, Address: "Piazza Trilussa, 00153 Roma"},
			Duration:     180,
			Category:     models.CategoryActivity,
			Rating:       4.8,
			Price:        "€65",
			OpeningHours: "5:00 PM - 10:00 PM",
		},
		{
			ID:           "pantheon-visit",
			Name:         "Pantheon",
			Description:  "Best-preserved monument of ancient Rome, free to enter",
			Location:     models.Location{Lat: 41.8986, Lng: 12.4769, Address: "Piazza della Rotonda, 00186 Roma"},
			Duration:     45,
			Category:     models.CategoryAttraction,
			Rating:       4.8,
			Price:        "Free",
			OpeningHours: "9:00 AM - 7:00 PM",
		},
		{
			ID:           "roscioli-lunch",
			Name:         "Roscioli Salumeria",
			Description:  "Deli-restaurant hybrid famous for carbonara and burrata",
			Location:     models.Location{Lat: 41.8938, Lng: 12.4744, Address: "Via dei Giubbonari, 21, 00186 Roma"},
			Duration:     90,
			Category:     models.CategoryRestaurant,
			Rating:       4.4,
			Price:        "€40",
			OpeningHours: "12:30 PM - 11:00 PM",
		},
	},
}
