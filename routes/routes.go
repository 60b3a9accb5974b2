package routes

import (
	"net/http"

	"next24/collab"
	"next24/exports"
	"next24/itinerary"
	"next24/live"
	"next24/maps"
	"next24/middleware"
	"next24/ratelim"
	"next24/search"
	"next24/social"
	"next24/suggestions"
	"next24/utils"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/photos/*filepath", http.Dir("uploads/photos"))
}

func AddItineraryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/itineraries", rl.Limit(middleware.Authenticate(itinerary.CreateItinerary)))
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.GET("/api/itineraries/:id", middleware.OptionalAuth(itinerary.GetItinerary))
	router.PUT("/api/itineraries/:id", middleware.Authenticate(itinerary.UpdateItinerary))
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(itinerary.DeleteItinerary))
	router.POST("/api/itineraries/:id/fork", rl.Limit(middleware.Authenticate(itinerary.ForkItinerary)))

	router.POST("/api/itineraries/:id/days/:dayid/activities", middleware.Authenticate(itinerary.AddActivityHandler))
	router.DELETE("/api/itineraries/:id/days/:dayid/activities/:activityid", middleware.Authenticate(itinerary.RemoveActivityHandler))
	router.POST("/api/itineraries/:id/move", middleware.Authenticate(itinerary.MoveActivityHandler))
	router.GET("/api/itineraries/:id/days/:dayid/summary", middleware.OptionalAuth(itinerary.DaySummaryHandler))
}

func AddSuggestionsRoutes(router *httprouter.Router) {
	router.GET("/api/itineraries/:id/suggestions", middleware.OptionalAuth(suggestions.GetSuggestions))
	router.POST("/api/itineraries/:id/suggestions/accept", middleware.Authenticate(suggestions.AcceptSuggestion))
}

func AddMapRoutes(router *httprouter.Router) {
	router.GET("/api/itineraries/:id/days/:dayid/markers", middleware.OptionalAuth(maps.GetMarkers))
	router.GET("/api/itineraries/:id/days/:dayid/route", middleware.OptionalAuth(maps.GetRoute))
	router.GET("/api/itineraries/:id/days/:dayid/nearby", middleware.OptionalAuth(maps.GetNearby))
}

func AddExportRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/itineraries/:id/export/calendar", middleware.OptionalAuth(exports.ExportCalendar))
	router.GET("/api/itineraries/:id/export/document", middleware.OptionalAuth(exports.ExportDocument))
	router.GET("/api/itineraries/:id/export/pdf", middleware.OptionalAuth(exports.ExportPDF))
	router.GET("/api/itineraries/:id/export/mobile", middleware.OptionalAuth(exports.ExportMobile))
	router.POST("/api/itineraries/:id/export/email", rl.Limit(middleware.Authenticate(exports.ExportEmail)))
	router.POST("/api/itineraries/:id/share", rl.Limit(middleware.Authenticate(exports.CreateShare)))
	router.GET("/api/shared/:shareid", exports.GetShared)
	router.GET("/api/shared/:shareid/qr", exports.ShareQR)
}

func AddCollabRoutes(router *httprouter.Router) {
	router.GET("/api/itineraries/:id/collaborators", middleware.Authenticate(collab.ListCollaborators))
	router.POST("/api/itineraries/:id/collaborators", middleware.Authenticate(collab.InviteCollaborator))
	router.PATCH("/api/itineraries/:id/collaborators/:collabid", middleware.Authenticate(collab.ChangeCollaboratorRole))
	router.DELETE("/api/itineraries/:id/collaborators/:collabid", middleware.Authenticate(collab.RemoveCollaborator))
	router.PATCH("/api/itineraries/:id/visibility", middleware.Authenticate(collab.TogglePublic))
}

func AddSearchRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/search/flights", rl.Limit(search.SearchFlightsHandler))
	router.GET("/api/search/flights", rl.Limit(search.SearchFlightsGetHandler))
	router.POST("/api/search/hotels", rl.Limit(search.SearchHotelsHandler))
	router.GET("/api/search/hotels", rl.Limit(search.SearchHotelsGetHandler))
}

func AddSocialRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/social/photos", rl.Limit(middleware.Authenticate(social.SubmitPhoto)))
	router.GET("/api/social/photos/:destination", social.GetPhotos)
	router.PATCH("/api/social/photos/:id/approve", middleware.Authenticate(social.ApprovePhoto))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/itineraries/:id", middleware.OptionalAuth(live.WebSocketHandler(hub)))
}

func AddHealthRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ok"})
	})
}
