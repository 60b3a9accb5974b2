package main

import (
	"next24/ratelim"
	"next24/routes"

	"github.com/julienschmidt/httprouter"
)

// setupRouter builds the router with all routes except the websocket
// endpoints, which need the hub and are added in main.
func setupRouter(rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()

	routes.AddHealthRoutes(router)
	routes.AddItineraryRoutes(router, rateLimiter)
	routes.AddSuggestionsRoutes(router)
	routes.AddMapRoutes(router)
	routes.AddExportRoutes(router, rateLimiter)
	routes.AddCollabRoutes(router)
	routes.AddSearchRoutes(router, rateLimiter)
	routes.AddSocialRoutes(router, rateLimiter)
	routes.AddStaticRoutes(router)

	return router
}
