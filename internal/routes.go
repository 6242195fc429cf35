package internal

import (
	"callguard/internal/controllers"
	"callguard/internal/providers"
	"net/http"
)

func InitRoutes(callController *controllers.CallController, overlayController *controllers.OverlayController, handoffController *controllers.HandoffController, statsController *controllers.StatsController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/call", http.HandlerFunc(callController.ReceiveCall))
	routers.Get("/overlay", http.HandlerFunc(overlayController.GetOverlay))
	routers.Delete("/overlay", http.HandlerFunc(overlayController.Dismiss))
	routers.Post("/overlay/dismiss", http.HandlerFunc(overlayController.Dismiss))
	routers.Post("/overlay/accept", http.HandlerFunc(overlayController.Accept))
	routers.Get("/handoff", http.HandlerFunc(handoffController.Recent))
	routers.Get("/stats", http.HandlerFunc(statsController.GetStats))
	return routers
}
