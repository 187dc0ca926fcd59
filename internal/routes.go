package internal

import (
	"net/http"
	"readtrack/internal/controllers"
	"readtrack/internal/providers"
)

func InitRoutes(readingController *controllers.ReadingController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/dashboard", http.HandlerFunc(readingController.Dashboard))
	routers.Get("/chapter", http.HandlerFunc(readingController.SearchChapter))
	routers.Post("/chapter/read", http.HandlerFunc(readingController.MarkRead))
	routers.Put("/goal", http.HandlerFunc(readingController.SetGoal))
	routers.Get("/stats", http.HandlerFunc(readingController.Stats))
	routers.Get("/achievements", http.HandlerFunc(readingController.Achievements))
	routers.Get("/history", http.HandlerFunc(readingController.History))
	routers.Delete("/history", http.HandlerFunc(readingController.ConfirmReset))
	routers.Post("/history/reset", http.HandlerFunc(readingController.RequestReset))
	return routers
}
