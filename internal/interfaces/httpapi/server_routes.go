package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, uploadDir string) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.Health)
	mux.Handle("GET /uploads/players/", http.StripPrefix("/uploads/players/", http.FileServer(http.Dir(uploadDir))))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /api/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{playerID}", handler.DeletePlayer)
	mux.HandleFunc("POST /api/players/{playerID}/photo", handler.UploadPlayerPhoto)
	mux.HandleFunc("GET /api/statistics", handler.GetStatistics)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/partite", handler.ListMatches)
	mux.HandleFunc("POST /api/partite", handler.CreateMatch)
	mux.HandleFunc("GET /api/partite/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /api/partite/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /api/partite/{matchID}", handler.DeleteMatch)
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/formazioni", handler.ListLineupEntries)
	mux.HandleFunc("POST /api/formazioni", handler.CreateLineupEntries)
	mux.HandleFunc("GET /api/formazioni/{entryID}", handler.GetLineupEntry)
	mux.HandleFunc("DELETE /api/formazioni/{entryID}", handler.DeleteLineupEntry)
	mux.HandleFunc("GET /api/partite/{matchID}/formazioni", handler.GetMatchLineup)
	mux.HandleFunc("PUT /api/partite/{matchID}/formazioni", handler.ReplaceMatchLineup)
}

func registerGoalRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/gol", handler.ListGoals)
	mux.HandleFunc("POST /api/gol", handler.CreateGoal)
	mux.HandleFunc("GET /api/gol/{goalID}", handler.GetGoal)
	mux.HandleFunc("DELETE /api/gol/{goalID}", handler.DeleteGoal)
	mux.HandleFunc("GET /api/partite/{matchID}/gol", handler.ListMatchGoals)
}
