package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	staffHandler StaffHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	eventHandler EventHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1/attendance", func(r chi.Router) {
		r.Get("/", attendanceHandler.List)
		r.Get("/events", eventHandler.Stream)
		r.Get("/summary", reportHandler.Summary)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", reportHandler.Generate)
			r.Get("/export", reportHandler.Export)
			r.Get("/print", reportHandler.Print)
		})

		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json"))

			r.Post("/save", attendanceHandler.Save)

			r.Route("/staffs", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)
				r.Put("/{name}", staffHandler.Rename)
				r.Delete("/{name}", staffHandler.Delete)
			})
		})
	})

	return r
}
