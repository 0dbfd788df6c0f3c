package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strataworks/website-api/internal/auth"
	"github.com/strataworks/website-api/internal/handler"
	mw "github.com/strataworks/website-api/internal/middleware"
)

func New(
	allowedOrigin string,
	intranetSecret string,
	throttle *mw.LimiterStore,
	careersH *handler.CareersHandler,
	contentH *handler.ContentHandler,
	intranetH *handler.IntranetHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware. CORS runs before routing so OPTIONS preflights and
	// error responses both carry the header set.
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(allowedOrigin))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public surface
		r.Group(func(r chi.Router) {
			r.Use(mw.Throttle(throttle))

			r.Get("/content", contentH.Content)
			r.Get("/solutions", contentH.Solutions)
			r.Get("/partners", contentH.Partners)

			r.Get("/careers/jobs", careersH.Jobs)
			r.Post("/careers/apply", careersH.Apply)
			r.Post("/careers/applications", careersH.RecordApplication)
		})

		// Employee intranet
		r.Route("/intranet", func(r chi.Router) {
			r.Use(auth.Middleware(intranetSecret))

			r.Get("/employees", intranetH.Employees)
			r.HandleFunc("/profile", intranetH.Profile)
			r.HandleFunc("/resources", intranetH.Resources)
			r.HandleFunc("/projects", intranetH.Projects)
		})
	})

	return r
}
