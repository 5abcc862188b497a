package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/malith-nethsiri/valuerpro-backend/api/controllers"
	"github.com/malith-nethsiri/valuerpro-backend/api/middleware"
	"github.com/malith-nethsiri/valuerpro-backend/internal/applicants"
	"github.com/malith-nethsiri/valuerpro-backend/internal/auth"
	"github.com/malith-nethsiri/valuerpro-backend/internal/comparables"
	"github.com/malith-nethsiri/valuerpro-backend/internal/legalaspects"
	"github.com/malith-nethsiri/valuerpro-backend/internal/photos"
	"github.com/malith-nethsiri/valuerpro-backend/internal/properties"
	"github.com/malith-nethsiri/valuerpro-backend/internal/reports"
	"github.com/malith-nethsiri/valuerpro-backend/internal/uploads"
	"github.com/malith-nethsiri/valuerpro-backend/internal/valuations"
	"github.com/malith-nethsiri/valuerpro-backend/internal/valuerprofile"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/config"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/metrics"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	userLoader middleware.UserLoader,
	authService auth.Service,
	reportService reports.Service,
	propertyService properties.Service,
	valuationService valuations.Service,
	comparableService comparables.Service,
	photoService photos.Service,
	legalAspectService legalaspects.Service,
	applicantService applicants.Service,
	profileService valuerprofile.Service,
	uploadService uploads.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	// Redis is optional; without it the auth endpoints run unthrottled.
	authLimiter := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if redisClient == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.AuthRateLimit(policy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		if redisClient != nil {
			r.Get("/ready", controllers.HealthReady(dbP, redisClient, logg))
		} else {
			r.Get("/ready", controllers.HealthReady(dbP, nil, logg))
		}
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	// Stored upload files are public-relative and served read-only.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Upload.Dir))))

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(authLimiter(registerPolicy)).Post("/register", controllers.Register(authService, logg))
		r.With(authLimiter(loginPolicy)).Post("/login", controllers.Login(authService, logg))
		r.Post("/logout", controllers.Logout(logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, userLoader, logg))
			r.Get("/me", controllers.Me(authService, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, userLoader, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", controllers.CreateReport(reportService, logg))
			r.Get("/", controllers.ListReports(reportService, logg))
			r.Get("/{reportID}", controllers.GetReport(reportService, logg))
			r.Put("/{reportID}", controllers.UpdateReport(reportService, logg))
			r.Delete("/{reportID}", controllers.DeleteReport(reportService, logg))
			r.Post("/{reportID}/generate-pdf", controllers.GenerateReportPDF(reportService, logg))
			r.Post("/{reportID}/generate-docx", controllers.GenerateReportDocx(reportService, logg))
		})

		r.Route("/properties", func(r chi.Router) {
			r.Post("/", controllers.CreateProperty(propertyService, logg))
			r.Get("/", controllers.GetProperty(propertyService, logg))
			r.Put("/{propertyID}", controllers.UpdateProperty(propertyService, logg))
			r.Delete("/{propertyID}", controllers.DeleteProperty(propertyService, logg))
		})

		r.Route("/valuations", func(r chi.Router) {
			r.Post("/", controllers.CreateValuation(valuationService, logg))
			r.Get("/", controllers.GetValuation(valuationService, logg))
			r.Put("/{valuationID}", controllers.UpdateValuation(valuationService, logg))
			r.Delete("/{valuationID}", controllers.DeleteValuation(valuationService, logg))
		})

		r.Route("/comparables", func(r chi.Router) {
			r.Post("/", controllers.CreateComparable(comparableService, logg))
			r.Get("/", controllers.ListComparables(comparableService, logg))
			r.Put("/{comparableID}", controllers.UpdateComparable(comparableService, logg))
			r.Delete("/{comparableID}", controllers.DeleteComparable(comparableService, logg))
		})

		r.Route("/photos", func(r chi.Router) {
			r.Post("/", controllers.CreatePhoto(photoService, logg))
			r.Get("/", controllers.ListPhotos(photoService, logg))
			r.Put("/{photoID}", controllers.UpdatePhoto(photoService, logg))
			r.Delete("/{photoID}", controllers.DeletePhoto(photoService, logg))
		})

		r.Route("/legal-aspects", func(r chi.Router) {
			r.Post("/", controllers.CreateLegalAspect(legalAspectService, logg))
			r.Get("/", controllers.ListLegalAspects(legalAspectService, logg))
			r.Put("/{legalID}", controllers.UpdateLegalAspect(legalAspectService, logg))
			r.Delete("/{legalID}", controllers.DeleteLegalAspect(legalAspectService, logg))
		})

		r.Route("/applicants", func(r chi.Router) {
			r.Post("/", controllers.CreateApplicant(applicantService, logg))
			r.Get("/", controllers.ListApplicants(applicantService, logg))
			r.Put("/{applicantID}", controllers.UpdateApplicant(applicantService, logg))
			r.Delete("/{applicantID}", controllers.DeleteApplicant(applicantService, logg))
		})

		r.Route("/valuer-profile", func(r chi.Router) {
			r.Get("/", controllers.GetValuerProfile(profileService, logg))
			r.Post("/", controllers.CreateValuerProfile(profileService, logg))
			r.Put("/", controllers.UpdateValuerProfile(profileService, logg))
			r.Post("/create-applicant", controllers.CreateApplicantFromProfile(profileService, logg))
		})

		r.Route("/upload", func(r chi.Router) {
			r.Post("/single", controllers.UploadSingle(uploadService, cfg.Upload, logg))
			r.Post("/multiple", controllers.UploadMultiple(uploadService, cfg.Upload, logg))
		})

		r.Route("/ocr", func(r chi.Router) {
			r.Post("/extract_text", controllers.ExtractText(logg))
			r.Post("/extract_doc_text", controllers.ExtractDocumentText(logg))
			r.Post("/extract_sinhala_text", controllers.ExtractSinhalaText(logg))
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/parse_survey_plan", controllers.ParseSurveyPlan(logg))
			r.Post("/parse_deed_doc", controllers.ParseDeedDocument(logg))
			r.Post("/parse_applicant", controllers.ParseApplicant(logg))
			r.Post("/translate_si_to_en", controllers.TranslateSinhalaToEnglish(logg))
		})

		r.Route("/maps", func(r chi.Router) {
			r.Post("/geocode", controllers.Geocode(logg))
			r.Post("/reverse-geocode", controllers.ReverseGeocode(logg))
			r.Post("/directions", controllers.Directions(logg))
			r.Post("/static-map", controllers.StaticMap(logg))
		})
	})

	return r
}
