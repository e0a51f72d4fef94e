// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	aboutfeature "github.com/dalemusser/portfolio/internal/app/features/about"
	contactfeature "github.com/dalemusser/portfolio/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/portfolio/internal/app/features/errors"
	healthfeature "github.com/dalemusser/portfolio/internal/app/features/health"
	homefeature "github.com/dalemusser/portfolio/internal/app/features/home"
	portfoliofeature "github.com/dalemusser/portfolio/internal/app/features/portfolio"
	projectdetailfeature "github.com/dalemusser/portfolio/internal/app/features/projectdetail"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/middleware"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/app/system/session"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog loading and the Startup
// hook have completed. It boots the template engine, builds the visitor
// session store and mounts every feature router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessions, err := session.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(routerConfig{
		App:      appCfg,
		Secure:   secure,
		Catalog:  deps.Catalog,
		Sessions: sessions,
		Log:      logger,
	})
}

// routerConfig is everything newRouter needs. Render, when set, replaces the
// template engine for every handler.
type routerConfig struct {
	App      AppConfig
	Secure   bool
	Catalog  catalogstore.Repository
	Sessions *session.Manager
	Log      *zap.Logger
	Render   viewdata.RenderFunc
}

func newRouter(rc routerConfig) (http.Handler, error) {
	logger := rc.Log
	if rc.Catalog == nil {
		return nil, fmt.Errorf("router: catalog is required")
	}

	notifier := notify.NewSessionNotifier(rc.Sessions, logger)
	if err := initSite(rc, notifier); err != nil {
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler(logger)

	homeHandler := homefeature.NewHandler(rc.Catalog, rc.App.FeaturedLimit, errLog, logger)
	aboutHandler := aboutfeature.NewHandler(rc.Catalog, errLog, logger)
	contactHandler := contactfeature.NewHandler(rc.Catalog, contactfeature.NewLogSubmitter(logger), notifier, errLog, logger)
	portfolioHandler := portfoliofeature.NewHandler(rc.Catalog, rc.Sessions, rc.App.PageSize, errLog, logger)
	detailHandler := projectdetailfeature.NewHandler(rc.Catalog, rc.Sessions, errLog, logger)

	if rc.Render != nil {
		errLog.Render = rc.Render
		errorsHandler.Render = rc.Render
		homeHandler.Render = rc.Render
		aboutHandler.Render = rc.Render
		contactHandler.Render = rc.Render
		portfolioHandler.Render = rc.Render
		detailHandler.Render = rc.Render
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders(rc.Secure))
	r.Use(middleware.MaxBytes(rc.App.MaxBodyBytes))
	r.Use(middleware.CSRF(middleware.CSRFKey(rc.App.SessionKey), rc.Secure, http.HandlerFunc(errorsHandler.CSRFFailure)))

	// Set before mounting so feature subrouters inherit them.
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(rc.Catalog, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Pages
	r.Mount("/", homefeature.Routes(homeHandler))
	r.Mount("/about", aboutfeature.Routes(aboutHandler))
	r.Mount("/contact", contactfeature.Routes(contactHandler))
	r.Mount(portfoliofeature.BasePath, portfoliofeature.Routes(portfolioHandler))
	r.Mount(projectdetailfeature.BasePath, projectdetailfeature.Routes(detailHandler))

	return r, nil
}

// initSite publishes the header/footer data every page renders.
func initSite(rc routerConfig, notifier notify.Notifier) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
	defer cancel()

	settings, err := rc.Catalog.Site(ctx)
	if err != nil {
		return fmt.Errorf("load site settings: %w", err)
	}
	if rc.App.SiteName != "" {
		settings.SiteName = rc.App.SiteName
	}
	profile, err := rc.Catalog.Profile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	viewdata.Init(viewdata.Site{
		Settings:  settings,
		OwnerName: profile.Name,
		Notifier:  notifier,
	})
	return nil
}
