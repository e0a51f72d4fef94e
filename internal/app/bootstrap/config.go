// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/limits"
	"github.com/dalemusser/portfolio/internal/app/system/paging"
	"github.com/dalemusser/portfolio/internal/app/system/session"
	"github.com/dalemusser/waffle/config"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the portfolio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_key, catalog_path, etc.
//   - Environment variables: PORTFOLIO_SESSION_KEY, PORTFOLIO_CATALOG_PATH, etc.
//   - Command-line flags: --session_key, --catalog_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: "", Desc: "Session signing key (32+ random chars; generated in dev when blank)"},
	{Name: "session_name", Default: session.DefaultName, Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "720h", Desc: "Visitor session lifetime (e.g., 24h, 720h)"},

	{Name: "catalog_path", Default: "", Desc: "Path to a portfolio YAML catalog (blank uses the embedded catalog)"},

	{Name: "site_name", Default: "", Desc: "Site name shown in the header (blank uses the catalog's)"},
	{Name: "page_size", Default: paging.PageSize, Desc: "Projects per portfolio page"},
	{Name: "featured_limit", Default: 3, Desc: "Featured projects shown on the home page"},

	{Name: "max_body_bytes", Default: limits.MaxFormSize, Desc: "Maximum request body size in bytes"},
	{Name: "submit_timeout", Default: "15s", Desc: "Contact form submission timeout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PORTFOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 30*24*time.Hour),

		CatalogPath: appValues.String("catalog_path"),

		SiteName:      appValues.String("site_name"),
		PageSize:      appValues.Int("page_size"),
		FeaturedLimit: appValues.Int("featured_limit"),

		MaxBodyBytes:  int64(appValues.Int("max_body_bytes")),
		SubmitTimeout: appValues.Duration("submit_timeout", 15*time.Second),
	}

	// Dev convenience: a throwaway key so the site runs with no setup.
	// Sessions do not survive a restart with a generated key.
	if appCfg.SessionKey == "" && coreCfg.Env == "dev" {
		appCfg.SessionKey = devSessionKey()
		logger.Warn("session_key not set; generated a temporary key for dev")
	}

	return coreCfg, appCfg, nil
}

func devSessionKey() string {
	return hex.EncodeToString(securecookie.GenerateRandomKey(32))
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	var errs []error
	if appCfg.SessionKey == "" {
		errs = append(errs, errors.New("session_key is required"))
	}
	if appCfg.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page_size must be at least 1, got %d", appCfg.PageSize))
	}
	if appCfg.FeaturedLimit < 0 {
		errs = append(errs, fmt.Errorf("featured_limit must not be negative, got %d", appCfg.FeaturedLimit))
	}
	if appCfg.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("max_body_bytes must be positive, got %d", appCfg.MaxBodyBytes))
	}
	if appCfg.CatalogPath != "" {
		if _, err := os.Stat(appCfg.CatalogPath); err != nil {
			errs = append(errs, fmt.Errorf("catalog_path: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}
