// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
)

// DBDeps holds the backing stores for the app. The portfolio's only
// backend is the read-only project catalog.
type DBDeps struct {
	Catalog *catalogstore.Store
}
