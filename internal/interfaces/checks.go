package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/services"
)

// =============================================================================
// Catalog Operations
// =============================================================================

var _ services.CatalogService = (*services.Catalog)(nil)
var _ services.BookReader = (*services.Catalog)(nil)
var _ services.BookWriter = (*services.Catalog)(nil)
var _ services.AuthorWriter = (*services.Catalog)(nil)
var _ services.CategoryWriter = (*services.Catalog)(nil)

// =============================================================================
// Logging
// =============================================================================

var _ gormlogger.Interface = (*logging.GormLogger)(nil)
