package persistence

import (
	"strings"

	"github.com/agreements/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// validateSortOrder normalizes the sort direction to ASC or DESC.
// DESC is the default for invalid or empty input.
func validateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// validateSortField checks the sort field against a whitelist of allowed
// columns. Falls back to created_at so callers can never inject arbitrary
// SQL through OrderBy.
func validateSortField(sortField string, allowedFields map[string]bool) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed != "" && allowedFields[trimmed] {
		return trimmed
	}
	return "created_at"
}

// commonSortFields contains columns common to every model
var commonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// sortFields merges the common columns with model-specific ones
func sortFields(extra ...string) map[string]bool {
	fields := make(map[string]bool, len(commonSortFields)+len(extra))
	for field := range commonSortFields {
		fields[field] = true
	}
	for _, field := range extra {
		fields[field] = true
	}
	return fields
}

// applyFilter applies pagination and whitelisted ordering to a query
func applyFilter(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	field := validateSortField(filter.OrderBy, allowedFields)
	return query.Order(field + " " + validateSortOrder(filter.OrderDir))
}
