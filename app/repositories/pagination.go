// Package repositories holds the data-access layer. Every repository is
// constructed with the *gorm.DB it should use, so tests can run the whole
// stack against in-memory sqlite.
package repositories

import "gorm.io/gorm"

// Pagination describes one page of a list result.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// paginate counts query, applies offset/limit, and scans into dest.
// query must already carry its Model and Where clauses.
func paginate(query *gorm.DB, dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	if err := query.Offset((page - 1) * limit).Limit(limit).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}, nil
}
