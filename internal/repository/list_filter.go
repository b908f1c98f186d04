package repository

import (
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"gorm.io/gorm"
)

// applyListFilter orders by column DESC, id DESC and applies the time range,
// cursor and limit of filter. One extra row is fetched so callers can tell
// whether another page exists.
func applyListFilter(query *gorm.DB, column string, filter domain.ListFilter) *gorm.DB {
	query = query.Order(column + " DESC").Order("id DESC")

	if filter.From != nil {
		query = query.Where(column+" >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where(column+" <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"("+column+" < ?) OR ("+column+" = ? AND id < ?)",
				cursor.At, cursor.At, cursor.ID,
			)
		}
	}

	return query.Limit(pagination.NormalizeLimit(filter.Limit) + 1)
}
