package queries

import (
	"context"

	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// isoDateLayout is how calendar bounds are passed to PostgreSQL.
const isoDateLayout = "2006-01-02"

// ListOrdersQueryHandler reads presentation records, canceled orders included,
// sorted by identifier.
type ListOrdersQueryHandler struct {
	db   *gorm.DB
	mode DateRangeMode
}

// NewListOrdersQueryHandler creates the handler. An empty mode means DateRangeLexical.
func NewListOrdersQueryHandler(db *gorm.DB, mode DateRangeMode) ListOrdersQueryHandler {
	if mode == "" {
		mode = DateRangeLexical
	}
	return ListOrdersQueryHandler{db: db, mode: mode}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `SELECT ` + orderColumns + ` FROM orders`
	var args []any

	if query.HasRange() {
		switch h.mode {
		case DateRangeCalendar:
			start, end := query.Bounds()
			stmt += ` WHERE to_date(creation_date, 'DD/MM/YYYY') BETWEEN CAST(? AS date) AND CAST(? AS date)`
			args = append(args, start.Time().Format(isoDateLayout), end.Time().Format(isoDateLayout))
		default:
			start, end := query.RawBounds()
			stmt += ` WHERE creation_date COLLATE "C" >= ? AND creation_date COLLATE "C" <= ?`
			args = append(args, start, end)
		}
	}

	stmt += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("list orders", err)
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return nil, errs.NewStorageUnavailableError("list orders", err)
	}

	return views, nil
}
