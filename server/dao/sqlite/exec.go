package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dekarrin/marlin/server/dao"
)

// scanner is the part of *sql.Row and *sql.Rows used to read a record.
type scanner interface {
	Scan(dest ...any) error
}

// execOne runs a statement that must touch at least one row. If none are
// touched, dao.ErrNotFound is returned.
func execOne(ctx context.Context, db *sql.DB, stmt string, args ...any) error {
	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return wrapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapDBError(err)
	}
	if n < 1 {
		return dao.ErrNotFound
	}
	return nil
}

// queryAll runs a query and reads every row it returns with scan.
func queryAll[E any](ctx context.Context, db *sql.DB, scan func(scanner) (E, error), stmt string, args ...any) ([]E, error) {
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []E
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return all, err
		}
		all = append(all, e)
	}
	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}
	return all, nil
}

// columnDecoder collects the first error from a series of column
// conversions so a scan function can check once at the end.
type columnDecoder struct {
	err error
}

func (cd *columnDecoder) do(column string, raw any, convert func() error) {
	if cd.err != nil {
		return
	}
	if err := convert(); err != nil {
		cd.err = fmt.Errorf("stored %s %v is invalid: %w", column, raw, err)
	}
}
