package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/google/uuid"
)

// QueriesDB is the dao.QueryRepository of a SQLite store.
type QueriesDB struct {
	db *sql.DB
}

func (repo *QueriesDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS queries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE ON UPDATE CASCADE,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		source TEXT NOT NULL,
		diagnostics TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	return wrapDBError(err)
}

const queryColumns = `id, user_id, name, kind, source, diagnostics, created`

func scanQuery(row scanner) (dao.SavedQuery, error) {
	var q dao.SavedQuery
	var id, owner, diags string
	var created int64

	err := row.Scan(&id, &owner, &q.Name, &q.Kind, &q.Source, &diags, &created)
	if err != nil {
		return dao.SavedQuery{}, wrapDBError(err)
	}

	var cd columnDecoder
	cd.do("id", id, func() error { return convertFromDB_UUID(id, &q.ID) })
	cd.do("user_id", owner, func() error { return convertFromDB_UUID(owner, &q.UserID) })
	cd.do("diagnostics", "(encoded)", func() error { return convertFromDB_Diagnostics(diags, &q.Diagnostics) })
	cd.do("created", created, func() error { return convertFromDB_Time(created, &q.Created) })
	if cd.err != nil {
		return dao.SavedQuery{}, cd.err
	}
	return q, nil
}

// Create inserts a saved query with a new random ID. Its owner must exist or
// dao.ErrConstraintViolation is returned.
func (repo *QueriesDB) Create(ctx context.Context, q dao.SavedQuery) (dao.SavedQuery, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return dao.SavedQuery{}, fmt.Errorf("generate ID: %w", err)
	}

	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO queries (`+queryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		convertToDB_UUID(id), convertToDB_UUID(q.UserID), q.Name, q.Kind, q.Source,
		convertToDB_Diagnostics(q.Diagnostics), convertToDB_Time(time.Now()),
	)
	if err != nil {
		return dao.SavedQuery{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, id)
}

func (repo *QueriesDB) GetByID(ctx context.Context, id uuid.UUID) (dao.SavedQuery, error) {
	return scanQuery(repo.db.QueryRowContext(ctx, `SELECT `+queryColumns+` FROM queries WHERE id = ?;`, convertToDB_UUID(id)))
}

func (repo *QueriesDB) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]dao.SavedQuery, error) {
	return queryAll(ctx, repo.db, scanQuery,
		`SELECT `+queryColumns+` FROM queries WHERE user_id = ? ORDER BY seq;`, convertToDB_UUID(userID))
}

func (repo *QueriesDB) Delete(ctx context.Context, id uuid.UUID) (dao.SavedQuery, error) {
	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return dao.SavedQuery{}, err
	}

	if err := execOne(ctx, repo.db, `DELETE FROM queries WHERE id = ?;`, convertToDB_UUID(id)); err != nil {
		return dao.SavedQuery{}, err
	}
	return existing, nil
}

// Close does nothing. The connection belongs to the store.
func (repo *QueriesDB) Close() error {
	return nil
}
