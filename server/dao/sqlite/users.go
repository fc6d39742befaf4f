package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/google/uuid"
)

// UsersDB is the dao.UserRepository of a SQLite store.
type UsersDB struct {
	db *sql.DB
}

func (repo *UsersDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role INTEGER NOT NULL,
		email TEXT NOT NULL,
		created INTEGER NOT NULL,
		modified INTEGER NOT NULL,
		last_logout_time INTEGER NOT NULL,
		last_login_time INTEGER NOT NULL
	);`)
	return wrapDBError(err)
}

const userColumns = `id, username, password, role, email, created, modified, last_logout_time, last_login_time`

func scanUser(row scanner) (dao.User, error) {
	var u dao.User
	var id, email string
	var role, created, modified, logout, login int64

	err := row.Scan(&id, &u.Username, &u.Password, &role, &email, &created, &modified, &logout, &login)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}

	var cd columnDecoder
	cd.do("id", id, func() error { return convertFromDB_UUID(id, &u.ID) })
	cd.do("role", role, func() error { return convertFromDB_Role(role, &u.Role) })
	cd.do("email", email, func() error { return convertFromDB_Email(email, &u.Email) })
	cd.do("created", created, func() error { return convertFromDB_Time(created, &u.Created) })
	cd.do("modified", modified, func() error { return convertFromDB_Time(modified, &u.Modified) })
	cd.do("last_logout_time", logout, func() error { return convertFromDB_Time(logout, &u.LastLogoutTime) })
	cd.do("last_login_time", login, func() error { return convertFromDB_Time(login, &u.LastLoginTime) })
	if cd.err != nil {
		return dao.User{}, cd.err
	}
	return u, nil
}

// Create inserts a user with a new random ID. A new user counts as logged out
// at the moment of creation and has never logged in.
func (repo *UsersDB) Create(ctx context.Context, user dao.User) (dao.User, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return dao.User{}, fmt.Errorf("generate ID: %w", err)
	}

	now := convertToDB_Time(time.Now())
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		convertToDB_UUID(id), user.Username, user.Password, convertToDB_Role(user.Role),
		convertToDB_Email(user.Email), now, now, now, convertToDB_Time(time.Time{}),
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, id)
}

func (repo *UsersDB) GetAll(ctx context.Context) ([]dao.User, error) {
	return queryAll(ctx, repo.db, scanUser, `SELECT `+userColumns+` FROM users ORDER BY id;`)
}

func (repo *UsersDB) GetByUsername(ctx context.Context, username string) (dao.User, error) {
	return scanUser(repo.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?;`, username))
}

func (repo *UsersDB) GetByID(ctx context.Context, id uuid.UUID) (dao.User, error) {
	return scanUser(repo.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?;`, convertToDB_UUID(id)))
}

// Update replaces every column except created. Changing the ID cascades to
// the user's saved queries.
func (repo *UsersDB) Update(ctx context.Context, id uuid.UUID, user dao.User) (dao.User, error) {
	err := execOne(ctx, repo.db,
		`UPDATE users SET id=?, username=?, password=?, role=?, email=?, modified=?, last_logout_time=?, last_login_time=? WHERE id=?;`,
		convertToDB_UUID(user.ID), user.Username, user.Password, convertToDB_Role(user.Role),
		convertToDB_Email(user.Email), convertToDB_Time(time.Now()),
		convertToDB_Time(user.LastLogoutTime), convertToDB_Time(user.LastLoginTime),
		convertToDB_UUID(id),
	)
	if err != nil {
		return dao.User{}, err
	}

	return repo.GetByID(ctx, user.ID)
}

func (repo *UsersDB) Delete(ctx context.Context, id uuid.UUID) (dao.User, error) {
	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return dao.User{}, err
	}

	if err := execOne(ctx, repo.db, `DELETE FROM users WHERE id = ?;`, convertToDB_UUID(id)); err != nil {
		return dao.User{}, err
	}
	return existing, nil
}

// Close does nothing. The connection belongs to the store.
func (repo *UsersDB) Close() error {
	return nil
}
