package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"jacsonsite/models"
	"jacsonsite/store"
)

// DB is the SQLite implementation of store.Store.
type DB struct {
	sql      *sql.DB
	services *catalog
	projects *catalog
}

var _ store.Store = (*DB)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS services (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	short_description TEXT NOT NULL,
	long_description TEXT NOT NULL,
	image_url TEXT NOT NULL,
	version INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	short_description TEXT NOT NULL,
	long_description TEXT NOT NULL,
	image_url TEXT NOT NULL,
	version INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS companies (
	id TEXT PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	logo_url TEXT NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0,
	version INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS home_sections (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	subtitle TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT 'text' CHECK (type IN ('text', 'services', 'companies', 'projects')),
	sort_order INTEGER NOT NULL DEFAULT 0,
	visible INTEGER NOT NULL DEFAULT 1,
	image_url TEXT NOT NULL DEFAULT '',
	version INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS singletons (
	key TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	version INTEGER NOT NULL DEFAULT 1,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Open connects to the SQLite database at dataSourceName and creates the
// tables if they do not exist. ":memory:" gives a private in-memory database.
func Open(dataSourceName string) (*DB, error) {
	dsn := strings.TrimPrefix(dataSourceName, "sqlite://")
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serializes writers anyway, and an in-memory database only
	// exists on the connection that created it.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &DB{
		sql:      conn,
		services: &catalog{db: conn, table: "services"},
		projects: &catalog{db: conn, table: "projects"},
	}, nil
}

func (d *DB) Services() store.Catalog { return d.services }
func (d *DB) Projects() store.Catalog { return d.projects }

func (d *DB) Ping(ctx context.Context) error { return d.sql.PingContext(ctx) }
func (d *DB) Close() error                   { return d.sql.Close() }

func (d *DB) CountUsers(ctx context.Context) (int, error) {
	return count(ctx, d.sql, "users")
}

func (d *DB) CreateUser(ctx context.Context, u *models.User) error {
	_, err := d.sql.ExecContext(ctx, "INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	return translate(err)
}

func (d *DB) UserByID(ctx context.Context, id string) (models.User, error) {
	return d.userWhere(ctx, "id = ?", id)
}

func (d *DB) UserByUsername(ctx context.Context, username string) (models.User, error) {
	return d.userWhere(ctx, "username = ?", username)
}

func (d *DB) userWhere(ctx context.Context, cond string, arg any) (models.User, error) {
	var u models.User
	err := d.sql.QueryRowContext(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE "+cond, arg).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, translate(err)
}

func (d *DB) SetPasswordHash(ctx context.Context, id, hash string) error {
	res, err := d.sql.ExecContext(ctx, "UPDATE users SET password_hash = ? WHERE id = ?", hash, id)
	if err != nil {
		return err
	}
	return affected(res)
}

func count(ctx context.Context, q *sql.DB, table string) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	var se sqlite3.Error
	if errors.As(err, &se) && (se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}
	return err
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// staleOrMissing explains a conditional update that touched no rows.
func staleOrMissing(ctx context.Context, q *sql.DB, table, keyColumn, key string) error {
	var n int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE "+keyColumn+" = ?", key).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return store.ErrConflict
}
