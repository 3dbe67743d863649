package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	"ticklist/internal/domain"
	tlerrors "ticklist/internal/errors"
)

// sqliteClient persists lists, items, and categories in a local SQLite
// database. Item order is stored as an explicit position column derived
// from slice order on every UpdateList.
type sqliteClient struct {
	dsn string
}

// NewSQLiteClient constructs a Client backed by the database at dbPath,
// creating the schema on first use.
func NewSQLiteClient(dbPath string) (Client, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, tlerrors.New(tlerrors.CodeConfigurationError, "database path is required", nil)
	}
	c := &sqliteClient{dsn: buildSQLiteDSN(trimmed)}
	if err := c.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// buildSQLiteDSN creates a WAL DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	q.Set("cache", "shared")
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *sqliteClient) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

func (c *sqliteClient) ensureSchema(ctx context.Context) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS lists (
			id       TEXT PRIMARY KEY,
			title    TEXT NOT NULL,
			color    TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			kind     TEXT NOT NULL DEFAULT 'list'
		);
		CREATE TABLE IF NOT EXISTS items (
			id        TEXT PRIMARY KEY,
			list_id   TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
			position  INTEGER NOT NULL,
			text      TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_items_list ON items(list_id, position);
		CREATE TABLE IF NOT EXISTS categories (
			name  TEXT PRIMARY KEY,
			color TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (c *sqliteClient) Lists(ctx context.Context) ([]domain.List, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `SELECT id, title, color, category FROM lists ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var lists []domain.List
	for rows.Next() {
		var l domain.List
		if err := rows.Scan(&l.ID, &l.Title, &l.Color, &l.Category); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range lists {
		items, err := c.loadItems(ctx, db, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}
	return lists, nil
}

func (c *sqliteClient) GetList(ctx context.Context, id string) (domain.List, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return domain.List{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	var l domain.List
	row := db.QueryRowContext(ctx, `SELECT id, title, color, category FROM lists WHERE id = ?`, id)
	if err := row.Scan(&l.ID, &l.Title, &l.Color, &l.Category); err != nil {
		if err == sql.ErrNoRows {
			return domain.List{}, tlerrors.New(tlerrors.CodeNotFound, fmt.Sprintf("list %s not found", id), err)
		}
		return domain.List{}, fmt.Errorf("scan list: %w", err)
	}
	items, err := c.loadItems(ctx, db, id)
	if err != nil {
		return domain.List{}, err
	}
	l.Items = items
	return l, nil
}

func (c *sqliteClient) loadItems(ctx context.Context, db *sql.DB, listID string) ([]domain.Item, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, text, completed
		FROM items
		WHERE list_id = ?
		ORDER BY position
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		var completed int
		if err := rows.Scan(&it.ID, &it.Text, &completed); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Completed = completed != 0
		items = append(items, it)
	}
	return items, rows.Err()
}

func (c *sqliteClient) CreateList(ctx context.Context, list domain.List) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	_, err = db.ExecContext(ctx, `INSERT INTO lists (id, title, color, category) VALUES (?, ?, ?, ?)`,
		list.ID, list.Title, list.Color, list.Category)
	if err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "create list", err)
	}
	return c.writeItems(ctx, db, list)
}

// UpdateList replaces the stored list snapshot. Items are rewritten in a
// single transaction with positions taken from slice order.
func (c *sqliteClient) UpdateList(ctx context.Context, list domain.List) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	res, err := db.ExecContext(ctx, `UPDATE lists SET title = ?, color = ?, category = ? WHERE id = ?`,
		list.Title, list.Color, list.Category, list.ID)
	if err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "update list", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return tlerrors.New(tlerrors.CodeNotFound, fmt.Sprintf("list %s not found", list.ID), nil)
	}
	return c.writeItems(ctx, db, list)
}

func (c *sqliteClient) writeItems(ctx context.Context, db *sql.DB, list domain.List) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "begin items tx", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE list_id = ?`, list.ID); err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "clear items", err)
	}
	for pos, it := range list.Items {
		completed := 0
		if it.Completed {
			completed = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, list_id, position, text, completed)
			VALUES (?, ?, ?, ?, ?)
		`, it.ID, list.ID, pos, it.Text, completed); err != nil {
			return tlerrors.New(tlerrors.CodePersistenceFailed, "insert item", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "commit items", err)
	}
	return nil
}

func (c *sqliteClient) DeleteList(ctx context.Context, id string) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id); err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "delete list", err)
	}
	return nil
}

func (c *sqliteClient) Categories(ctx context.Context) ([]domain.Category, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `SELECT name, color FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var cats []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.Name, &cat.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (c *sqliteClient) AddCategory(ctx context.Context, cat domain.Category) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	_, err = db.ExecContext(ctx, `INSERT OR IGNORE INTO categories (name, color) VALUES (?, ?)`,
		cat.Name, cat.Color)
	if err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "add category", err)
	}
	return nil
}

func (c *sqliteClient) UpdateCategoryColor(ctx context.Context, name, color string) error {
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	res, err := db.ExecContext(ctx, `UPDATE categories SET color = ? WHERE name = ?`, color, name)
	if err != nil {
		return tlerrors.New(tlerrors.CodePersistenceFailed, "update category color", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return tlerrors.New(tlerrors.CodeNotFound, fmt.Sprintf("category %s not found", name), nil)
	}
	return nil
}
