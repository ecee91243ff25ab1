package db

import (
	"context"
	"database/sql"

	"jacsonsite/models"
)

type catalog struct {
	db    *sql.DB
	table string
}

const catalogColumns = "id, title, short_description, long_description, image_url, version, created_at"

func scanItem(row interface{ Scan(...any) error }) (models.CatalogItem, error) {
	var it models.CatalogItem
	err := row.Scan(&it.ID, &it.Title, &it.ShortDescription, &it.LongDescription, &it.ImageURL, &it.Version, &it.CreatedAt)
	return it, err
}

func (c *catalog) Count(ctx context.Context) (int, error) {
	return count(ctx, c.db, c.table)
}

func (c *catalog) List(ctx context.Context) ([]models.CatalogItem, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT "+catalogColumns+" FROM "+c.table+" ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CatalogItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (c *catalog) Get(ctx context.Context, id string) (models.CatalogItem, error) {
	it, err := scanItem(c.db.QueryRowContext(ctx, "SELECT "+catalogColumns+" FROM "+c.table+" WHERE id = ?", id))
	return it, translate(err)
}

func (c *catalog) Insert(ctx context.Context, it *models.CatalogItem) error {
	_, err := c.db.ExecContext(ctx, "INSERT INTO "+c.table+" ("+catalogColumns+") VALUES (?, ?, ?, ?, ?, 1, ?)",
		it.ID, it.Title, it.ShortDescription, it.LongDescription, it.ImageURL, it.CreatedAt)
	if err != nil {
		return translate(err)
	}
	it.Version = 1
	return nil
}

func (c *catalog) Update(ctx context.Context, it *models.CatalogItem) error {
	res, err := c.db.ExecContext(ctx,
		"UPDATE "+c.table+" SET title = ?, short_description = ?, long_description = ?, image_url = ?, version = version + 1 WHERE id = ? AND version = ?",
		it.Title, it.ShortDescription, it.LongDescription, it.ImageURL, it.ID, it.Version)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return staleOrMissing(ctx, c.db, c.table, "id", it.ID)
	}
	it.Version++
	return nil
}

func (c *catalog) Delete(ctx context.Context, id string) error {
	res, err := c.db.ExecContext(ctx, "DELETE FROM "+c.table+" WHERE id = ?", id)
	if err != nil {
		return err
	}
	return affected(res)
}
