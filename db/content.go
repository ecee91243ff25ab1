package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jacsonsite/models"
	"jacsonsite/store"
)

const companyColumns = "id, name, logo_url, sort_order, version, created_at"

func scanCompany(row interface{ Scan(...any) error }) (models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Order, &c.Version, &c.CreatedAt)
	return c, err
}

func (d *DB) CountCompanies(ctx context.Context) (int, error) {
	return count(ctx, d.sql, "companies")
}

func (d *DB) ListCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT "+companyColumns+" FROM companies ORDER BY sort_order, rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (d *DB) GetCompany(ctx context.Context, id string) (models.Company, error) {
	c, err := scanCompany(d.sql.QueryRowContext(ctx, "SELECT "+companyColumns+" FROM companies WHERE id = ?", id))
	return c, translate(err)
}

func (d *DB) InsertCompany(ctx context.Context, c *models.Company) error {
	_, err := d.sql.ExecContext(ctx, "INSERT INTO companies ("+companyColumns+") VALUES (?, ?, ?, ?, 1, ?)",
		c.ID, c.Name, c.LogoURL, c.Order, c.CreatedAt)
	if err != nil {
		return translate(err)
	}
	c.Version = 1
	return nil
}

func (d *DB) UpdateCompany(ctx context.Context, c *models.Company) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE companies SET name = ?, logo_url = ?, sort_order = ?, version = version + 1 WHERE id = ? AND version = ?",
		c.Name, c.LogoURL, c.Order, c.ID, c.Version)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return staleOrMissing(ctx, d.sql, "companies", "id", c.ID)
	}
	c.Version++
	return nil
}

func (d *DB) DeleteCompany(ctx context.Context, id string) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM companies WHERE id = ?", id)
	if err != nil {
		return err
	}
	return affected(res)
}

const sectionColumns = "id, title, subtitle, content, type, sort_order, visible, image_url, version, created_at"

func scanSection(row interface{ Scan(...any) error }) (models.Section, error) {
	var s models.Section
	err := row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Content, &s.Type, &s.Order, &s.Visible, &s.ImageURL, &s.Version, &s.CreatedAt)
	return s, err
}

func (d *DB) CountSections(ctx context.Context) (int, error) {
	return count(ctx, d.sql, "home_sections")
}

func (d *DB) ListSections(ctx context.Context, visibleOnly bool) ([]models.Section, error) {
	query := "SELECT " + sectionColumns + " FROM home_sections"
	if visibleOnly {
		query += " WHERE visible = 1"
	}
	query += " ORDER BY sort_order, rowid"

	rows, err := d.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (d *DB) GetSection(ctx context.Context, id string) (models.Section, error) {
	s, err := scanSection(d.sql.QueryRowContext(ctx, "SELECT "+sectionColumns+" FROM home_sections WHERE id = ?", id))
	return s, translate(err)
}

func (d *DB) InsertSection(ctx context.Context, s *models.Section) error {
	_, err := d.sql.ExecContext(ctx, "INSERT INTO home_sections ("+sectionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?)",
		s.ID, s.Title, s.Subtitle, s.Content, s.Type, s.Order, s.Visible, s.ImageURL, s.CreatedAt)
	if err != nil {
		return translate(err)
	}
	s.Version = 1
	return nil
}

func (d *DB) UpdateSection(ctx context.Context, s *models.Section) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE home_sections SET title = ?, subtitle = ?, content = ?, sort_order = ?, visible = ?, image_url = ?, version = version + 1 WHERE id = ? AND version = ?",
		s.Title, s.Subtitle, s.Content, s.Order, s.Visible, s.ImageURL, s.ID, s.Version)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return staleOrMissing(ctx, d.sql, "home_sections", "id", s.ID)
	}
	s.Version++
	return nil
}

func (d *DB) DeleteSection(ctx context.Context, id string) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM home_sections WHERE id = ?", id)
	if err != nil {
		return err
	}
	return affected(res)
}

func (d *DB) LoadSingleton(ctx context.Context, key string, dst any) (int, error) {
	var data string
	var version int
	err := d.sql.QueryRowContext(ctx, "SELECT data, version FROM singletons WHERE key = ?", key).Scan(&data, &version)
	if err != nil {
		return 0, translate(err)
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return 0, fmt.Errorf("decoding %s: %w", key, err)
	}
	return version, nil
}

func (d *DB) CreateSingleton(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx, "INSERT INTO singletons (key, data, version, updated_at) VALUES (?, ?, 1, ?)",
		key, string(data), time.Now().UTC())
	return translate(err)
}

func (d *DB) SaveSingleton(ctx context.Context, key string, doc any, version int) (int, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}
	res, err := d.sql.ExecContext(ctx,
		"UPDATE singletons SET data = ?, version = version + 1, updated_at = ? WHERE key = ? AND version = ?",
		string(data), time.Now().UTC(), key, version)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, staleOrMissing(ctx, d.sql, "singletons", "key", key)
	}
	return version + 1, nil
}

var _ store.Singletons = (*DB)(nil)
