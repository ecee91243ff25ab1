package db

import (
	"context"
	"path/filepath"
	"testing"

	"jacsonsite/models"
	"jacsonsite/store"
	"jacsonsite/store/storetest"
)

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		d, err := Open(":memory:")
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		t.Cleanup(func() { d.Close() })
		return d
	})
}

func TestOpenCreatesTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_jacson.db")

	d, err := Open("sqlite://" + dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer d.Close()

	for _, table := range []string{"users", "services", "projects", "companies", "home_sections", "singletons"} {
		var count int
		if err := d.sql.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("Could not query %s table: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	d, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := d.CreateSingleton(ctx, models.HeroKey, models.HeroContent{MainTitle: "jacson"}); err != nil {
		t.Fatalf("CreateSingleton failed: %v", err)
	}
	d.Close()

	d, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer d.Close()

	var hero models.HeroContent
	if _, err := d.LoadSingleton(ctx, models.HeroKey, &hero); err != nil {
		t.Fatalf("LoadSingleton failed: %v", err)
	}
	if hero.MainTitle != "jacson" {
		t.Errorf("Expected mainTitle 'jacson', got %q", hero.MainTitle)
	}
}

func TestSectionTypeConstraint(t *testing.T) {
	d, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer d.Close()

	s := models.Section{ID: "bad", Title: "x", Type: "banner"}
	if err := d.InsertSection(context.Background(), &s); err == nil {
		t.Error("InsertSection accepted an unknown section type")
	}
}
