// Package seed fills an empty database with the defaults of a fresh
// install. Collections that already hold data are never touched.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"jacsonsite/auth"
	"jacsonsite/models"
	"jacsonsite/store"
)

// Run inserts the defaults into every empty collection. It is safe to call
// on every start.
func Run(ctx context.Context, st store.Store, users *auth.Service) error {
	steps := []struct {
		name string
		fn   func(context.Context, store.Store, *auth.Service) error
	}{
		{"admin user", seedAdmin},
		{"services", seedServices},
		{"hero content", seedSingleton(models.HeroKey, hero)},
		{"home page sections", seedSections},
		{"about page content", seedSingleton(models.AboutKey, about)},
		{"site settings", seedSingleton(models.SettingsKey, DefaultSettings)},
		{"companies", seedCompanies},
	}
	for _, step := range steps {
		if err := step.fn(ctx, st, users); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
	}

	if n, err := st.Projects().Count(ctx); err == nil && n == 0 {
		log.Println("No projects found, project collection is empty.")
	}
	return nil
}

func seedAdmin(ctx context.Context, st store.Store, users *auth.Service) error {
	n, err := st.CountUsers(ctx)
	if err != nil || n > 0 {
		return err
	}
	log.Println("No users found, creating default admin user...")
	if _, err := users.CreateUser(ctx, AdminUsername, AdminPassword); err != nil {
		return err
	}
	log.Printf("WARNING: Admin user '%s' created with the default password. Change it after the first login.", AdminUsername)
	return nil
}

func seedServices(ctx context.Context, st store.Store, _ *auth.Service) error {
	c := st.Services()
	n, err := c.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	log.Println("No services found, seeding services...")
	now := time.Now().UTC()
	for i, s := range services {
		item := s
		item.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		if err := c.Insert(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}

func seedSections(ctx context.Context, st store.Store, _ *auth.Service) error {
	n, err := st.CountSections(ctx)
	if err != nil || n > 0 {
		return err
	}
	log.Println("No home page sections found, seeding...")
	now := time.Now().UTC()
	for i, s := range sections {
		sec := s
		sec.ID = uuid.NewString()
		sec.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		if err := st.InsertSection(ctx, &sec); err != nil {
			return err
		}
	}
	return nil
}

func seedCompanies(ctx context.Context, st store.Store, _ *auth.Service) error {
	n, err := st.CountCompanies(ctx)
	if err != nil || n > 0 {
		return err
	}
	log.Println("No companies found, seeding companies...")
	now := time.Now().UTC()
	for i, c := range companies {
		company := c
		company.ID = uuid.NewString()
		company.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		if err := st.InsertCompany(ctx, &company); err != nil {
			return err
		}
	}
	return nil
}

func seedSingleton(key string, doc any) func(context.Context, store.Store, *auth.Service) error {
	return func(ctx context.Context, st store.Store, _ *auth.Service) error {
		var existing map[string]any
		_, err := st.LoadSingleton(ctx, key, &existing)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		log.Printf("No %s document found, seeding...", key)
		err = st.CreateSingleton(ctx, key, doc)
		if errors.Is(err, store.ErrDuplicate) {
			return nil
		}
		return err
	}
}
