// Package storetest is a conformance suite run against every store backend.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jacsonsite/models"
	"jacsonsite/store"
)

// Run exercises s. newStore must return an empty store for each call.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Catalog", func(t *testing.T) { testCatalog(t, newStore(t)) })
	t.Run("Companies", func(t *testing.T) { testCompanies(t, newStore(t)) })
	t.Run("Sections", func(t *testing.T) { testSections(t, newStore(t)) })
	t.Run("Singletons", func(t *testing.T) { testSingletons(t, newStore(t)) })
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	n, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	u := models.User{ID: uuid.NewString(), Username: "jacsonadmin", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.CreateUser(ctx, &u))

	dup := models.User{ID: uuid.NewString(), Username: "jacsonadmin", PasswordHash: "other", CreatedAt: time.Now().UTC()}
	assert.ErrorIs(t, s.CreateUser(ctx, &dup), store.ErrDuplicate)

	got, err := s.UserByUsername(ctx, "jacsonadmin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	require.NoError(t, s.SetPasswordHash(ctx, u.ID, "new-hash"))
	got, err = s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)

	_, err = s.UserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.SetPasswordHash(ctx, "missing", "x"), store.ErrNotFound)

	n, err = s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func testCatalog(t *testing.T, s store.Store) {
	ctx := context.Background()
	services := s.Services()
	base := time.Now().UTC()

	for i, id := range []string{"topografia", "drone", "georreferenciamento"} {
		it := models.CatalogItem{
			ID: id, Title: id, ShortDescription: "short", LongDescription: "long",
			ImageURL: "http://img/" + id, CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, services.Insert(ctx, &it))
		assert.Equal(t, 1, it.Version)
	}

	dup := models.CatalogItem{ID: "drone", Title: "Drone", CreatedAt: base}
	assert.ErrorIs(t, services.Insert(ctx, &dup), store.ErrDuplicate)

	list, err := services.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"topografia", "drone", "georreferenciamento"}, []string{list[0].ID, list[1].ID, list[2].ID})

	projects, err := s.Projects().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	it, err := services.Get(ctx, "drone")
	require.NoError(t, err)
	it.Title = "Levantamento com Drone"
	require.NoError(t, services.Update(ctx, &it))
	assert.Equal(t, 2, it.Version)

	stale := it
	stale.Version = 1
	assert.ErrorIs(t, services.Update(ctx, &stale), store.ErrConflict)

	got, err := services.Get(ctx, "drone")
	require.NoError(t, err)
	assert.Equal(t, "Levantamento com Drone", got.Title)
	assert.Equal(t, 2, got.Version)

	missing := models.CatalogItem{ID: "missing", Version: 1}
	assert.ErrorIs(t, services.Update(ctx, &missing), store.ErrNotFound)

	require.NoError(t, services.Delete(ctx, "drone"))
	assert.ErrorIs(t, services.Delete(ctx, "drone"), store.ErrNotFound)
	_, err = services.Get(ctx, "drone")
	assert.ErrorIs(t, err, store.ErrNotFound)

	n, err := services.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func testCompanies(t *testing.T, s store.Store) {
	ctx := context.Background()
	base := time.Now().UTC()

	input := []struct {
		name  string
		order int
	}{{"Shopify", 4}, {"Cachet", 1}, {"TOKICO", 3}, {"Guitar Center", 1}}
	ids := map[string]string{}
	for i, in := range input {
		c := models.Company{ID: uuid.NewString(), Name: in.name, LogoURL: "http://logo", Order: in.order, CreatedAt: base.Add(time.Duration(i) * time.Second)}
		require.NoError(t, s.InsertCompany(ctx, &c))
		ids[in.name] = c.ID
	}

	dup := models.Company{ID: uuid.NewString(), Name: "Cachet", LogoURL: "x", CreatedAt: base}
	assert.ErrorIs(t, s.InsertCompany(ctx, &dup), store.ErrDuplicate)

	list, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	var names []string
	for _, c := range list {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Cachet", "Guitar Center", "TOKICO", "Shopify"}, names)

	c, err := s.GetCompany(ctx, ids["TOKICO"])
	require.NoError(t, err)
	c.Order = 0
	require.NoError(t, s.UpdateCompany(ctx, &c))
	assert.Equal(t, 2, c.Version)

	list, err = s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TOKICO", list[0].Name)

	renamed := list[1]
	renamed.Name = "Shopify"
	assert.ErrorIs(t, s.UpdateCompany(ctx, &renamed), store.ErrDuplicate)

	c.Version = 1
	assert.ErrorIs(t, s.UpdateCompany(ctx, &c), store.ErrConflict)

	require.NoError(t, s.DeleteCompany(ctx, ids["Shopify"]))
	assert.ErrorIs(t, s.DeleteCompany(ctx, ids["Shopify"]), store.ErrNotFound)

	n, err := s.CountCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func testSections(t *testing.T, s store.Store) {
	ctx := context.Background()
	base := time.Now().UTC()

	input := []models.Section{
		{Title: "Projetos", Type: models.SectionProjects, Order: 4, Visible: true},
		{Title: "Sobre", Type: models.SectionText, Order: 1, Visible: true, Content: "texto"},
		{Title: "Oculta", Type: models.SectionText, Order: 2, Visible: false},
		{Title: "Serviços", Type: models.SectionServices, Order: 2, Visible: true},
	}
	for i := range input {
		input[i].ID = uuid.NewString()
		input[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, s.InsertSection(ctx, &input[i]))
	}

	all, err := s.ListSections(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sobre", "Oculta", "Serviços", "Projetos"}, sectionTitles(all))

	visible, err := s.ListSections(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sobre", "Serviços", "Projetos"}, sectionTitles(visible))

	sec, err := s.GetSection(ctx, input[2].ID)
	require.NoError(t, err)
	assert.False(t, sec.Visible)
	sec.Visible = true
	sec.Order = 0
	require.NoError(t, s.UpdateSection(ctx, &sec))

	visible, err = s.ListSections(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Oculta", visible[0].Title)

	sec.Version = 1
	assert.ErrorIs(t, s.UpdateSection(ctx, &sec), store.ErrConflict)

	require.NoError(t, s.DeleteSection(ctx, input[0].ID))
	_, err = s.GetSection(ctx, input[0].ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteSection(ctx, input[0].ID), store.ErrNotFound)
}

func sectionTitles(list []models.Section) []string {
	titles := make([]string, 0, len(list))
	for _, s := range list {
		titles = append(titles, s.Title)
	}
	return titles
}

func testSingletons(t *testing.T, s store.Store) {
	ctx := context.Background()

	var settings models.SiteSettings
	_, err := s.LoadSingleton(ctx, models.SettingsKey, &settings)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.SaveSingleton(ctx, models.SettingsKey, settings, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	initial := models.SiteSettings{LogoType: models.LogoText, LogoTextLine1: "Jacson", LogoTextLine2: "Topografia & Agrimensura"}
	require.NoError(t, s.CreateSingleton(ctx, models.SettingsKey, initial))
	assert.ErrorIs(t, s.CreateSingleton(ctx, models.SettingsKey, initial), store.ErrDuplicate)

	v, err := s.LoadSingleton(ctx, models.SettingsKey, &settings)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "Jacson", settings.LogoTextLine1)

	settings.LogoTextLine1 = ""
	v, err = s.SaveSingleton(ctx, models.SettingsKey, settings, v)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = s.SaveSingleton(ctx, models.SettingsKey, settings, 1)
	assert.ErrorIs(t, err, store.ErrConflict)

	var reloaded models.SiteSettings
	v, err = s.LoadSingleton(ctx, models.SettingsKey, &reloaded)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Empty(t, reloaded.LogoTextLine1)
	assert.Equal(t, "Topografia & Agrimensura", reloaded.LogoTextLine2)

	var hero models.HeroContent
	_, err = s.LoadSingleton(ctx, models.HeroKey, &hero)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
