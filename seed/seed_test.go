package seed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jacsonsite/auth"
	"jacsonsite/config"
	"jacsonsite/db"
	"jacsonsite/handlers"
	"jacsonsite/models"
)

func TestMain(m *testing.M) {
	auth.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newStore(t *testing.T) (*db.DB, *auth.Service) {
	t.Helper()
	d, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d, auth.NewService(d, auth.NewTokens("seed-test-secret", auth.DefaultTokenTTL))
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	d, svc := newStore(t)

	require.NoError(t, Run(ctx, d, svc))

	_, err := svc.Login(ctx, AdminUsername, AdminPassword)
	assert.NoError(t, err, "default admin can log in")

	list, err := d.Services().List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"georreferenciamento", "retificacao-de-area", "topografia", "drone"}, ids)

	secs, err := d.ListSections(ctx, false)
	require.NoError(t, err)
	require.Len(t, secs, 4)
	var types []string
	for _, s := range secs {
		types = append(types, s.Type)
		assert.True(t, s.Visible)
	}
	assert.Equal(t, []string{"text", "services", "companies", "projects"}, types)

	comps, err := d.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, comps, 5)
	assert.Equal(t, "Cachet", comps[0].Name)
	assert.Equal(t, "Profil Rejser", comps[4].Name)

	n, err := d.Projects().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	var h models.HeroContent
	_, err = d.LoadSingleton(ctx, models.HeroKey, &h)
	require.NoError(t, err)
	assert.Equal(t, "jacson", h.MainTitle)
	assert.Equal(t, "tel:+5569981191606", h.ButtonLink)

	var a models.AboutPageContent
	_, err = d.LoadSingleton(ctx, models.AboutKey, &a)
	require.NoError(t, err)
	assert.Equal(t, "Jacson Topografia & Agrimensura", a.Title)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	d, svc := newStore(t)
	require.NoError(t, Run(ctx, d, svc))

	// Admin edits that a second run must not undo.
	require.NoError(t, d.Services().Delete(ctx, "drone"))
	custom := DefaultSettings
	custom.LogoType = models.LogoImage
	_, err := d.SaveSingleton(ctx, models.SettingsKey, custom, 1)
	require.NoError(t, err)

	require.NoError(t, Run(ctx, d, svc))

	users, err := d.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users)

	services, err := d.Services().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, services)

	sections, err := d.CountSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sections)

	companies, err := d.CountCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, companies)

	var s models.SiteSettings
	v, err := d.LoadSingleton(ctx, models.SettingsKey, &s)
	require.NoError(t, err)
	assert.Equal(t, models.LogoImage, s.LogoType)
	assert.Equal(t, 2, v)
}

func TestSeededSettingsOverHTTP(t *testing.T) {
	ctx := context.Background()
	d, svc := newStore(t)
	require.NoError(t, Run(ctx, d, svc))

	srv, err := handlers.NewServer(d, svc, config.Config{AppName: "Jacson"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rr, httptest.NewRequest("GET", "/api/settings", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, map[string]any{
		"logoType":      "text",
		"logoTextLine1": "Jacson",
		"logoTextLine2": "Topografia & Agrimensura",
		"logoImageUrl":  "",
		"version":       float64(1),
	}, got)
}
