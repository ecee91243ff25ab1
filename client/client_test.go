package client

import (
	"context"
	"errors"
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
	"jacsonsite/seed"
)

func TestMain(m *testing.M) {
	auth.HashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newSeededClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	d, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	svc := auth.NewService(d, auth.NewTokens("client-test-secret", auth.DefaultTokenTTL))
	require.NoError(t, seed.Run(context.Background(), d, svc))

	srv, err := handlers.NewServer(d, svc, config.Config{AppName: "Jacson"})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	return New(ts.URL+"/", opts...)
}

func ptr[T any](v T) *T { return &v }

func TestLoginAndSession(t *testing.T) {
	ctx := context.Background()
	c := newSeededClient(t)

	require.NoError(t, c.Health(ctx))

	_, err := c.Login(ctx, seed.AdminUsername, "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	sess, err := c.Login(ctx, seed.AdminUsername, seed.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, seed.AdminUsername, sess.Username)
	assert.NotEmpty(t, sess.Token)

	me, err := c.Me(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, me.ID)

	_, err = c.Me(ctx, Session{})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	require.NoError(t, c.ChangePassword(ctx, sess, seed.AdminPassword, "outra-senha"))
	_, err = c.Login(ctx, seed.AdminUsername, "outra-senha")
	assert.NoError(t, err)
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	c := newSeededClient(t)

	sess, err := c.Login(ctx, seed.AdminUsername, seed.AdminPassword)
	require.NoError(t, err)

	// The same client serves anonymous and authenticated calls side by side.
	_, err = c.Services().Create(ctx, Session{}, models.CatalogPatch{Title: ptr("x")})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	item, err := c.Services().Create(ctx, sess, models.CatalogPatch{
		Title:            ptr("Usucapião"),
		ShortDescription: ptr("Regularização"),
		LongDescription:  ptr("Processo completo"),
		ImageURL:         ptr("https://example.com/u.jpg"),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^usucapiao-\d+$`, item.ID)
}

func TestCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newSeededClient(t)
	sess, err := c.Login(ctx, seed.AdminUsername, seed.AdminPassword)
	require.NoError(t, err)

	services, err := c.Services().List(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 4)

	topo, err := c.Services().Get(ctx, "topografia")
	require.NoError(t, err)

	updated, err := c.Services().Update(ctx, sess, "topografia", models.CatalogPatch{ShortDescription: ptr("Novo resumo")})
	require.NoError(t, err)
	assert.Equal(t, topo.Title, updated.Title)
	assert.Equal(t, "Novo resumo", updated.ShortDescription)

	_, err = c.Services().Update(ctx, sess, "topografia", models.CatalogPatch{Title: ptr("x"), Version: ptr(topo.Version)})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	require.NoError(t, c.Services().Delete(ctx, sess, "topografia"))
	_, err = c.Services().Get(ctx, "topografia")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	projects, err := c.Projects().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestContentAndSections(t *testing.T) {
	ctx := context.Background()
	c := newSeededClient(t, WithLanguage("en"))
	sess, err := c.Login(ctx, seed.AdminUsername, seed.AdminPassword)
	require.NoError(t, err)

	settings, err := c.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jacson", settings.LogoTextLine1)

	_, err = c.UpdateSettings(ctx, sess, models.SettingsPatch{LogoType: ptr("banner")})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "logoType", apiErr.Field)
	assert.Equal(t, `Logo type must be "text" or "image".`, apiErr.Message)

	hero, err := c.UpdateHero(ctx, sess, models.HeroPatch{ButtonText: ptr("Call now")})
	require.NoError(t, err)
	assert.Equal(t, "jacson", hero.MainTitle)
	assert.Equal(t, 2, hero.Version)

	about, err := c.AboutPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sobre", about.PreTitle)

	all, err := c.ListAllSections(ctx, sess)
	require.NoError(t, err)
	require.Len(t, all, 4)

	var services models.Section
	for _, s := range all {
		if s.Type == models.SectionServices {
			services = s
		}
	}
	err = c.DeleteSection(ctx, sess, services.ID)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	sec, err := c.CreateSection(ctx, sess, models.SectionPatch{Title: ptr("Destaques"), Order: ptr(5), Visible: ptr(false)})
	require.NoError(t, err)
	visible, err := c.ListSections(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, 4)

	_, err = c.GetSection(ctx, Session{}, sec.ID)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	got, err := c.GetSection(ctx, sess, sec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Destaques", got.Title)

	companies, err := c.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 5)
	co, err := c.UpdateCompany(ctx, sess, companies[0].ID, models.CompanyPatch{Order: ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, co.Order)
	require.NoError(t, c.DeleteCompany(ctx, sess, co.ID))
	_, err = c.GetCompany(ctx, co.ID)
	assert.Error(t, err)
}
