package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jacsonsite/models"
)

func TestSingletonsMissing(t *testing.T) {
	e := newTestEnv(t)

	rr := e.anon("GET", "/api/content/hero", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Conteúdo não encontrado.", decode[ErrorResponse](t, rr).Message)

	rr = e.do("PUT", "/api/settings", map[string]string{"logoType": "image"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Configurações não encontradas.", decode[ErrorResponse](t, rr).Message)
}

func TestHeroUpdate(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.db.CreateSingleton(t.Context(), models.HeroKey, models.HeroContent{
		MainTitle:  "jacson",
		Subtitle:   "Topografia & Agrimensura",
		ButtonText: "Ligue Agora",
		ButtonLink: "tel:+5569981191606",
	}))

	rr := e.anon("GET", "/api/content/hero", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	hero := decode[models.HeroContent](t, rr)
	assert.Equal(t, 1, hero.Version)

	rr = e.anon("PUT", "/api/content/hero", map[string]string{"mainTitle": "x"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = e.do("PUT", "/api/content/hero", map[string]any{"mainTitle": "Jacson", "version": 1})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	hero = decode[models.HeroContent](t, rr)
	assert.Equal(t, "Jacson", hero.MainTitle)
	assert.Equal(t, "Ligue Agora", hero.ButtonText)
	assert.Equal(t, 2, hero.Version)

	before := e.anon("GET", "/api/content/hero", nil).Body.String()
	rr = e.do("PUT", "/api/content/hero", map[string]any{})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, before, e.anon("GET", "/api/content/hero", nil).Body.String())

	rr = e.do("PUT", "/api/content/hero", map[string]any{"subtitle": "stale", "version": 1})
	assert.Equal(t, http.StatusConflict, rr.Code)

	for _, field := range []string{"mainTitle", "subtitle", "description", "buttonText", "buttonLink", "imageUrl"} {
		rr = e.do("PUT", "/api/content/hero", map[string]string{field: ""})
		assert.Equal(t, http.StatusBadRequest, rr.Code, field)
		assert.Equal(t, field, decode[ErrorResponse](t, rr).Field)
	}
	assert.Equal(t, before, e.anon("GET", "/api/content/hero", nil).Body.String())
}

func TestAboutPageUpdate(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.db.CreateSingleton(t.Context(), models.AboutKey, models.AboutPageContent{
		Title:      "Sobre",
		Paragraph1: "Primeiro",
		Paragraph2: "Segundo",
	}))

	rr := e.do("PUT", "/api/content/aboutpage", map[string]string{"paragraph2": ""})
	require.Equal(t, http.StatusOK, rr.Code)
	about := decode[models.AboutPageContent](t, rr)
	assert.Equal(t, "Primeiro", about.Paragraph1)
	assert.Empty(t, about.Paragraph2)

	rr = e.anon("GET", "/api/content/aboutpage", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, about, decode[models.AboutPageContent](t, rr))
}

func TestSettingsUpdate(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, e.db.CreateSingleton(t.Context(), models.SettingsKey, models.SiteSettings{
		LogoType:      models.LogoText,
		LogoTextLine1: "Jacson",
		LogoTextLine2: "Topografia & Agrimensura",
	}))

	rr := e.do("PUT", "/api/settings", map[string]string{"logoType": "banner"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "logoType", decode[ErrorResponse](t, rr).Field)

	rr = e.do("PUT", "/api/settings", map[string]string{"logoType": "image", "logoImageUrl": "https://example.com/logo.png"})
	require.Equal(t, http.StatusOK, rr.Code)
	settings := decode[models.SiteSettings](t, rr)
	assert.Equal(t, models.LogoImage, settings.LogoType)
	assert.Equal(t, "Jacson", settings.LogoTextLine1)
	assert.Equal(t, 2, settings.Version)
}
