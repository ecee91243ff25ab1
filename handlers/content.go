package handlers

import (
	"net/http"

	"jacsonsite/models"
)

// Singletons are created by the seed routine only. Updating one that does
// not exist yet is a 404.

func (s *Server) getHeroHandler(w http.ResponseWriter, r *http.Request) {
	var hero models.HeroContent
	v, err := s.store.LoadSingleton(r.Context(), models.HeroKey, &hero)
	if err != nil {
		sendStoreError(w, r, "loading hero", "ContentNotFound", err)
		return
	}
	hero.Version = v
	sendJSONResponse(w, http.StatusOK, hero)
}

func (s *Server) updateHeroHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.HeroPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	var hero models.HeroContent
	v, err := s.store.LoadSingleton(r.Context(), models.HeroKey, &hero)
	if err != nil {
		sendStoreError(w, r, "loading hero", "ContentNotFound", err)
		return
	}
	if !checkVersion(w, r, patch.Version, v) {
		return
	}

	changed, err := patch.Apply(&hero)
	if err == nil && changed {
		v, err = s.store.SaveSingleton(r.Context(), models.HeroKey, hero, v)
	}
	if err != nil {
		sendStoreError(w, r, "saving hero", "ContentNotFound", err)
		return
	}
	hero.Version = v
	sendJSONResponse(w, http.StatusOK, hero)
}

func (s *Server) getAboutHandler(w http.ResponseWriter, r *http.Request) {
	var about models.AboutPageContent
	v, err := s.store.LoadSingleton(r.Context(), models.AboutKey, &about)
	if err != nil {
		sendStoreError(w, r, "loading about page", "ContentNotFound", err)
		return
	}
	about.Version = v
	sendJSONResponse(w, http.StatusOK, about)
}

func (s *Server) updateAboutHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.AboutPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	var about models.AboutPageContent
	v, err := s.store.LoadSingleton(r.Context(), models.AboutKey, &about)
	if err != nil {
		sendStoreError(w, r, "loading about page", "ContentNotFound", err)
		return
	}
	if !checkVersion(w, r, patch.Version, v) {
		return
	}

	changed, err := patch.Apply(&about)
	if err == nil && changed {
		v, err = s.store.SaveSingleton(r.Context(), models.AboutKey, about, v)
	}
	if err != nil {
		sendStoreError(w, r, "saving about page", "ContentNotFound", err)
		return
	}
	about.Version = v
	sendJSONResponse(w, http.StatusOK, about)
}

func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings models.SiteSettings
	v, err := s.store.LoadSingleton(r.Context(), models.SettingsKey, &settings)
	if err != nil {
		sendStoreError(w, r, "loading settings", "SettingsNotFound", err)
		return
	}
	settings.Version = v
	sendJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	var settings models.SiteSettings
	v, err := s.store.LoadSingleton(r.Context(), models.SettingsKey, &settings)
	if err != nil {
		sendStoreError(w, r, "loading settings", "SettingsNotFound", err)
		return
	}
	if !checkVersion(w, r, patch.Version, v) {
		return
	}

	changed, err := patch.Apply(&settings)
	if err == nil && changed {
		v, err = s.store.SaveSingleton(r.Context(), models.SettingsKey, settings, v)
	}
	if err != nil {
		sendStoreError(w, r, "saving settings", "SettingsNotFound", err)
		return
	}
	settings.Version = v
	sendJSONResponse(w, http.StatusOK, settings)
}
