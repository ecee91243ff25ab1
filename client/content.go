package client

import (
	"context"
	"net/http"
	"net/url"

	"jacsonsite/models"
)

func (c *Client) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var list []models.Company
	err := c.do(ctx, http.MethodGet, "/api/companies", "", nil, &list)
	return list, err
}

func (c *Client) GetCompany(ctx context.Context, id string) (models.Company, error) {
	var co models.Company
	err := c.do(ctx, http.MethodGet, "/api/companies/"+url.PathEscape(id), "", nil, &co)
	return co, err
}

func (c *Client) CreateCompany(ctx context.Context, s Session, p models.CompanyPatch) (models.Company, error) {
	var co models.Company
	err := c.do(ctx, http.MethodPost, "/api/companies", s.Token, p, &co)
	return co, err
}

func (c *Client) UpdateCompany(ctx context.Context, s Session, id string, p models.CompanyPatch) (models.Company, error) {
	var co models.Company
	err := c.do(ctx, http.MethodPut, "/api/companies/"+url.PathEscape(id), s.Token, p, &co)
	return co, err
}

func (c *Client) DeleteCompany(ctx context.Context, s Session, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/companies/"+url.PathEscape(id), s.Token, nil, nil)
}

// ListSections returns the visible home page sections.
func (c *Client) ListSections(ctx context.Context) ([]models.Section, error) {
	var list []models.Section
	err := c.do(ctx, http.MethodGet, "/api/home-sections", "", nil, &list)
	return list, err
}

// ListAllSections includes hidden sections.
func (c *Client) ListAllSections(ctx context.Context, s Session) ([]models.Section, error) {
	var list []models.Section
	err := c.do(ctx, http.MethodGet, "/api/home-sections/all", s.Token, nil, &list)
	return list, err
}

func (c *Client) GetSection(ctx context.Context, s Session, id string) (models.Section, error) {
	var sec models.Section
	err := c.do(ctx, http.MethodGet, "/api/home-sections/"+url.PathEscape(id), s.Token, nil, &sec)
	return sec, err
}

func (c *Client) CreateSection(ctx context.Context, s Session, p models.SectionPatch) (models.Section, error) {
	var sec models.Section
	err := c.do(ctx, http.MethodPost, "/api/home-sections", s.Token, p, &sec)
	return sec, err
}

func (c *Client) UpdateSection(ctx context.Context, s Session, id string, p models.SectionPatch) (models.Section, error) {
	var sec models.Section
	err := c.do(ctx, http.MethodPut, "/api/home-sections/"+url.PathEscape(id), s.Token, p, &sec)
	return sec, err
}

func (c *Client) DeleteSection(ctx context.Context, s Session, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/home-sections/"+url.PathEscape(id), s.Token, nil, nil)
}

func (c *Client) Hero(ctx context.Context) (models.HeroContent, error) {
	var h models.HeroContent
	err := c.do(ctx, http.MethodGet, "/api/content/hero", "", nil, &h)
	return h, err
}

func (c *Client) UpdateHero(ctx context.Context, s Session, p models.HeroPatch) (models.HeroContent, error) {
	var h models.HeroContent
	err := c.do(ctx, http.MethodPut, "/api/content/hero", s.Token, p, &h)
	return h, err
}

func (c *Client) AboutPage(ctx context.Context) (models.AboutPageContent, error) {
	var a models.AboutPageContent
	err := c.do(ctx, http.MethodGet, "/api/content/aboutpage", "", nil, &a)
	return a, err
}

func (c *Client) UpdateAboutPage(ctx context.Context, s Session, p models.AboutPatch) (models.AboutPageContent, error) {
	var a models.AboutPageContent
	err := c.do(ctx, http.MethodPut, "/api/content/aboutpage", s.Token, p, &a)
	return a, err
}

func (c *Client) Settings(ctx context.Context) (models.SiteSettings, error) {
	var st models.SiteSettings
	err := c.do(ctx, http.MethodGet, "/api/settings", "", nil, &st)
	return st, err
}

func (c *Client) UpdateSettings(ctx context.Context, s Session, p models.SettingsPatch) (models.SiteSettings, error) {
	var st models.SiteSettings
	err := c.do(ctx, http.MethodPut, "/api/settings", s.Token, p, &st)
	return st, err
}
