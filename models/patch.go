package models

import "strings"

// ValidationError reports a rejected payload field. Key names a message in
// the i18n catalogue.
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Key
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Key: "FieldRequired"}
	}
	return nil
}

type field struct {
	name  string
	value *string
}

// requiredIfSet rejects blank values for required fields present in a patch.
func requiredIfSet(fields ...field) error {
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := required(f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}

// Patches decode from JSON with pointer fields: a nil pointer means the key
// was absent (or null) and the stored value is kept. Empty strings, zero and
// false are applied like any other value, except on required fields.
//
// Every patch may carry the version the client last read; a mismatch is
// rejected by the handlers before anything is written.

type CatalogPatch struct {
	Title            *string `json:"title"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
	ImageURL         *string `json:"imageUrl"`
	Version          *int    `json:"version"`
}

// NewCatalogItem validates a create payload. The slug is assigned by the caller.
func (p CatalogPatch) NewCatalogItem() (CatalogItem, error) {
	item := CatalogItem{
		Title:            deref(p.Title),
		ShortDescription: deref(p.ShortDescription),
		LongDescription:  deref(p.LongDescription),
		ImageURL:         deref(p.ImageURL),
	}
	for _, f := range []struct{ name, value string }{
		{"title", item.Title},
		{"shortDescription", item.ShortDescription},
		{"longDescription", item.LongDescription},
		{"imageUrl", item.ImageURL},
	} {
		if err := required(f.name, f.value); err != nil {
			return CatalogItem{}, err
		}
	}
	return item, nil
}

// Apply merges the patch into item and reports whether anything changed.
// The slug is never touched.
func (p CatalogPatch) Apply(item *CatalogItem) (bool, error) {
	if err := requiredIfSet(
		field{"title", p.Title},
		field{"shortDescription", p.ShortDescription},
		field{"longDescription", p.LongDescription},
		field{"imageUrl", p.ImageURL},
	); err != nil {
		return false, err
	}
	changed := set(&item.Title, p.Title)
	changed = set(&item.ShortDescription, p.ShortDescription) || changed
	changed = set(&item.LongDescription, p.LongDescription) || changed
	changed = set(&item.ImageURL, p.ImageURL) || changed
	return changed, nil
}

type CompanyPatch struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logoUrl"`
	Order   *int    `json:"order"`
	Version *int    `json:"version"`
}

func (p CompanyPatch) NewCompany() (Company, error) {
	c := Company{
		Name:    strings.TrimSpace(deref(p.Name)),
		LogoURL: deref(p.LogoURL),
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
	if err := required("name", c.Name); err != nil {
		return Company{}, err
	}
	if err := required("logoUrl", c.LogoURL); err != nil {
		return Company{}, err
	}
	return c, nil
}

func (p CompanyPatch) Apply(c *Company) (bool, error) {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		if err := required("name", trimmed); err != nil {
			return false, err
		}
		p.Name = &trimmed
	}
	if err := requiredIfSet(field{"logoUrl", p.LogoURL}); err != nil {
		return false, err
	}
	changed := set(&c.Name, p.Name)
	changed = set(&c.LogoURL, p.LogoURL) || changed
	changed = set(&c.Order, p.Order) || changed
	return changed, nil
}

type SectionPatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Content  *string `json:"content"`
	Order    *int    `json:"order"`
	Visible  *bool   `json:"visible"`
	ImageURL *string `json:"imageUrl"`
	Version  *int    `json:"version"`
}

// NewSection builds an admin-created section. Those are always of type text
// and visible unless the payload says otherwise.
func (p SectionPatch) NewSection() (Section, error) {
	s := Section{
		Title:    deref(p.Title),
		Subtitle: deref(p.Subtitle),
		Content:  deref(p.Content),
		ImageURL: deref(p.ImageURL),
		Type:     SectionText,
		Visible:  true,
	}
	set(&s.Order, p.Order)
	set(&s.Visible, p.Visible)
	if err := required("title", s.Title); err != nil {
		return Section{}, err
	}
	return s, nil
}

// Apply merges the patch. Content only changes on text sections; for the
// system sections a content key is ignored.
func (p SectionPatch) Apply(s *Section) (bool, error) {
	if p.Title != nil {
		if err := required("title", *p.Title); err != nil {
			return false, err
		}
	}
	changed := set(&s.Title, p.Title)
	changed = set(&s.Subtitle, p.Subtitle) || changed
	changed = set(&s.Order, p.Order) || changed
	changed = set(&s.Visible, p.Visible) || changed
	changed = set(&s.ImageURL, p.ImageURL) || changed
	if s.Type == SectionText {
		changed = set(&s.Content, p.Content) || changed
	}
	return changed, nil
}

type HeroPatch struct {
	MainTitle   *string `json:"mainTitle"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	ButtonText  *string `json:"buttonText"`
	ButtonLink  *string `json:"buttonLink"`
	ImageURL    *string `json:"imageUrl"`
	Version     *int    `json:"version"`
}

func (p HeroPatch) Apply(h *HeroContent) (bool, error) {
	if err := requiredIfSet(
		field{"mainTitle", p.MainTitle},
		field{"subtitle", p.Subtitle},
		field{"description", p.Description},
		field{"buttonText", p.ButtonText},
		field{"buttonLink", p.ButtonLink},
		field{"imageUrl", p.ImageURL},
	); err != nil {
		return false, err
	}
	changed := set(&h.MainTitle, p.MainTitle)
	changed = set(&h.Subtitle, p.Subtitle) || changed
	changed = set(&h.Description, p.Description) || changed
	changed = set(&h.ButtonText, p.ButtonText) || changed
	changed = set(&h.ButtonLink, p.ButtonLink) || changed
	changed = set(&h.ImageURL, p.ImageURL) || changed
	return changed, nil
}

type AboutPatch struct {
	PreTitle   *string `json:"preTitle"`
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ImageURL   *string `json:"imageUrl"`
	Paragraph1 *string `json:"paragraph1"`
	Paragraph2 *string `json:"paragraph2"`
	Version    *int    `json:"version"`
}

func (p AboutPatch) Apply(a *AboutPageContent) (bool, error) {
	changed := set(&a.PreTitle, p.PreTitle)
	changed = set(&a.Title, p.Title) || changed
	changed = set(&a.Subtitle, p.Subtitle) || changed
	changed = set(&a.ImageURL, p.ImageURL) || changed
	changed = set(&a.Paragraph1, p.Paragraph1) || changed
	changed = set(&a.Paragraph2, p.Paragraph2) || changed
	return changed, nil
}

type SettingsPatch struct {
	LogoType      *string `json:"logoType"`
	LogoTextLine1 *string `json:"logoTextLine1"`
	LogoTextLine2 *string `json:"logoTextLine2"`
	LogoImageURL  *string `json:"logoImageUrl"`
	Version       *int    `json:"version"`
}

func (p SettingsPatch) Apply(s *SiteSettings) (bool, error) {
	if p.LogoType != nil && *p.LogoType != LogoText && *p.LogoType != LogoImage {
		return false, &ValidationError{Field: "logoType", Key: "InvalidLogoType"}
	}
	changed := set(&s.LogoType, p.LogoType)
	changed = set(&s.LogoTextLine1, p.LogoTextLine1) || changed
	changed = set(&s.LogoTextLine2, p.LogoTextLine2) || changed
	changed = set(&s.LogoImageURL, p.LogoImageURL) || changed
	return changed, nil
}

func set[T comparable](dst *T, v *T) bool {
	if v == nil || *dst == *v {
		return false
	}
	*dst = *v
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
