package models

import "time"

// Singleton document keys. Each singleton lives under exactly one fixed key.
const (
	HeroKey     = "hero"
	AboutKey    = "aboutpage"
	SettingsKey = "settings"
)

// Section types. Only "text" sections are created by admins; the others are
// placeholders for dynamic blocks rendered from other collections.
const (
	SectionText      = "text"
	SectionServices  = "services"
	SectionCompanies = "companies"
	SectionProjects  = "projects"
)

const (
	LogoText  = "text"
	LogoImage = "image"
)

type User struct {
	ID           string    `json:"_id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// CatalogItem is the shape shared by services and projects. ID is the slug.
type CatalogItem struct {
	ID               string    `json:"id" bson:"_id"`
	Title            string    `json:"title" bson:"title"`
	ShortDescription string    `json:"shortDescription" bson:"shortDescription"`
	LongDescription  string    `json:"longDescription" bson:"longDescription"`
	ImageURL         string    `json:"imageUrl" bson:"imageUrl"`
	Version          int       `json:"version" bson:"version"`
	CreatedAt        time.Time `json:"-" bson:"createdAt"`
}

type Company struct {
	ID        string    `json:"_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	LogoURL   string    `json:"logoUrl" bson:"logoUrl"`
	Order     int       `json:"order" bson:"order"`
	Version   int       `json:"version" bson:"version"`
	CreatedAt time.Time `json:"-" bson:"createdAt"`
}

type Section struct {
	ID        string    `json:"_id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Subtitle  string    `json:"subtitle" bson:"subtitle"`
	Content   string    `json:"content" bson:"content"`
	Type      string    `json:"type" bson:"type"`
	Order     int       `json:"order" bson:"order"`
	Visible   bool      `json:"visible" bson:"visible"`
	ImageURL  string    `json:"imageUrl" bson:"imageUrl"`
	Version   int       `json:"version" bson:"version"`
	CreatedAt time.Time `json:"-" bson:"createdAt"`
}

// Deletable reports whether admins may remove the section.
func (s Section) Deletable() bool {
	return s.Type != SectionServices
}

type HeroContent struct {
	MainTitle   string `json:"mainTitle" bson:"mainTitle"`
	Subtitle    string `json:"subtitle" bson:"subtitle"`
	Description string `json:"description" bson:"description"`
	ButtonText  string `json:"buttonText" bson:"buttonText"`
	ButtonLink  string `json:"buttonLink" bson:"buttonLink"`
	ImageURL    string `json:"imageUrl" bson:"imageUrl"`
	Version     int    `json:"version" bson:"-"`
}

type AboutPageContent struct {
	PreTitle   string `json:"preTitle" bson:"preTitle"`
	Title      string `json:"title" bson:"title"`
	Subtitle   string `json:"subtitle" bson:"subtitle"`
	ImageURL   string `json:"imageUrl" bson:"imageUrl"`
	Paragraph1 string `json:"paragraph1" bson:"paragraph1"`
	Paragraph2 string `json:"paragraph2" bson:"paragraph2"`
	Version    int    `json:"version" bson:"-"`
}

type SiteSettings struct {
	LogoType      string `json:"logoType" bson:"logoType"`
	LogoTextLine1 string `json:"logoTextLine1" bson:"logoTextLine1"`
	LogoTextLine2 string `json:"logoTextLine2" bson:"logoTextLine2"`
	LogoImageURL  string `json:"logoImageUrl" bson:"logoImageUrl"`
	Version       int    `json:"version" bson:"-"`
}
