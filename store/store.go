// Package store declares the persistence contract shared by the SQLite and
// MongoDB backends.
package store

import (
	"context"
	"errors"

	"jacsonsite/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
	// ErrConflict means the stored version differs from the one the write
	// was based on.
	ErrConflict = errors.New("version conflict")
)

type Users interface {
	CountUsers(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	SetPasswordHash(ctx context.Context, id, hash string) error
}

// Catalog holds slug-keyed items: services and projects.
type Catalog interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]models.CatalogItem, error)
	Get(ctx context.Context, id string) (models.CatalogItem, error)
	// Insert fails with ErrDuplicate when the slug is taken. The version of
	// the stored item is set to 1.
	Insert(ctx context.Context, item *models.CatalogItem) error
	// Update writes item only if the stored version equals item.Version and
	// then bumps item.Version.
	Update(ctx context.Context, item *models.CatalogItem) error
	Delete(ctx context.Context, id string) error
}

type Companies interface {
	CountCompanies(ctx context.Context) (int, error)
	// ListCompanies returns companies by ascending order, ties in insertion order.
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id string) (models.Company, error)
	InsertCompany(ctx context.Context, c *models.Company) error
	UpdateCompany(ctx context.Context, c *models.Company) error
	DeleteCompany(ctx context.Context, id string) error
}

type Sections interface {
	CountSections(ctx context.Context) (int, error)
	// ListSections returns sections by ascending order, ties in insertion
	// order. With visibleOnly set, hidden sections are left out.
	ListSections(ctx context.Context, visibleOnly bool) ([]models.Section, error)
	GetSection(ctx context.Context, id string) (models.Section, error)
	InsertSection(ctx context.Context, s *models.Section) error
	UpdateSection(ctx context.Context, s *models.Section) error
	DeleteSection(ctx context.Context, id string) error
}

// Singletons stores one document per fixed key.
type Singletons interface {
	// LoadSingleton decodes the document into dst and returns its version.
	LoadSingleton(ctx context.Context, key string, dst any) (int, error)
	// CreateSingleton stores doc at version 1; ErrDuplicate if the key exists.
	CreateSingleton(ctx context.Context, key string, doc any) error
	// SaveSingleton overwrites the document if its version equals version
	// and returns the new version.
	SaveSingleton(ctx context.Context, key string, doc any, version int) (int, error)
}

type Store interface {
	Users
	Companies
	Sections
	Singletons
	Services() Catalog
	Projects() Catalog
	Ping(ctx context.Context) error
	Close() error
}
