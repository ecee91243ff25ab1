package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jacsonsite/models"
	"jacsonsite/store"
)

type catalog struct {
	coll *mongo.Collection
}

func (c *catalog) Count(ctx context.Context) (int, error) {
	n, err := c.coll.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (c *catalog) List(ctx context.Context) ([]models.CatalogItem, error) {
	items := []models.CatalogItem{}
	err := findAll(ctx, c.coll, bson.M{}, bson.D{{Key: "createdAt", Value: 1}}, &items)
	return items, err
}

func (c *catalog) Get(ctx context.Context, id string) (models.CatalogItem, error) {
	var it models.CatalogItem
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&it)
	return it, translate(err)
}

func (c *catalog) Insert(ctx context.Context, it *models.CatalogItem) error {
	doc := *it
	doc.Version = 1
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return translate(err)
	}
	it.Version = 1
	return nil
}

func (c *catalog) Update(ctx context.Context, it *models.CatalogItem) error {
	next := *it
	next.Version++
	if err := replaceVersioned(ctx, c.coll, it.ID, it.Version, next); err != nil {
		return err
	}
	it.Version = next.Version
	return nil
}

func (c *catalog) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, c.coll, id)
}

var byOrder = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}

func (s *Store) CountCompanies(ctx context.Context) (int, error) {
	n, err := s.companies.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (s *Store) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	err := findAll(ctx, s.companies, bson.M{}, byOrder, &companies)
	return companies, err
}

func (s *Store) GetCompany(ctx context.Context, id string) (models.Company, error) {
	var c models.Company
	err := s.companies.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, translate(err)
}

func (s *Store) InsertCompany(ctx context.Context, c *models.Company) error {
	doc := *c
	doc.Version = 1
	if _, err := s.companies.InsertOne(ctx, doc); err != nil {
		return translate(err)
	}
	c.Version = 1
	return nil
}

func (s *Store) UpdateCompany(ctx context.Context, c *models.Company) error {
	next := *c
	next.Version++
	if err := replaceVersioned(ctx, s.companies, c.ID, c.Version, next); err != nil {
		return err
	}
	c.Version = next.Version
	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, id string) error {
	return deleteByID(ctx, s.companies, id)
}

func (s *Store) CountSections(ctx context.Context) (int, error) {
	n, err := s.sections.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (s *Store) ListSections(ctx context.Context, visibleOnly bool) ([]models.Section, error) {
	filter := bson.M{}
	if visibleOnly {
		filter["visible"] = true
	}
	sections := []models.Section{}
	err := findAll(ctx, s.sections, filter, byOrder, &sections)
	return sections, err
}

func (s *Store) GetSection(ctx context.Context, id string) (models.Section, error) {
	var sec models.Section
	err := s.sections.FindOne(ctx, bson.M{"_id": id}).Decode(&sec)
	return sec, translate(err)
}

func (s *Store) InsertSection(ctx context.Context, sec *models.Section) error {
	doc := *sec
	doc.Version = 1
	if _, err := s.sections.InsertOne(ctx, doc); err != nil {
		return translate(err)
	}
	sec.Version = 1
	return nil
}

func (s *Store) UpdateSection(ctx context.Context, sec *models.Section) error {
	next := *sec
	next.Version++
	if err := replaceVersioned(ctx, s.sections, sec.ID, sec.Version, next); err != nil {
		return err
	}
	sec.Version = next.Version
	return nil
}

func (s *Store) DeleteSection(ctx context.Context, id string) error {
	return deleteByID(ctx, s.sections, id)
}

type singletonDoc struct {
	Key       string    `bson:"_id"`
	Version   int       `bson:"version"`
	Data      any       `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (s *Store) LoadSingleton(ctx context.Context, key string, dst any) (int, error) {
	var raw struct {
		Version int      `bson:"version"`
		Data    bson.Raw `bson:"data"`
	}
	if err := s.singletons.FindOne(ctx, bson.M{"_id": key}).Decode(&raw); err != nil {
		return 0, translate(err)
	}
	if err := bson.Unmarshal(raw.Data, dst); err != nil {
		return 0, err
	}
	return raw.Version, nil
}

func (s *Store) CreateSingleton(ctx context.Context, key string, doc any) error {
	_, err := s.singletons.InsertOne(ctx, singletonDoc{Key: key, Version: 1, Data: doc, UpdatedAt: time.Now().UTC()})
	return translate(err)
}

func (s *Store) SaveSingleton(ctx context.Context, key string, doc any, version int) (int, error) {
	res, err := s.singletons.UpdateOne(ctx,
		bson.M{"_id": key, "version": version},
		bson.M{
			"$set": bson.M{"data": doc, "updatedAt": time.Now().UTC()},
			"$inc": bson.M{"version": 1},
		})
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, staleOrMissing(ctx, s.singletons, key)
	}
	return version + 1, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter any, sort bson.D, out any) error {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

var _ store.Catalog = (*catalog)(nil)
