package repository

import (
	"context"
	"errors"

	"github.com/example/storefront/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The settings collection holds a single document under a fixed key.
const settingsDocID = "site"

type SettingsRepository struct {
	mongo *MongoRepository
}

func NewSettingsRepository(m *MongoRepository) *SettingsRepository {
	return &SettingsRepository{mongo: m}
}

// Get returns the site settings, or zero-value settings when none are saved.
func (r *SettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var doc struct {
		ID                  string `bson:"_id"`
		models.SiteSettings `bson:",inline"`
	}
	err := r.mongo.collection(collSettings).FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.SiteSettings{SocialLinks: map[string]string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.SiteSettings, nil
}

// Put replaces the whole settings document.
func (r *SettingsRepository) Put(ctx context.Context, settings *models.SiteSettings) error {
	doc := bson.M{
		"_id":          settingsDocID,
		"socialLinks":  settings.SocialLinks,
		"aboutUs":      settings.AboutUs,
		"siteMetadata": settings.SiteMetadata,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.mongo.collection(collSettings).ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts)
	return err
}
