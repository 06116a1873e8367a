package repository

import (
	"strings"

	"glowfolio-backend/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByUsername(username string) (*models.Profile, error)
	ListUsernames(limit int) ([]string, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withContent loads the child collections templates render.
func withContent(db *gorm.DB) *gorm.DB {
	return db.
		Preload("BrandCollaborations", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("collaboration_date DESC")
		}).
		Preload("Services").
		Preload("Stats", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("platform ASC")
		}).
		Preload("Videos", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		})
}

func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) GetByUsername(username string) (*models.Profile, error) {
	var profile models.Profile
	err := withContent(r.db).
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&profile).Error
	return &profile, err
}

// ListUsernames returns usernames of creators who finished onboarding, most recently updated first.
func (r *profileRepository) ListUsernames(limit int) ([]string, error) {
	var usernames []string
	query := r.db.Model(&models.Profile{}).
		Where("onboarding_completed = ?", true).
		Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Pluck("username", &usernames).Error
	return usernames, err
}

// Migrate creates the profile tables. Production schemas are owned elsewhere;
// this is used for development databases and tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.VideoItem{},
		&models.BrandCollaboration{},
		&models.Service{},
		&models.MediaKitStats{},
	)
}
