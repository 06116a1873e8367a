package seed

import (
	"errors"

	"gorm.io/gorm"

	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/placeholder"
	"glowfolio-backend/internal/repository"
	"glowfolio-backend/pkg/logger"
)

// EnsureDemoProfile creates a sample creator under username so a fresh
// install has a kit to look at. Existing profiles are left alone.
func EnsureDemoProfile(repo repository.ProfileRepository, username string) {
	if repo == nil || username == "" {
		return
	}

	existing, err := repo.GetByUsername(username)
	if err == nil {
		logger.Info("Demo profile already present", map[string]interface{}{"username": existing.Username, "id": existing.ID})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error(err, "Failed to look up demo profile", map[string]interface{}{"username": username})
		return
	}

	profile := DemoProfile(username)
	if err := repo.Create(profile); err != nil {
		logger.Error(err, "Failed to create demo profile", map[string]interface{}{"username": username})
		return
	}

	logger.Info("Created demo profile", map[string]interface{}{"username": profile.Username, "id": profile.ID})
}

// DemoProfile builds a profile from the default template's sample creator.
func DemoProfile(username string) *models.Profile {
	data := placeholder.DefaultPreview()

	profile := &models.Profile{
		Username:            username,
		FullName:            data.FullName,
		Email:               data.Email,
		Niche:               data.Niche,
		OnboardingCompleted: true,

		BrandName:       data.BrandName,
		Tagline:         data.Tagline,
		Bio:             data.Bio,
		AvatarURL:       data.AvatarURL,
		Phone:           data.Phone,
		Website:         data.Website,
		Location:        data.Location,
		InstagramHandle: data.InstagramHandle,
		TiktokHandle:    data.TiktokHandle,
		YoutubeHandle:   data.YoutubeHandle,
		SocialLinks:     data.SocialLinks,
		Skills:          data.Skills,
		PortfolioImages: data.PortfolioImages,

		AudienceAgeRange:     data.AudienceAgeRange,
		AudienceGender:       data.AudienceGender,
		AudienceTopLocations: data.AudienceTopLocations,
		AudienceInterests:    data.AudienceInterests,

		TemplateID:        "default",
		Colors:            data.Colors,
		Font:              data.Font,
		SectionVisibility: models.AllVisible(),
	}

	// Sample rows carry display ids; the database assigns real ones.
	for _, c := range data.BrandCollaborations {
		c.ID, c.ProfileID = "", ""
		profile.BrandCollaborations = append(profile.BrandCollaborations, c)
	}
	for _, s := range data.Services {
		s.ID, s.ProfileID = "", ""
		profile.Services = append(profile.Services, s)
	}
	for _, s := range data.Stats {
		s.ID, s.ProfileID = "", ""
		profile.Stats = append(profile.Stats, s)
	}
	for i, v := range data.Videos {
		v.ID, v.ProfileID = "", ""
		v.Position = i
		profile.Videos = append(profile.Videos, v)
	}

	return profile
}
