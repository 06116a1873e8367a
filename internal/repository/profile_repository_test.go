package repository

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"glowfolio-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestProfileRepositoryGetByUsernamePreloadsContent(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	profile := &models.Profile{
		Username:            "SophiaCarter",
		FullName:            "Sophia Carter",
		OnboardingCompleted: true,
		Skills:              models.StringList{"Photography"},
		SocialLinks:         models.SocialLinkList{{Type: "instagram", URL: "https://instagram.com/sophia"}},
		Colors:              &models.ColorScheme{Primary: "#123456"},
		SectionVisibility:   models.SectionVisibilityState{models.FlagServicesSkills: false},
		MediaKitData:        models.JSONMap{"tagline": "Legacy tagline"},
		Services:            []models.Service{{ServiceName: "Reel", PriceRange: "$500"}},
		Stats:               []models.MediaKitStats{{Platform: "tiktok", FollowerCount: 2000}, {Platform: "instagram", FollowerCount: 1000}},
		Videos: []models.VideoItem{
			{URL: "https://youtube.com/watch?v=b", Position: 2},
			{URL: "https://youtube.com/watch?v=a", Position: 1},
		},
	}
	if err := repo.Create(profile); err != nil {
		t.Fatalf("create: %v", err)
	}
	if profile.ID == "" {
		t.Fatalf("expected generated id")
	}

	got, err := repo.GetByUsername("  sophiacarter ")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}

	if len(got.Services) != 1 || got.Services[0].ServiceName != "Reel" {
		t.Errorf("services not preloaded: %+v", got.Services)
	}
	if len(got.Stats) != 2 || got.Stats[0].Platform != "instagram" {
		t.Errorf("stats not ordered by platform: %+v", got.Stats)
	}
	if len(got.Videos) != 2 || got.Videos[0].URL != "https://youtube.com/watch?v=a" {
		t.Errorf("videos not ordered by position: %+v", got.Videos)
	}
	if got.Colors == nil || got.Colors.Primary != "#123456" {
		t.Errorf("colors not round-tripped: %+v", got.Colors)
	}
	if got.SectionVisibility.Visible(models.FlagServicesSkills) {
		t.Errorf("visibility not round-tripped: %+v", got.SectionVisibility)
	}
	if got.MediaKitData["tagline"] != "Legacy tagline" {
		t.Errorf("media kit data not round-tripped: %+v", got.MediaKitData)
	}
	if len(got.Skills) != 1 || got.Skills[0] != "Photography" {
		t.Errorf("skills not round-tripped: %+v", got.Skills)
	}
}

func TestProfileRepositoryNotFound(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	if _, err := repo.GetByUsername("missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestProfileRepositoryListUsernames(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	for _, p := range []*models.Profile{
		{Username: "done", OnboardingCompleted: true},
		{Username: "draft"},
	} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("create %s: %v", p.Username, err)
		}
	}

	usernames, err := repo.ListUsernames(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(usernames) != 1 || usernames[0] != "done" {
		t.Fatalf("unexpected usernames %v", usernames)
	}

	if usernames, _ = repo.ListUsernames(0); len(usernames) != 1 {
		t.Fatalf("zero limit should list everyone onboarded, got %v", usernames)
	}
}
