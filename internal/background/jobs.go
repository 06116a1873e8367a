package background

import (
	"context"
	"time"
)

const (
	JobWarmTemplateLibrary = "warm-template-library"
	JobReloadPresets       = "reload-presets"
	JobRefreshKits         = "refresh-kits"
)

type LibraryWarmer interface {
	WarmLibrary(ctx context.Context) error
}

type PresetReloader interface {
	ReloadPresets(ctx context.Context) error
}

type KitRefresher interface {
	RefreshKits(ctx context.Context) error
}

// WarmTemplateLibraryJob renders every template preview and thumbnail into the cache.
func WarmTemplateLibraryJob(w LibraryWarmer) Job {
	return Job{
		Name:    JobWarmTemplateLibrary,
		Run:     w.WarmLibrary,
		Timeout: 2 * time.Minute,
		Retries: 2,
		Backoff: 5 * time.Second,
	}
}

// ReloadPresetsJob rereads the colour preset file and drops stale renders.
func ReloadPresetsJob(r PresetReloader) Job {
	return Job{
		Name:    JobReloadPresets,
		Run:     r.ReloadPresets,
		Timeout: 30 * time.Second,
	}
}

// RefreshKitsJob re-renders the stored view of recently updated kits.
func RefreshKitsJob(r KitRefresher) Job {
	return Job{
		Name:    JobRefreshKits,
		Run:     r.RefreshKits,
		Timeout: 5 * time.Minute,
		Retries: 1,
		Backoff: 30 * time.Second,
	}
}
