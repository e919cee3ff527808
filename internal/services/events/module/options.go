package module

import (
	"time"

	"eventboard/internal/adapters/ingest/firestore"
	"eventboard/internal/platform/config"
	"eventboard/internal/services/events/domain"
	"eventboard/internal/services/events/render"
	"eventboard/internal/services/events/service"
)

// Options holds configuration settings for the events module
type Options struct {
	Source      firestore.Options
	Render      render.Options
	Policy      domain.FailurePolicy
	Fields      service.Fields
	CatalogFile string
}

// FromConfig reads EVENTBOARD_* settings from cfg
func FromConfig(cfg config.Conf) Options {
	ev := cfg.Prefix("EVENTBOARD_")
	src := ev.Prefix("SOURCE_")
	return Options{
		Source: firestore.Options{
			BaseURL:       src.MayURL("BASE_URL", "https://firestore.googleapis.com/v1"),
			Project:       src.MayString("PROJECT", ""),
			Database:      src.MayString("DATABASE", "(default)"),
			Collection:    src.MayString("COLLECTION", "events"),
			APIKey:        src.MayString("API_KEY", ""),
			PageSize:      src.MayInt("PAGE_SIZE", 100),
			Timeout:       src.MayDuration("TIMEOUT", 10*time.Second),
			RatePerSecond: src.MayFloat64("RATE", 0),
			Burst:         src.MayInt("BURST", 1),
		},
		Render: render.Options{
			LinkBase: ev.MayString("LINK_BASE", ""),
			Location: ev.MayLocation("TIMEZONE"),
			Title:    ev.MayString("TITLE", "Events"),
		},
		Policy: domain.ParsePolicy(ev.MayEnum("FAILURE_POLICY", string(domain.PolicySoft),
			string(domain.PolicySoft), string(domain.PolicySurface))),
		Fields: service.Fields{
			Name: ev.MayString("FIELD_NAME", service.DefaultFields.Name),
			URL:  ev.MayString("FIELD_URL", service.DefaultFields.URL),
		},
		CatalogFile: ev.MayString("CATALOG_FILE", ""),
	}
}
