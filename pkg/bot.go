package pkg

import (
	"time"

	"becbot/pkg/cascade"
	"becbot/pkg/colors"
	"becbot/pkg/cooldown"
	"becbot/pkg/db"
	"becbot/pkg/moderation"
	"becbot/pkg/suggestions"
)

const (
	CanCooldown   = 35 * time.Second
	QuoteCooldown = 5 * time.Second
)

type Bot struct {
	DB          *db.DB
	Suggestions *suggestions.Service
	// Moderation is nil when no log channel is configured.
	Moderation    *moderation.Pipeline
	Colors        *colors.Service
	CanCooldown   *cooldown.Cooldown
	QuoteCooldown *cooldown.Cooldown
	Cascades      *cascade.Registry
}
