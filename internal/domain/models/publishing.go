package models

import (
	"time"
)

// ReadinessInput is the normalized input to the publishing-readiness scorer.
// The analytics core builds it from project state; the scorer's internals are
// opaque to the core.
type ReadinessInput struct {
	CurrentWordCount int
	TargetWordCount  int
	Published        bool
	HasCover         bool
	HasBlurb         bool
	KeywordCount     int
	CategoryCount    int
	HasPrice         bool
	HasReleaseDate   bool
}

// ReadinessItem is one checklist line of the readiness breakdown.
type ReadinessItem struct {
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
	Weight   int    `json:"weight"`
}

// ReadinessResult is the publishing-readiness score with its breakdown.
type ReadinessResult struct {
	Score     int             `json:"score"` // 0-100
	Items     []ReadinessItem `json:"items"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
}

// RevenueRecord is one ingested revenue row fed to the promotion-attribution
// scorer. Metadata may carry campaign and spend details.
type RevenueRecord struct {
	AmountCents     int64
	Source          string // sales channel
	TransactionDate time.Time
	Metadata        []byte // free-form JSON: campaign, spend_cents, ...
}

// AttributionGroup aggregates revenue for one channel/campaign pair.
type AttributionGroup struct {
	Channel      string  `json:"channel"`
	Campaign     string  `json:"campaign,omitempty"`
	RevenueCents int64   `json:"revenueCents"`
	SpendCents   int64   `json:"spendCents"`
	NetCents     int64   `json:"netCents"`
	ROAS         float64 `json:"roas"` // revenue/spend, 0 when spend is 0
	Records      int     `json:"records"`
}

// AttributionPoint is one month of the attribution timeline.
type AttributionPoint struct {
	Month        string `json:"month"` // YYYY-MM
	RevenueCents int64  `json:"revenueCents"`
	SpendCents   int64  `json:"spendCents"`
}

// AttributionResult is the promotion-attribution output merged into the
// snapshot.
type AttributionResult struct {
	Groups            []AttributionGroup `json:"groups"`
	Timeline          []AttributionPoint `json:"timeline"`
	TotalRevenueCents int64              `json:"totalRevenueCents"`
	TotalSpendCents   int64              `json:"totalSpendCents"`
}
