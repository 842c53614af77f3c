package analytics

import (
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

const (
	recentGenerationLimit = 10
	promptPreviewLength   = 100
	tokenWindowDays       = 30

	// DefaultTokenCostRate is the estimated cost per 1000 tokens, in
	// cost-units, when no pricing config overrides it.
	DefaultTokenCostRate = 0.002
)

// generationTokens reads tokens_in/tokens_out out of free-form generation
// metadata. Absent, malformed or non-numeric fields count as zero; token
// extraction never fails.
func generationTokens(metadata []byte) int64 {
	if len(metadata) == 0 {
		return 0
	}
	return gjson.GetBytes(metadata, "tokens_in").Int() + gjson.GetBytes(metadata, "tokens_out").Int()
}

// truncatePrompt shortens a prompt for the recent-generation feed.
func truncatePrompt(prompt string, limit int) string {
	runes := []rune(prompt)
	if len(runes) <= limit {
		return prompt
	}
	return string(runes[:limit]) + "..."
}

// personaLabel maps a stored persona tag to its display label, falling
// back to the raw tag.
func personaLabel(labels map[string]string, persona string) string {
	if label, ok := labels[persona]; ok {
		return label
	}
	return persona
}

// buildAIUsage merges generation counts, the recent feed and the trailing
// token/cost series into the snapshot's AI section. The series is emitted
// date-sorted ascending; costRate is cost-units per 1000 tokens. Persona
// tags are mapped through the configured display labels.
func buildAIUsage(total int, byPersona map[string]int, recent, windowed []models.AIGeneration, costRate float64, labels map[string]string) models.AIUsage {
	usage := models.AIUsage{
		TotalGenerations: total,
		ByPersona:        make(map[string]int, len(byPersona)),
		Recent:           make([]models.RecentGeneration, 0, len(recent)),
	}
	for persona, count := range byPersona {
		usage.ByPersona[personaLabel(labels, persona)] += count
	}

	for _, g := range recent {
		usage.Recent = append(usage.Recent, models.RecentGeneration{
			ID:        g.ID,
			Persona:   personaLabel(labels, g.Persona),
			Prompt:    truncatePrompt(g.Prompt, promptPreviewLength),
			CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	tokensByDay := make(map[string]int64)
	for _, g := range windowed {
		tokens := generationTokens(g.Metadata)
		day := dateOnly(g.CreatedAt).Format(dayFormat)
		tokensByDay[day] += tokens
		usage.TotalTokensUsed += tokens
	}

	days := make([]string, 0, len(tokensByDay))
	for day := range tokensByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	usage.TokenUsage = make([]models.TokenUsagePoint, 0, len(days))
	for _, day := range days {
		tokens := tokensByDay[day]
		usage.TokenUsage = append(usage.TokenUsage, models.TokenUsagePoint{
			Date:   day,
			Tokens: tokens,
			Cost:   float64(tokens) / 1000.0 * costRate,
		})
	}
	usage.EstimatedCost = float64(usage.TotalTokensUsed) / 1000.0 * costRate

	return usage
}
