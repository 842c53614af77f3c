package publishing

import (
	"sort"

	"github.com/tidwall/gjson"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

const monthFormat = "2006-01"

// Attribute groups revenue records by sales channel and campaign, and
// buckets the totals into a monthly timeline. Campaign and spend come out
// of free-form record metadata; missing fields count as empty/zero.
// Pure function, deterministic output: groups sort by revenue descending
// (channel, then campaign, as tie-breaks), the timeline ascends by month.
func Attribute(records []models.RevenueRecord) *models.AttributionResult {
	type groupKey struct {
		channel  string
		campaign string
	}

	groups := make(map[groupKey]*models.AttributionGroup)
	months := make(map[string]*models.AttributionPoint)
	result := &models.AttributionResult{}

	for _, rec := range records {
		campaign := gjson.GetBytes(rec.Metadata, "campaign").String()
		spend := gjson.GetBytes(rec.Metadata, "spend_cents").Int()

		key := groupKey{channel: rec.Source, campaign: campaign}
		g := groups[key]
		if g == nil {
			g = &models.AttributionGroup{Channel: rec.Source, Campaign: campaign}
			groups[key] = g
		}
		g.RevenueCents += rec.AmountCents
		g.SpendCents += spend
		g.Records++

		month := rec.TransactionDate.UTC().Format(monthFormat)
		p := months[month]
		if p == nil {
			p = &models.AttributionPoint{Month: month}
			months[month] = p
		}
		p.RevenueCents += rec.AmountCents
		p.SpendCents += spend

		result.TotalRevenueCents += rec.AmountCents
		result.TotalSpendCents += spend
	}

	result.Groups = make([]models.AttributionGroup, 0, len(groups))
	for _, g := range groups {
		g.NetCents = g.RevenueCents - g.SpendCents
		if g.SpendCents > 0 {
			g.ROAS = float64(g.RevenueCents) / float64(g.SpendCents)
		}
		result.Groups = append(result.Groups, *g)
	}
	sort.Slice(result.Groups, func(i, j int) bool {
		a, b := result.Groups[i], result.Groups[j]
		if a.RevenueCents != b.RevenueCents {
			return a.RevenueCents > b.RevenueCents
		}
		if a.Channel != b.Channel {
			return a.Channel < b.Channel
		}
		return a.Campaign < b.Campaign
	})

	result.Timeline = make([]models.AttributionPoint, 0, len(months))
	for _, p := range months {
		result.Timeline = append(result.Timeline, *p)
	}
	sort.Slice(result.Timeline, func(i, j int) bool {
		return result.Timeline[i].Month < result.Timeline[j].Month
	})

	return result
}
