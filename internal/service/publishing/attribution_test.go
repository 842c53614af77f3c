package publishing

import (
	"testing"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

func record(amount int64, source, metadata string, date string) models.RevenueRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.RevenueRecord{
		AmountCents:     amount,
		Source:          source,
		TransactionDate: d,
		Metadata:        []byte(metadata),
	}
}

func TestAttributeEmpty(t *testing.T) {
	result := Attribute(nil)

	if len(result.Groups) != 0 || len(result.Timeline) != 0 {
		t.Errorf("empty input produced groups/timeline: %+v", result)
	}
	if result.Groups == nil || result.Timeline == nil {
		t.Error("empty result should serialize as [], not null")
	}
	if result.TotalRevenueCents != 0 || result.TotalSpendCents != 0 {
		t.Errorf("totals not zero: %+v", result)
	}
}

func TestAttributeGrouping(t *testing.T) {
	records := []models.RevenueRecord{
		record(10000, "amazon_ads", `{"campaign":"launch","spend_cents":4000}`, "2026-01-10"),
		record(5000, "amazon_ads", `{"campaign":"launch","spend_cents":1000}`, "2026-02-05"),
		record(8000, "facebook_ads", `{"campaign":"spring","spend_cents":2000}`, "2026-02-14"),
		record(3000, "organic", `{}`, "2026-02-20"),
	}

	result := Attribute(records)

	if result.TotalRevenueCents != 26000 {
		t.Errorf("TotalRevenueCents = %d, want 26000", result.TotalRevenueCents)
	}
	if result.TotalSpendCents != 7000 {
		t.Errorf("TotalSpendCents = %d, want 7000", result.TotalSpendCents)
	}

	if len(result.Groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(result.Groups))
	}

	// Revenue descending: amazon launch (15000), facebook spring (8000), organic (3000)
	g := result.Groups[0]
	if g.Channel != "amazon_ads" || g.Campaign != "launch" {
		t.Errorf("top group = %s/%s, want amazon_ads/launch", g.Channel, g.Campaign)
	}
	if g.RevenueCents != 15000 || g.SpendCents != 5000 || g.Records != 2 {
		t.Errorf("top group totals = %+v", g)
	}
	if g.NetCents != 10000 {
		t.Errorf("NetCents = %d, want 10000", g.NetCents)
	}
	if g.ROAS != 3.0 {
		t.Errorf("ROAS = %v, want 3.0", g.ROAS)
	}

	organic := result.Groups[2]
	if organic.ROAS != 0 {
		t.Errorf("zero-spend group ROAS = %v, want 0", organic.ROAS)
	}
}

func TestAttributeTimeline(t *testing.T) {
	records := []models.RevenueRecord{
		record(5000, "amazon_ads", `{"spend_cents":1000}`, "2026-02-05"),
		record(10000, "amazon_ads", `{"spend_cents":4000}`, "2026-01-10"),
		record(2000, "organic", `{}`, "2026-02-25"),
	}

	result := Attribute(records)

	if len(result.Timeline) != 2 {
		t.Fatalf("timeline = %d months, want 2", len(result.Timeline))
	}
	if result.Timeline[0].Month != "2026-01" || result.Timeline[1].Month != "2026-02" {
		t.Errorf("timeline not ascending: %+v", result.Timeline)
	}
	if result.Timeline[1].RevenueCents != 7000 {
		t.Errorf("february revenue = %d, want 7000", result.Timeline[1].RevenueCents)
	}
}

func TestAttributeMalformedMetadata(t *testing.T) {
	records := []models.RevenueRecord{
		record(5000, "amazon_ads", `not json`, "2026-01-10"),
		record(3000, "amazon_ads", ``, "2026-01-12"),
	}

	result := Attribute(records)

	if len(result.Groups) != 1 {
		t.Fatalf("groups = %d, want 1 (both collapse to empty campaign)", len(result.Groups))
	}
	if result.Groups[0].Campaign != "" || result.Groups[0].SpendCents != 0 {
		t.Errorf("malformed metadata should yield empty campaign and zero spend: %+v", result.Groups[0])
	}
	if result.TotalRevenueCents != 8000 {
		t.Errorf("TotalRevenueCents = %d, want 8000", result.TotalRevenueCents)
	}
}

func TestAttributeDeterministicTieBreak(t *testing.T) {
	records := []models.RevenueRecord{
		record(5000, "b_channel", `{}`, "2026-01-10"),
		record(5000, "a_channel", `{}`, "2026-01-11"),
	}

	result := Attribute(records)

	if result.Groups[0].Channel != "a_channel" {
		t.Errorf("equal-revenue tie should order by channel, got %s first", result.Groups[0].Channel)
	}
}
