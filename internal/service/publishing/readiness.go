package publishing

import (
	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

// KDP listing limits used as completion thresholds.
const (
	kdpKeywordSlots  = 7
	kdpCategorySlots = 2
)

// Readiness scores how close a project is to publishable. Pure function over
// normalized facts; weights sum to 100 and the score is the sum of completed
// item weights. An already-published project scores 100 outright.
func Readiness(input models.ReadinessInput) *models.ReadinessResult {
	items := []models.ReadinessItem{
		{
			Name:     "word_count_target",
			Complete: input.TargetWordCount > 0 && input.CurrentWordCount >= input.TargetWordCount,
			Weight:   25,
		},
		{
			Name:     "cover_selected",
			Complete: input.HasCover,
			Weight:   20,
		},
		{
			Name:     "blurb_active",
			Complete: input.HasBlurb,
			Weight:   15,
		},
		{
			Name:     "kdp_keywords",
			Complete: input.KeywordCount >= kdpKeywordSlots,
			Weight:   15,
		},
		{
			Name:     "kdp_categories",
			Complete: input.CategoryCount >= kdpCategorySlots,
			Weight:   10,
		},
		{
			Name:     "price_set",
			Complete: input.HasPrice,
			Weight:   10,
		},
		{
			Name:     "release_date_set",
			Complete: input.HasReleaseDate,
			Weight:   5,
		},
	}

	result := &models.ReadinessResult{
		Items: items,
		Total: len(items),
	}

	for _, item := range items {
		if item.Complete {
			result.Completed++
			result.Score += item.Weight
		}
	}

	if input.Published {
		result.Score = 100
	}

	return result
}
