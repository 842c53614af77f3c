package publishing

import (
	"testing"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

func TestReadinessWeightsSumTo100(t *testing.T) {
	result := Readiness(models.ReadinessInput{})

	sum := 0
	for _, item := range result.Items {
		sum += item.Weight
	}
	if sum != 100 {
		t.Errorf("item weights sum to %d, want 100", sum)
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name          string
		input         models.ReadinessInput
		wantScore     int
		wantCompleted int
	}{
		{
			name:          "nothing done",
			input:         models.ReadinessInput{},
			wantScore:     0,
			wantCompleted: 0,
		},
		{
			name: "everything done",
			input: models.ReadinessInput{
				CurrentWordCount: 80000,
				TargetWordCount:  80000,
				HasCover:         true,
				HasBlurb:         true,
				KeywordCount:     7,
				CategoryCount:    2,
				HasPrice:         true,
				HasReleaseDate:   true,
			},
			wantScore:     100,
			wantCompleted: 7,
		},
		{
			name: "word target unmet",
			input: models.ReadinessInput{
				CurrentWordCount: 50000,
				TargetWordCount:  80000,
				HasCover:         true,
			},
			wantScore:     20,
			wantCompleted: 1,
		},
		{
			name: "no target set means word item incomplete",
			input: models.ReadinessInput{
				CurrentWordCount: 50000,
			},
			wantScore:     0,
			wantCompleted: 0,
		},
		{
			name: "keyword and category thresholds",
			input: models.ReadinessInput{
				KeywordCount:  6, // below the 7 KDP slots
				CategoryCount: 2,
			},
			wantScore:     10,
			wantCompleted: 1,
		},
		{
			name: "published scores 100 regardless",
			input: models.ReadinessInput{
				Published: true,
			},
			wantScore:     100,
			wantCompleted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Readiness(tt.input)

			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.Completed != tt.wantCompleted {
				t.Errorf("Completed = %d, want %d", result.Completed, tt.wantCompleted)
			}
			if result.Total != 7 {
				t.Errorf("Total = %d, want 7", result.Total)
			}
		})
	}
}
