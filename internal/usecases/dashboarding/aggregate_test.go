package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

func recordWithScore(score float64, ratings ...int) *domain.EvaluationRecord {
	record := &domain.EvaluationRecord{OverallScore: score}
	for i, rating := range ratings {
		record.Items = append(record.Items, domain.EvaluationItem{
			BehaviorItemID: "item_" + string(rune('a'+i)),
			Rating:         rating,
		})
	}
	return record
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		expected domain.Trend
	}{
		{
			name:     "recentes melhores que anteriores",
			scores:   []float64{4, 4, 4, 2, 2, 2},
			expected: domain.TrendImproving,
		},
		{
			name:     "recentes piores que anteriores",
			scores:   []float64{2, 2, 2, 4, 4, 4},
			expected: domain.TrendDeclining,
		},
		{
			name:     "diferenca dentro da margem",
			scores:   []float64{3.1, 3.0, 3.0, 3.0, 3.0, 2.9},
			expected: domain.TrendStable,
		},
		{
			name:     "diferenca exatamente na margem continua estavel",
			scores:   []float64{3.2, 3.2, 3.2, 3.0, 3.0, 3.0},
			expected: domain.TrendStable,
		},
		{
			name:     "queda exatamente na margem continua estavel",
			scores:   []float64{3.0, 3.0, 3.0, 3.2, 3.2, 3.2},
			expected: domain.TrendStable,
		},
		{
			name:     "diferenca logo acima da margem melhora",
			scores:   []float64{3.21, 3.21, 3.21, 3.0, 3.0, 3.0},
			expected: domain.TrendImproving,
		},
		{
			name:     "menos de duas avaliacoes",
			scores:   []float64{4},
			expected: domain.TrendInsufficientData,
		},
		{
			name:     "sem janela anterior",
			scores:   []float64{4, 3, 2},
			expected: domain.TrendInsufficientData,
		},
		{
			name:     "janela anterior parcial ja conta",
			scores:   []float64{4, 4, 4, 2},
			expected: domain.TrendImproving,
		},
		{
			name:     "janela anterior limitada a tres registros",
			scores:   []float64{2, 2, 2, 4, 4, 4, 1, 1, 1},
			expected: domain.TrendDeclining,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrendOf(tt.scores))
		})
	}
}

func TestBucketConfig_LimitesInclusivos(t *testing.T) {
	assert.Equal(t, domain.BucketExcellent, domain.RawScaleBuckets.Classify(4.5))
	assert.Equal(t, domain.BucketGood, domain.RawScaleBuckets.Classify(4.49))

	assert.Equal(t, domain.BucketExcellent, domain.PercentBuckets.Classify(90))
	assert.Equal(t, domain.BucketGood, domain.PercentBuckets.Classify(75))
	assert.Equal(t, domain.BucketAverage, domain.PercentBuckets.Classify(50))
	assert.Equal(t, domain.BucketPoor, domain.PercentBuckets.Classify(49.9))
}

func TestSummarize(t *testing.T) {
	records := []*domain.EvaluationRecord{
		recordWithScore(95, 4, 4, 4),
		recordWithScore(80, 4, 3, 3),
		recordWithScore(90, 4, 4, 3),
		recordWithScore(55, 2, 2, 3),
		recordWithScore(40, 2, 1, 2),
		recordWithScore(50, 2, 2, 2),
	}

	summary := Summarize("7", "Time Sul", records, domain.PercentBuckets)

	assert.Equal(t, "7", summary.Key)
	assert.Equal(t, "Time Sul", summary.Label)
	assert.Equal(t, 6, summary.Count)
	assert.InDelta(t, 68.3, summary.AverageScore, 0.01)
	assert.Equal(t, domain.Distribution{Excellent: 2, Good: 1, Average: 2, Poor: 1}, summary.Distribution)
	assert.Equal(t, domain.TrendImproving, summary.Trend)
}

func TestSummarize_SemAvaliacoes(t *testing.T) {
	summary := Summarize("3", "", nil, domain.PercentBuckets)

	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, float64(0), summary.AverageScore)
	assert.Equal(t, domain.Distribution{}, summary.Distribution)
	assert.Equal(t, domain.TrendInsufficientData, summary.Trend)
}

func TestCategoryAverages(t *testing.T) {
	normalizer := NewNormalizer(nil)

	records := []*domain.EvaluationRecord{
		{
			Items: []domain.EvaluationItem{
				{BehaviorItemID: "sofia_prep_1", Rating: 4},
				{BehaviorItemID: "sofia_prep_2", Rating: 2},
				{BehaviorItemID: "obj_1", Rating: 3},
				{BehaviorItemID: "obs1", Rating: 4},
			},
		},
		{
			Items: []domain.EvaluationItem{
				{BehaviorItemID: "sofia_prep_1", Rating: 3},
				{BehaviorItemID: "nao_avaliado", Rating: 0},
			},
		},
	}

	averages := CategoryAverages(records, normalizer)

	assert.Len(t, averages, 3)

	byCategory := make(map[string]domain.CategoryAverage)
	for _, avg := range averages {
		byCategory[avg.Category] = avg
	}

	// (4+2+3)/3 = 3.0 na escala 1-4, 75% em percentual.
	assert.Equal(t, 3, byCategory[domain.CategoryPreparation].Count)
	assert.InDelta(t, 75.0, byCategory[domain.CategoryPreparation].Average, 0.01)
	assert.Equal(t, domain.KindSalesBehavior, byCategory[domain.CategoryPreparation].Kind)

	assert.InDelta(t, 75.0, byCategory[domain.CategoryObjections].Average, 0.01)

	assert.Equal(t, domain.KindCoaching, byCategory[domain.CategoryObservation].Kind)
	assert.InDelta(t, 100.0, byCategory[domain.CategoryObservation].Average, 0.01)
}

func TestCategoryAverages_OrdenadoPorCategoria(t *testing.T) {
	records := []*domain.EvaluationRecord{
		{
			Items: []domain.EvaluationItem{
				{BehaviorItemID: "prop_1", Rating: 4},
				{BehaviorItemID: "obj_1", Rating: 4},
				{BehaviorItemID: "prep_1", Rating: 4},
			},
		},
	}

	averages := CategoryAverages(records, NewNormalizer(nil))

	keys := make([]string, 0, len(averages))
	for _, avg := range averages {
		keys = append(keys, avg.Category)
	}
	assert.Equal(t, []string{
		domain.CategoryCommercial,
		domain.CategoryObjections,
		domain.CategoryPreparation,
	}, keys)
}
