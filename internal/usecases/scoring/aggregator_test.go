package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

func buildCategory(id string, weight float64, itemIDs ...string) domain.Category {
	items := make([]domain.Item, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		items = append(items, domain.Item{ID: itemID, Name: itemID})
	}

	return domain.Category{
		ID:     id,
		Name:   id,
		Weight: weight,
		Kind:   domain.KindSalesBehavior,
		Items:  items,
	}
}

func TestClusterScore(t *testing.T) {
	category := buildCategory("prep", 0.3, "prep_1", "prep_2", "prep_3")

	tests := []struct {
		name     string
		ratings  map[string]int
		expected float64
	}{
		{
			name:     "Todos os itens avaliados",
			ratings:  map[string]int{"prep_1": 4, "prep_2": 3, "prep_3": 2},
			expected: 75, // média 3 de 4 -> 75%
		},
		{
			name:     "Itens sem nota são ignorados na média",
			ratings:  map[string]int{"prep_1": 4},
			expected: 100,
		},
		{
			name:     "Nota zero conta como não avaliado",
			ratings:  map[string]int{"prep_1": 0, "prep_2": 2},
			expected: 50,
		},
		{
			name:     "Nenhum item avaliado retorna zero",
			ratings:  map[string]int{},
			expected: 0,
		},
		{
			name:     "Nota de item de outra categoria não interfere",
			ratings:  map[string]int{"outro_item": 4},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClusterScore(category, tt.ratings))
		})
	}
}

func TestClusterScore_SemArredondamentoInterno(t *testing.T) {
	// 1+2+4 = 7, média 7/3, percentual (7/3/4)*100 = 58.333...
	category := buildCategory("prob", 0.2, "a", "b", "c")
	ratings := map[string]int{"a": 1, "b": 2, "c": 4}

	assert.InDelta(t, 58.333333, ClusterScore(category, ratings), 0.0001)
}

func TestOverallScore(t *testing.T) {
	prep := buildCategory("prep", 0.6, "prep_1", "prep_2")
	prob := buildCategory("prob", 0.4, "prob_1", "prob_2")

	tests := []struct {
		name       string
		categories []domain.Category
		ratings    map[string]int
		expected   float64
	}{
		{
			name:       "Peso renormalizado exclui categoria não avaliada",
			categories: []domain.Category{prep, prob},
			// apenas prep avaliada com 80% -> overall = 80, não 48
			ratings:  map[string]int{"prep_1": 3, "prep_2": 3},
			expected: (3.0 / 4.0) * 100,
		},
		{
			name:       "Duas categorias avaliadas usam os pesos configurados",
			categories: []domain.Category{prep, prob},
			// prep = 100% peso 0.6, prob = 50% peso 0.4 -> 80%
			ratings:  map[string]int{"prep_1": 4, "prep_2": 4, "prob_1": 2, "prob_2": 2},
			expected: 80,
		},
		{
			name:       "Nada avaliado retorna zero",
			categories: []domain.Category{prep, prob},
			ratings:    map[string]int{},
			expected:   0,
		},
		{
			name:       "Pesos não precisam somar um",
			categories: []domain.Category{buildCategory("a", 2, "a1"), buildCategory("b", 6, "b1")},
			// a = 100% peso 2, b = 50% peso 6 -> (200+300)/8 = 62.5
			ratings:  map[string]int{"a1": 4, "b1": 2},
			expected: 62.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OverallScore(tt.categories, tt.ratings))
		})
	}
}

func TestMissingItems(t *testing.T) {
	rubric := &domain.Rubric{
		Categories: []domain.Category{
			buildCategory("prep", 0.6, "prep_1", "prep_2"),
			buildCategory("prob", 0.4, "prob_1"),
		},
	}

	tests := []struct {
		name     string
		ratings  map[string]int
		expected []string
	}{
		{
			name:     "Todos avaliados",
			ratings:  map[string]int{"prep_1": 1, "prep_2": 4, "prob_1": 2},
			expected: nil,
		},
		{
			name:     "Itens sem nota aparecem na ordem da rubrica",
			ratings:  map[string]int{"prep_2": 3},
			expected: []string{"prep_1", "prob_1"},
		},
		{
			name:     "Nota fora do intervalo conta como pendente",
			ratings:  map[string]int{"prep_1": 5, "prep_2": 3, "prob_1": 0},
			expected: []string{"prep_1", "prob_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MissingItems(rubric, tt.ratings))
		})
	}
}
