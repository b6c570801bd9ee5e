package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

func TestNormalizer_Canonical(t *testing.T) {
	rubrics := []*domain.Rubric{
		{
			ID: "lead_mid",
			Categories: []domain.Category{
				{
					ID:        "cat_prep",
					Name:      "Preparação",
					Kind:      domain.KindSalesBehavior,
					Canonical: domain.CategoryPreparation,
					Items:     []domain.Item{{ID: "lead_q1"}, {ID: "lead_q2"}},
				},
				{
					ID:    "cat_obs",
					Name:  "Observação",
					Kind:  domain.KindCoaching,
					Items: []domain.Item{{ID: "coach_1"}},
				},
			},
		},
	}

	normalizer := NewNormalizer(rubrics)

	tests := []struct {
		name         string
		idOrName     string
		expectedKey  string
		expectedKind domain.CategoryKind
	}{
		{
			name:         "item conhecido resolve pela tabela da rubrica",
			idOrName:     "lead_q1",
			expectedKey:  domain.CategoryPreparation,
			expectedKind: domain.KindSalesBehavior,
		},
		{
			name:         "item de coaching sem chave canonica usa o nome da categoria",
			idOrName:     "coach_1",
			expectedKey:  "observação",
			expectedKind: domain.KindCoaching,
		},
		{
			name:         "fallback por substring de preparacao",
			idOrName:     "sofia_prep_3",
			expectedKey:  domain.CategoryPreparation,
			expectedKind: domain.KindSalesBehavior,
		},
		{
			name:         "fallback de definicao de problema",
			idOrName:     "problem_2",
			expectedKey:  domain.CategoryProblemDefinition,
			expectedKind: domain.KindSalesBehavior,
		},
		{
			name:         "fallback de objecoes",
			idOrName:     "item_obj_1",
			expectedKey:  domain.CategoryObjections,
			expectedKind: domain.KindSalesBehavior,
		},
		{
			name:         "fallback de proposta comercial",
			idOrName:     "prop_4",
			expectedKey:  domain.CategoryCommercial,
			expectedKind: domain.KindSalesBehavior,
		},
		{
			name:         "prefixo de coaching nao e mesclado com venda",
			idOrName:     "obs2",
			expectedKey:  domain.CategoryObservation,
			expectedKind: domain.KindCoaching,
		},
		{
			name:         "prefixo fb resolve para feedback",
			idOrName:     "fb1",
			expectedKey:  domain.CategoryFeedback,
			expectedKind: domain.KindCoaching,
		},
		{
			name:         "identificador desconhecido vira categoria propria",
			idOrName:     "Misterio_9",
			expectedKey:  "misterio_9",
			expectedKind: domain.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, kind := normalizer.Canonical(tt.idOrName)
			assert.Equal(t, tt.expectedKey, key)
			assert.Equal(t, tt.expectedKind, kind)
		})
	}
}

func TestNormalizer_TabelaTemPrecedenciaSobreHeuristica(t *testing.T) {
	// O ID contém "obs" mas a rubrica o declara como item de venda. A tabela
	// construída das rubricas vence a heurística de prefixo.
	rubrics := []*domain.Rubric{
		{
			Categories: []domain.Category{
				{
					Kind:      domain.KindSalesBehavior,
					Canonical: domain.CategoryObjections,
					Items:     []domain.Item{{ID: "obstaculos_1"}},
				},
			},
		},
	}

	key, kind := NewNormalizer(rubrics).Canonical("obstaculos_1")
	assert.Equal(t, domain.CategoryObjections, key)
	assert.Equal(t, domain.KindSalesBehavior, kind)
}
