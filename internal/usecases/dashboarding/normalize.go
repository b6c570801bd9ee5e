package dashboarding

import (
	"strings"

	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

// Normalizer resolve um identificador de item (ou nome cru de categoria vindo
// do servidor) para uma chave canônica de categoria. A fonte autoritativa é a
// tabela itemID -> categoria construída das próprias rubricas; a heurística de
// substring fica apenas como fallback para identificadores de gerações antigas
// que não existem mais em nenhuma rubrica ativa.
type Normalizer struct {
	byItemID map[string]normalized
}

type normalized struct {
	key  string
	kind domain.CategoryKind
}

func NewNormalizer(rubrics []*domain.Rubric) *Normalizer {
	byItemID := make(map[string]normalized)

	for _, rubric := range rubrics {
		for _, category := range rubric.Categories {
			key := category.Canonical
			if key == "" {
				key = strings.ToLower(category.Name)
			}

			for _, item := range category.Items {
				byItemID[item.ID] = normalized{key: key, kind: category.Kind}
			}
		}
	}

	return &Normalizer{byItemID: byItemID}
}

// Canonical retorna a chave canônica e o tipo da categoria de um
// identificador. Identificadores de coaching (prefixos obs/env/fb/act) mantêm
// suas categorias literais e nunca são mesclados com as categorias de
// comportamento de venda. Identificadores não reconhecidos viram sua própria
// categoria, com a string crua como chave, para não perder dados em silêncio.
func (n *Normalizer) Canonical(idOrName string) (string, domain.CategoryKind) {
	if hit, ok := n.byItemID[idOrName]; ok {
		return hit.key, hit.kind
	}

	lowered := strings.ToLower(strings.TrimSpace(idOrName))

	// IDs legados de coaching: obs1, env2, fb3, act1...
	switch {
	case strings.HasPrefix(lowered, "obs"):
		return domain.CategoryObservation, domain.KindCoaching
	case strings.HasPrefix(lowered, "env"):
		return domain.CategoryEnvironment, domain.KindCoaching
	case strings.HasPrefix(lowered, "fb"):
		return domain.CategoryFeedback, domain.KindCoaching
	case strings.HasPrefix(lowered, "act"):
		return domain.CategoryAction, domain.KindCoaching
	}

	// IDs de comportamento de venda com sufixos: sofia_prep_3, item_obj...
	switch {
	case strings.Contains(lowered, "prep"):
		return domain.CategoryPreparation, domain.KindSalesBehavior
	case strings.Contains(lowered, "prob"):
		return domain.CategoryProblemDefinition, domain.KindSalesBehavior
	case strings.Contains(lowered, "obj"):
		return domain.CategoryObjections, domain.KindSalesBehavior
	case strings.Contains(lowered, "prop"), strings.Contains(lowered, "commercial"):
		return domain.CategoryCommercial, domain.KindSalesBehavior
	}

	return lowered, domain.KindUnknown
}
