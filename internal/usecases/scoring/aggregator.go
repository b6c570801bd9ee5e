package scoring

import (
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

// ClusterScore calcula a média percentual de uma categoria a partir das notas
// por item. Itens sem nota (ausentes ou com valor 0) são ignorados na média.
// Retorna 0 quando nenhum item da categoria foi avaliado. A escala 1-4 é
// convertida para 0-100 via (média/4)*100, sem arredondamento; quem exibe
// arredonda.
func ClusterScore(category domain.Category, ratings map[string]int) float64 {
	sum := 0
	rated := 0

	for _, item := range category.Items {
		rating, ok := ratings[item.ID]
		if !ok || rating == 0 {
			continue
		}
		sum += rating
		rated++
	}

	if rated == 0 {
		return 0
	}

	avg := float64(sum) / float64(rated)
	return (avg / float64(MaxRating)) * 100
}

// OverallScore calcula o score geral ponderado da avaliação. Apenas
// categorias com pelo menos um item avaliado entram na conta: o peso das
// demais é excluído do denominador (a categoria não avaliada não contribui
// nem como zero). Retorna 0 quando nada foi avaliado.
func OverallScore(categories []domain.Category, ratings map[string]int) float64 {
	weightedSum := 0.0
	totalWeight := 0.0

	for _, category := range categories {
		if !hasRatedItem(category, ratings) {
			continue
		}

		weightedSum += ClusterScore(category, ratings) * category.Weight
		totalWeight += category.Weight
	}

	if totalWeight == 0 {
		return 0
	}

	return weightedSum / totalWeight
}

// MissingItems retorna, na ordem da rubrica, os IDs dos itens que ainda não
// têm nota válida. Uma avaliação só pode ser enviada quando o retorno é vazio.
func MissingItems(rubric *domain.Rubric, ratings map[string]int) []string {
	var missing []string

	for _, category := range rubric.Categories {
		for _, item := range category.Items {
			rating, ok := ratings[item.ID]
			if !ok || rating < MinRating || rating > MaxRating {
				missing = append(missing, item.ID)
			}
		}
	}

	return missing
}

func hasRatedItem(category domain.Category, ratings map[string]int) bool {
	for _, item := range category.Items {
		if rating, ok := ratings[item.ID]; ok && rating > 0 {
			return true
		}
	}
	return false
}
