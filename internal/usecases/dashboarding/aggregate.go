package dashboarding

import (
	"sort"

	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/scoring"
	"github.com/vfg2006/sales-scorecard-api/pkg/utils"
)

// trendDelta é a diferença mínima de média de nota (escala 1-4) entre as
// janelas recente e anterior para o sinal sair de "stable".
const trendDelta = 0.2

// trendEpsilon absorve o ruído de ponto flutuante das médias: uma diferença
// igual à margem precisa continuar "stable" mesmo quando a subtração não
// resulta em 0.2 exato.
const trendEpsilon = 1e-9

// trendWindow é o tamanho de cada janela de comparação da tendência.
const trendWindow = 3

// Summarize agrega as avaliações de um grupo: quantidade, média do score
// geral, distribuição em 4 faixas e sinal de tendência. Os registros devem
// chegar ordenados do mais recente para o mais antigo, que é a ordem que os
// repositórios retornam.
func Summarize(key, label string, records []*domain.EvaluationRecord, buckets domain.BucketConfig) domain.GroupSummary {
	summary := domain.GroupSummary{
		Key:   key,
		Label: label,
		Count: len(records),
		Trend: domain.TrendInsufficientData,
	}

	if len(records) == 0 {
		return summary
	}

	var total float64
	for _, record := range records {
		total += record.OverallScore

		switch buckets.Classify(record.OverallScore) {
		case domain.BucketExcellent:
			summary.Distribution.Excellent++
		case domain.BucketGood:
			summary.Distribution.Good++
		case domain.BucketAverage:
			summary.Distribution.Average++
		default:
			summary.Distribution.Poor++
		}
	}

	summary.AverageScore = utils.RoundWithOneDecimalPlace(total / float64(len(records)))
	summary.Trend = TrendOf(meanRatings(records))

	return summary
}

// TrendOf compara a média das 3 notas mais recentes contra a média das 3
// anteriores. Com menos de 2 registros, ou sem nenhum registro na janela
// anterior, não há tendência a reportar.
func TrendOf(scores []float64) domain.Trend {
	if len(scores) < 2 {
		return domain.TrendInsufficientData
	}

	recent := scores[:min(trendWindow, len(scores))]
	older := scores[len(recent):]
	if len(older) > trendWindow {
		older = older[:trendWindow]
	}

	if len(older) == 0 {
		return domain.TrendInsufficientData
	}

	delta := mean(recent) - mean(older)
	switch {
	case delta > trendDelta+trendEpsilon:
		return domain.TrendImproving
	case delta < -(trendDelta + trendEpsilon):
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// CategoryAverages agrupa as notas de item de todas as avaliações por
// categoria canônica e devolve a média percentual de cada uma, ordenada por
// chave para resposta estável.
func CategoryAverages(records []*domain.EvaluationRecord, normalizer *Normalizer) []domain.CategoryAverage {
	type accumulator struct {
		kind  domain.CategoryKind
		sum   int
		count int
	}

	byCategory := make(map[string]*accumulator)

	for _, record := range records {
		for _, item := range record.Items {
			if item.Rating == 0 {
				continue
			}

			key, kind := normalizer.Canonical(item.BehaviorItemID)
			acc, ok := byCategory[key]
			if !ok {
				acc = &accumulator{kind: kind}
				byCategory[key] = acc
			}
			acc.sum += item.Rating
			acc.count++
		}
	}

	averages := make([]domain.CategoryAverage, 0, len(byCategory))
	for key, acc := range byCategory {
		averages = append(averages, domain.CategoryAverage{
			Category: key,
			Kind:     acc.kind,
			Count:    acc.count,
			Average:  utils.RoundWithOneDecimalPlace(float64(acc.sum) / float64(acc.count) / scoring.MaxRating * 100),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		return averages[i].Category < averages[j].Category
	})

	return averages
}

// meanRatings converte cada avaliação na média bruta (escala 1-4) das notas
// dos seus itens, ignorando itens não avaliados. A tendência é calculada
// nessa escala, não no percentual.
func meanRatings(records []*domain.EvaluationRecord) []float64 {
	ratings := make([]float64, 0, len(records))

	for _, record := range records {
		var sum, count int
		for _, item := range record.Items {
			if item.Rating == 0 {
				continue
			}
			sum += item.Rating
			count++
		}
		if count == 0 {
			continue
		}
		ratings = append(ratings, float64(sum)/float64(count))
	}

	return ratings
}

func mean(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
