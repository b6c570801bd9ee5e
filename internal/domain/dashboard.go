package domain

// Trend é o sinal de tendência de um grupo de avaliações, comparando a média
// das 3 avaliações mais recentes contra as 3 anteriores.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

// Bucket é a faixa de classificação de um score.
type Bucket string

const (
	BucketExcellent Bucket = "excellent"
	BucketGood      Bucket = "good"
	BucketAverage   Bucket = "average"
	BucketPoor      Bucket = "poor"
)

// BucketConfig concentra os cortes de classificação de score em uma única
// configuração explícita, resolvida uma vez por escala. Limites inclusivos.
type BucketConfig struct {
	ExcellentMin float64 `json:"excellent_min"`
	GoodMin      float64 `json:"good_min"`
	AverageMin   float64 `json:"average_min"`
}

// PercentBuckets são os cortes para scores em percentual (escala 1-4
// convertida para 0-100).
var PercentBuckets = BucketConfig{ExcellentMin: 90, GoodMin: 75, AverageMin: 50}

// RawScaleBuckets são os cortes para scores brutos em escala 1-5.
var RawScaleBuckets = BucketConfig{ExcellentMin: 4.5, GoodMin: 3.5, AverageMin: 2.5}

// Classify retorna o bucket de um score. Os limites são inclusivos: um score
// exatamente no corte pertence à faixa superior.
func (c BucketConfig) Classify(score float64) Bucket {
	switch {
	case score >= c.ExcellentMin:
		return BucketExcellent
	case score >= c.GoodMin:
		return BucketGood
	case score >= c.AverageMin:
		return BucketAverage
	default:
		return BucketPoor
	}
}

// Distribution é a contagem de avaliações por faixa de score.
type Distribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

// GroupSummary agrega as avaliações de um grupo (pessoa, time ou região).
type GroupSummary struct {
	Key          string       `json:"key"`
	Label        string       `json:"label,omitempty"`
	Count        int          `json:"count"`
	AverageScore float64      `json:"average_score"`
	Distribution Distribution `json:"distribution"`
	Trend        Trend        `json:"trend"`
}

// CategoryAverage é a média percentual de uma categoria canônica no dashboard.
type CategoryAverage struct {
	Category string       `json:"category"`
	Kind     CategoryKind `json:"kind"`
	Count    int          `json:"count"`
	Average  float64      `json:"average"`
}

// DashboardResponse é a resposta dos endpoints de analytics.
type DashboardResponse struct {
	Summary    GroupSummary      `json:"summary"`
	Groups     []GroupSummary    `json:"groups,omitempty"`
	Categories []CategoryAverage `json:"categories,omitempty"`
}
