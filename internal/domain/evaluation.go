package domain

import "time"

// EvaluationItem é a nota de um item da rubrica dentro de uma avaliação.
type EvaluationItem struct {
	BehaviorItemID string `json:"behaviorItemId"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment,omitempty"`
}

// EvaluationRecord é o resultado persistido de uma rubrica preenchida
// contra um vendedor em uma visita.
type EvaluationRecord struct {
	ID             string           `json:"id"`
	SalespersonID  int              `json:"salespersonId"`
	ManagerID      int              `json:"managerId"`
	TeamID         *int             `json:"teamId,omitempty"`
	VisitDate      time.Time        `json:"visitDate"`
	CustomerName   string           `json:"customerName,omitempty"`
	CustomerType   string           `json:"customerType,omitempty"`
	Location       string           `json:"location,omitempty"`
	OverallComment string           `json:"overallComment,omitempty"`
	OverallScore   float64          `json:"overallScore"`
	Items          []EvaluationItem `json:"items"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// CreateEvaluationRequest é o payload de criação de avaliação enviado pelo
// cliente. As chaves seguem o contrato publicado para o front.
type CreateEvaluationRequest struct {
	SalespersonID  int                   `json:"salespersonId" validate:"required,gt=0"`
	VisitDate      string                `json:"visitDate" validate:"required,datetime=2006-01-02"`
	CustomerName   string                `json:"customerName" validate:"omitempty,max=200"`
	CustomerType   string                `json:"customerType" validate:"omitempty,oneof=low mid high"`
	Location       string                `json:"location" validate:"omitempty,max=200"`
	OverallComment string                `json:"overallComment" validate:"omitempty,max=2000"`
	Items          []CreateEvaluationItem `json:"items" validate:"required,min=1,dive"`
}

// CreateEvaluationItem aceita "score" como alias legado de "rating",
// enviado por versões antigas do cliente.
type CreateEvaluationItem struct {
	BehaviorItemID string `json:"behaviorItemId" validate:"required"`
	Rating         int    `json:"rating" validate:"omitempty,min=0,max=4"`
	Score          int    `json:"score" validate:"omitempty,min=0,max=4"`
	Comment        string `json:"comment" validate:"omitempty,max=2000"`
}

// EffectiveRating resolve o alias legado: "rating" tem precedência,
// "score" é usado quando "rating" está ausente.
func (i CreateEvaluationItem) EffectiveRating() int {
	if i.Rating != 0 {
		return i.Rating
	}
	return i.Score
}
