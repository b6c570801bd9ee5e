package evaluating

import (
	"errors"
	"fmt"
)

// Erros do fluxo de criação e consulta de avaliações
var (
	ErrIncompleteRatings  = errors.New("todos os itens da rubrica precisam de nota antes do envio")
	ErrRatingOutOfRange   = errors.New("nota fora do intervalo permitido (1-4)")
	ErrUnknownRubricItem  = errors.New("item não pertence à rubrica ativa")
	ErrRubricNotFound     = errors.New("rubrica não encontrada para o perfil e tipo de cliente")
	ErrEvaluationNotFound = errors.New("avaliação não encontrada")
	ErrSubjectNotFound    = errors.New("vendedor avaliado não encontrado")
	ErrInvalidVisitDate   = errors.New("data da visita inválida")
)

// EvalError é um erro com contexto adicional de validação da avaliação
type EvalError struct {
	Err     error    // Erro base
	Code    string   // Código de erro para API
	ItemIDs []string // Itens envolvidos, quando aplicável
	Details string   // Detalhes adicionais
}

func (e *EvalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// IsValidationError indica se o erro foi bloqueado antes de qualquer
// escrita no banco
func IsValidationError(err error) bool {
	return errors.Is(err, ErrIncompleteRatings) ||
		errors.Is(err, ErrRatingOutOfRange) ||
		errors.Is(err, ErrUnknownRubricItem) ||
		errors.Is(err, ErrInvalidVisitDate)
}

func NewEvalError(baseErr error, code string, details string) *EvalError {
	return &EvalError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewItemsEvalError(baseErr error, code string, itemIDs []string, details string) *EvalError {
	return &EvalError{
		Err:     baseErr,
		Code:    code,
		ItemIDs: itemIDs,
		Details: details,
	}
}
