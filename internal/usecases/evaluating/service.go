// Package evaluating implementa o envio e a consulta de avaliações: valida o
// preenchimento completo da rubrica, calcula o score geral e persiste o
// registro uma única vez por envio.
package evaluating

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/scoring"
	"github.com/vfg2006/sales-scorecard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-scorecard-api/pkg/utils"
)

type Submitter interface {
	Create(managerID int, req *domain.CreateEvaluationRequest) (*domain.EvaluationRecord, error)
	GetByID(id string) (*domain.EvaluationRecord, error)
	ListBySalesperson(salespersonID int, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error)
	ListByManager(managerID int, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error)
	ListByTeam(teamID int, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error)
}

type Service struct {
	evaluationRepo repository.EvaluationRepository
	rubricRepo     repository.RubricRepository
	userRepo       repository.UserRepository
	validate       *validator.Validate
}

func NewService(
	evaluationRepo repository.EvaluationRepository,
	rubricRepo repository.RubricRepository,
	userRepo repository.UserRepository,
) Submitter {
	return &Service{
		evaluationRepo: evaluationRepo,
		rubricRepo:     rubricRepo,
		userRepo:       userRepo,
		validate:       validator.New(),
	}
}

// Create valida e persiste uma avaliação. Toda a validação acontece antes de
// qualquer escrita: se um item da rubrica ativa estiver sem nota válida, o
// envio é bloqueado localmente e nada chega ao banco.
func (s *Service) Create(managerID int, req *domain.CreateEvaluationRequest) (*domain.EvaluationRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, NewEvalError(ErrInvalidVisitDate, apiErrors.ErrInvalidRequest, err.Error())
	}

	visitDate, err := utils.ParseDate(req.VisitDate)
	if err != nil {
		return nil, NewEvalError(ErrInvalidVisitDate, apiErrors.ErrInvalidFormat, req.VisitDate)
	}

	subject, err := s.userRepo.GetUserByID(req.SalespersonID)
	if err != nil || subject == nil {
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar vendedor avaliado")
		}
		return nil, NewEvalError(ErrSubjectNotFound, apiErrors.ErrSubjectNotFound, fmt.Sprintf("vendedor %d", req.SalespersonID))
	}

	rubric, err := s.rubricRepo.GetRubric(subject.RoleID, req.CustomerType)
	if err != nil {
		return nil, NewEvalError(err, apiErrors.ErrDatabaseOperation, "erro ao carregar rubrica")
	}
	if rubric == nil {
		return nil, NewEvalError(ErrRubricNotFound, apiErrors.ErrRubricNotFound,
			fmt.Sprintf("role %d, tipo de cliente %q", subject.RoleID, req.CustomerType))
	}

	collector, err := s.collectRatings(rubric, req.Items)
	if err != nil {
		return nil, err
	}

	if missing := scoring.MissingItems(rubric, collector.Ratings()); len(missing) > 0 {
		return nil, NewItemsEvalError(ErrIncompleteRatings, apiErrors.ErrIncompleteRatings, missing,
			fmt.Sprintf("%d item(ns) sem nota", len(missing)))
	}

	overallScore := utils.RoundWithTwoDecimalPlace(scoring.OverallScore(rubric.Categories, collector.Ratings()))

	record := &domain.EvaluationRecord{
		SalespersonID:  subject.ID,
		ManagerID:      managerID,
		TeamID:         subject.TeamID,
		VisitDate:      *visitDate,
		CustomerName:   sanitizeText(req.CustomerName),
		CustomerType:   req.CustomerType,
		Location:       sanitizeText(req.Location),
		OverallComment: sanitizeText(req.OverallComment),
		OverallScore:   overallScore,
		Items:          buildItems(rubric, collector),
	}

	record, err = s.evaluationRepo.CreateEvaluation(record)
	if err != nil {
		return nil, NewEvalError(err, apiErrors.ErrDatabaseOperation, "erro ao salvar avaliação")
	}

	// Estado coletado é descartado após o envio com sucesso
	collector.Clear()

	logrus.WithFields(logrus.Fields{
		"evaluation_id":  record.ID,
		"salesperson_id": record.SalespersonID,
		"manager_id":     record.ManagerID,
		"overall_score":  record.OverallScore,
	}).Info("Avaliação registrada com sucesso")

	return record, nil
}

// collectRatings carrega as notas do payload em um Collector, rejeitando
// itens desconhecidos e notas fora da escala.
func (s *Service) collectRatings(rubric *domain.Rubric, items []domain.CreateEvaluationItem) (*scoring.Collector, error) {
	lookup := rubric.CategoryLookup()
	collector := scoring.NewCollector()

	for _, item := range items {
		if _, ok := lookup[item.BehaviorItemID]; !ok {
			return nil, NewItemsEvalError(ErrUnknownRubricItem, apiErrors.ErrUnknownRubricItem,
				[]string{item.BehaviorItemID}, item.BehaviorItemID)
		}

		rating := item.EffectiveRating()
		if rating == 0 {
			// Item sem nota: o bloqueio acontece na checagem de itens
			// faltantes, com a lista completa do que falta.
			continue
		}

		if err := collector.SetRating(item.BehaviorItemID, rating); err != nil {
			return nil, NewItemsEvalError(ErrRatingOutOfRange, apiErrors.ErrRatingOutOfRange,
				[]string{item.BehaviorItemID}, fmt.Sprintf("item %s, nota %d", item.BehaviorItemID, rating))
		}

		if item.Comment != "" {
			collector.SetExample(item.BehaviorItemID, sanitizeText(item.Comment))
		}
	}

	return collector, nil
}

// buildItems monta a lista de itens na ordem da rubrica, não na ordem de
// chegada do payload.
func buildItems(rubric *domain.Rubric, collector *scoring.Collector) []domain.EvaluationItem {
	items := make([]domain.EvaluationItem, 0, rubric.ItemCount())

	for _, category := range rubric.Categories {
		for _, item := range category.Items {
			rating, ok := collector.Rating(item.ID)
			if !ok {
				continue
			}

			items = append(items, domain.EvaluationItem{
				BehaviorItemID: item.ID,
				Rating:         rating,
				Comment:        collector.Example(item.ID),
			})
		}
	}

	return items
}

// sanitizeText normaliza texto livre vindo do cliente
func sanitizeText(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.TrimSpace(s)
}

func (s *Service) GetByID(id string) (*domain.EvaluationRecord, error) {
	record, err := s.evaluationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, NewEvalError(ErrEvaluationNotFound, apiErrors.ErrEvaluationNotFound, id)
	}
	return record, nil
}

func (s *Service) ListBySalesperson(salespersonID int, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	return s.evaluationRepo.ListBySalesperson(salespersonID, filters)
}

func (s *Service) ListByManager(managerID int, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	return s.evaluationRepo.ListByManager(managerID, filters)
}

func (s *Service) ListByTeam(teamID int, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	return s.evaluationRepo.ListByTeam(teamID, filters)
}
