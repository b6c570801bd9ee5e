package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/evaluating"
	"github.com/vfg2006/sales-scorecard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-scorecard-api/pkg/middleware"
	"github.com/vfg2006/sales-scorecard-api/pkg/utils"
)

// CreateEvaluation registra uma avaliação preenchida pelo gestor logado
func CreateEvaluation(service evaluating.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEvaluation")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateEvaluationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record, err := service.Create(userClaims.UserID, &req)
		if err != nil {
			handleEvaluationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(record)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetEvaluation retorna uma avaliação por ID
func GetEvaluation(service evaluating.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da avaliação não fornecido", nil)
			return
		}

		record, err := service.GetByID(id)
		if err != nil {
			handleEvaluationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(record)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListEvaluations lista avaliações no recorte do usuário logado, com filtros
// opcionais de período e de vendedor
func ListEvaluations(service evaluating.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := evaluationFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		records, err := listForViewer(service, userClaims, r, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar avaliações", nil)
			return
		}

		if records == nil {
			records = []*domain.EvaluationRecord{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(records)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// listForViewer resolve o recorte da listagem: vendedor vê as próprias
// avaliações, gestores podem filtrar por vendedor ou time e por padrão veem
// o que avaliaram.
func listForViewer(service evaluating.Submitter, claims *domain.Claims, r *http.Request, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	if claims.UserRoleID == domain.RoleSalesperson {
		return service.ListBySalesperson(claims.UserID, filters)
	}

	if salespersonIDStr := r.URL.Query().Get("salespersonId"); salespersonIDStr != "" {
		salespersonID, err := strconv.Atoi(salespersonIDStr)
		if err != nil {
			return nil, err
		}
		return service.ListBySalesperson(salespersonID, filters)
	}

	if teamIDStr := r.URL.Query().Get("teamId"); teamIDStr != "" {
		teamID, err := strconv.Atoi(teamIDStr)
		if err != nil {
			return nil, err
		}
		return service.ListByTeam(teamID, filters)
	}

	return service.ListByManager(claims.UserID, filters)
}

// evaluationFiltersFromQuery lê os filtros de período da query string
func evaluationFiltersFromQuery(r *http.Request) (*repository.EvaluationFilters, error) {
	filters := &repository.EvaluationFilters{}

	if startDate := r.URL.Query().Get("startDate"); startDate != "" {
		parsed, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, err
		}
		filters.StartDate = parsed
	}

	if endDate := r.URL.Query().Get("endDate"); endDate != "" {
		parsed, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, err
		}
		filters.EndDate = parsed
	}

	return filters, nil
}

// handleEvaluationError converte os erros do fluxo de avaliação na resposta
// da API, com os itens envolvidos quando houver
func handleEvaluationError(w http.ResponseWriter, err error) {
	var evalErr *evaluating.EvalError
	if errors.As(err, &evalErr) {
		var details any
		if len(evalErr.ItemIDs) > 0 {
			details = map[string]any{"item_ids": evalErr.ItemIDs}
		}
		apiErrors.WriteError(w, evalErr.Code, evalErr.Error(), details)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar avaliação", nil)
}
