package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-scorecard-api/pkg/middleware"
)

// GetRubric retorna a rubrica ativa para um perfil e tipo de cliente. Sem
// parâmetros, devolve a variante do vendedor para cliente de share médio.
func GetRubric(repo repository.RubricRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleID := domain.RoleSalesperson
		if roleIDStr := r.URL.Query().Get("roleId"); roleIDStr != "" {
			parsed, err := strconv.Atoi(roleIDStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "roleId inválido", nil)
				return
			}
			roleID = parsed
		} else if userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			roleID = userClaims.UserRoleID
		}

		customerType := r.URL.Query().Get("customerType")

		rubric, err := repo.GetRubric(roleID, customerType)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar rubrica", nil)
			return
		}

		if rubric == nil {
			apiErrors.WriteError(w, apiErrors.ErrRubricNotFound, "Rubrica não encontrada para o perfil e tipo de cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(rubric)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListRubrics lista todas as variantes de rubrica cadastradas
func ListRubrics(repo repository.RubricRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rubrics, err := repo.ListRubrics()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar rubricas", nil)
			return
		}

		if rubrics == nil {
			rubrics = []*domain.Rubric{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(rubrics)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
