package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-scorecard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-scorecard-api/pkg/middleware"
)

// GetDashboard retorna o dashboard no recorte do usuário logado
func GetDashboard(service dashboarding.Insighter) http.HandlerFunc {
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

		response, err := service.ForViewer(userClaims, filters)
		if err != nil {
			if errors.Is(err, dashboarding.ErrTeamNotResolved) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário sem time vinculado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar dashboard", nil)
			return
		}

		writeDashboard(w, response)
	}
}

// GetTeamDashboard retorna o dashboard de um time específico
func GetTeamDashboard(service dashboarding.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		teamID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do time inválido", nil)
			return
		}

		filters, err := evaluationFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		response, err := service.ForTeam(teamID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar dashboard do time", nil)
			return
		}

		writeDashboard(w, response)
	}
}

// GetSalespersonDashboard retorna o dashboard de um vendedor específico
func GetSalespersonDashboard(service dashboarding.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		salespersonID, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		filters, err := evaluationFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		response, err := service.ForSalesperson(salespersonID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar dashboard do vendedor", nil)
			return
		}

		writeDashboard(w, response)
	}
}

func writeDashboard(w http.ResponseWriter, response *domain.DashboardResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
