package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/pkg/apiErrors"
)

// ListTeams lista os times cadastrados, com filtro opcional por região
func ListTeams(repo repository.TeamRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var teams []*domain.Team
		var err error

		if regionID := r.URL.Query().Get("regionId"); regionID != "" {
			teams, err = repo.ListTeamsByRegion(regionID)
		} else {
			teams, err = repo.ListTeams()
		}

		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar times", nil)
			return
		}

		if teams == nil {
			teams = []*domain.Team{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(teams)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetTeamMembers retorna os vendedores de um time
func GetTeamMembers(teamRepo repository.TeamRepository, userRepo repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do time não fornecido", nil)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do time inválido", nil)
			return
		}

		team, err := teamRepo.GetTeamByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar time", nil)
			return
		}

		if team == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Time não encontrado", nil)
			return
		}

		members, err := userRepo.ListUsersByTeam(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar membros do time", nil)
			return
		}

		if members == nil {
			members = []*domain.User{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(map[string]any{
			"team":    team,
			"members": members,
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
