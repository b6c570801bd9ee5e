package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-scorecard-api/pkg/apiErrors"
)

// GetTeamScoreboard retorna o ranking mensal dos times por score médio
func GetTeamScoreboard(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scoreboard, err := service.GetTeamScoreboard()
		if err != nil {
			logrus.Error("Erro ao buscar scoreboard dos times:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar scoreboard dos times", nil)
			return
		}

		if scoreboard == nil {
			apiErrors.WriteError(w, apiErrors.ErrEvaluationNotFound, "Nenhum scoreboard encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(scoreboard)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do scoreboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
