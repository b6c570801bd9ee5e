package ranking

import (
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

type RankingService interface {
	GetTeamScoreboard() (*domain.TeamScoreboardResponse, error)
}

type TeamScoreboardService struct {
	ScoreboardRepository repository.ScoreboardRepository
}

func NewTeamScoreboardService(scoreboardRepository repository.ScoreboardRepository) RankingService {
	return &TeamScoreboardService{
		ScoreboardRepository: scoreboardRepository,
	}
}

func (s *TeamScoreboardService) GetTeamScoreboard() (*domain.TeamScoreboardResponse, error) {
	scoreboard, err := s.ScoreboardRepository.GetScoreboard()
	if err != nil {
		return nil, err
	}
	return scoreboard, nil
}
