package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestScoreboardSyncService_updateMonth(t *testing.T) {
	reference := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	month := reference.Format("01-2006")

	teams := []*domain.Team{
		{ID: 1, Name: "Time Norte"},
		{ID: 2, Name: "Time Sul"},
		{ID: 3, Name: "Time Leste"},
	}

	tests := []struct {
		name  string
		setup func(evalRepo *mocks.MockEvaluationRepository, scoreboardRepo *mocks.MockScoreboardRepository)
	}{
		{
			name: "ordena pela média e calcula variação de posição",
			setup: func(evalRepo *mocks.MockEvaluationRepository, scoreboardRepo *mocks.MockScoreboardRepository) {
				evalRepo.EXPECT().ListByTeam(1, gomock.Any()).Return([]*domain.EvaluationRecord{
					{OverallScore: 70}, {OverallScore: 80},
				}, nil)
				evalRepo.EXPECT().ListByTeam(2, gomock.Any()).Return([]*domain.EvaluationRecord{
					{OverallScore: 90},
				}, nil)
				// Time sem avaliações fica fora do ranking do mês
				evalRepo.EXPECT().ListByTeam(3, gomock.Any()).Return(nil, nil)

				// Na rodada anterior o Time Norte liderava
				scoreboardRepo.EXPECT().GetByTeamID(2, month).Return(&domain.TeamScoreboardItem{
					TeamID: 2, Position: 2,
				}, nil)
				scoreboardRepo.EXPECT().GetByTeamID(1, month).Return(&domain.TeamScoreboardItem{
					TeamID: 1, Position: 1,
				}, nil)

				scoreboardRepo.EXPECT().SaveOrUpdateScoreboard(gomock.Any()).DoAndReturn(
					func(items []*domain.TeamScoreboardItem) error {
						require.Len(t, items, 2)

						assert.Equal(t, 2, items[0].TeamID)
						assert.Equal(t, 1, items[0].Position)
						assert.InDelta(t, 90.0, items[0].AverageScore, 0.001)
						assert.Equal(t, 2, items[0].PreviousPosition)
						assert.Equal(t, 1, items[0].PositionChange) // Subiu uma posição

						assert.Equal(t, 1, items[1].TeamID)
						assert.Equal(t, 2, items[1].Position)
						assert.InDelta(t, 75.0, items[1].AverageScore, 0.001)
						assert.Equal(t, 2, items[1].EvaluationCount)
						assert.Equal(t, -1, items[1].PositionChange) // Desceu uma posição

						assert.Equal(t, month, items[0].Month)
						return nil
					})
			},
		},
		{
			name: "primeiro cálculo do mês não tem posição anterior",
			setup: func(evalRepo *mocks.MockEvaluationRepository, scoreboardRepo *mocks.MockScoreboardRepository) {
				evalRepo.EXPECT().ListByTeam(1, gomock.Any()).Return([]*domain.EvaluationRecord{
					{OverallScore: 60},
				}, nil)
				evalRepo.EXPECT().ListByTeam(2, gomock.Any()).Return(nil, nil)
				evalRepo.EXPECT().ListByTeam(3, gomock.Any()).Return(nil, nil)

				scoreboardRepo.EXPECT().GetByTeamID(1, month).Return(nil, nil)

				scoreboardRepo.EXPECT().SaveOrUpdateScoreboard(gomock.Any()).DoAndReturn(
					func(items []*domain.TeamScoreboardItem) error {
						require.Len(t, items, 1)
						assert.Equal(t, 1, items[0].Position)
						assert.Equal(t, 0, items[0].PreviousPosition)
						assert.Equal(t, 0, items[0].PositionChange)
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			evalRepo := mocks.NewMockEvaluationRepository(ctrl)
			scoreboardRepo := mocks.NewMockScoreboardRepository(ctrl)

			tt.setup(evalRepo, scoreboardRepo)

			service := &ScoreboardSyncService{
				evaluationRepo: evalRepo,
				scoreboardRepo: scoreboardRepo,
			}

			err := service.updateMonth(teams, reference)
			assert.NoError(t, err)
		})
	}
}

func TestScoreboardSyncService_updateMonth_SemAvaliacoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evalRepo := mocks.NewMockEvaluationRepository(ctrl)
	scoreboardRepo := mocks.NewMockScoreboardRepository(ctrl)

	evalRepo.EXPECT().ListByTeam(1, gomock.Any()).Return(nil, nil)
	// SaveOrUpdateScoreboard não pode ser chamado sem itens

	service := &ScoreboardSyncService{
		evaluationRepo: evalRepo,
		scoreboardRepo: scoreboardRepo,
	}

	err := service.updateMonth([]*domain.Team{{ID: 1, Name: "Time Norte"}}, time.Now())
	assert.NoError(t, err)
}

func TestMonthWindow(t *testing.T) {
	reference := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	start, end := monthWindow(reference)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestScoreboardSyncService_filtersDelimitamOMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evalRepo := mocks.NewMockEvaluationRepository(ctrl)
	scoreboardRepo := mocks.NewMockScoreboardRepository(ctrl)

	reference := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	evalRepo.EXPECT().ListByTeam(1, gomock.Any()).DoAndReturn(
		func(teamID int, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error) {
			require.NotNil(t, filters)
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)
			assert.Equal(t, time.March, filters.StartDate.Month())
			assert.Equal(t, 1, filters.StartDate.Day())
			assert.Equal(t, 31, filters.EndDate.Day())
			return nil, nil
		})

	service := &ScoreboardSyncService{
		evaluationRepo: evalRepo,
		scoreboardRepo: scoreboardRepo,
	}

	err := service.updateMonth([]*domain.Team{{ID: 1, Name: "Time Norte"}}, reference)
	assert.NoError(t, err)
}
