package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func teamRecords() []*domain.EvaluationRecord {
	return []*domain.EvaluationRecord{
		{
			SalespersonID: 10,
			OverallScore:  95,
			Items:         []domain.EvaluationItem{{BehaviorItemID: "prep_1", Rating: 4}},
		},
		{
			SalespersonID: 10,
			OverallScore:  80,
			Items:         []domain.EvaluationItem{{BehaviorItemID: "prep_1", Rating: 3}},
		},
		{
			SalespersonID: 11,
			OverallScore:  45,
			Items:         []domain.EvaluationItem{{BehaviorItemID: "obj_1", Rating: 2}},
		},
	}
}

func TestService_ForTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evalRepo := mocks.NewMockEvaluationRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	teamRepo := mocks.NewMockTeamRepository(ctrl)
	rubricRepo := mocks.NewMockRubricRepository(ctrl)

	teamRepo.EXPECT().GetTeamByID(7).Return(&domain.Team{ID: 7, Name: "Time Sul"}, nil)
	evalRepo.EXPECT().ListByTeam(7, gomock.Any()).Return(teamRecords(), nil)
	userRepo.EXPECT().GetUserByID(10).Return(&domain.User{ID: 10, Name: "Ana", Lastname: "Souza"}, nil)
	userRepo.EXPECT().GetUserByID(11).Return(&domain.User{ID: 11, Name: "Bruno"}, nil)
	rubricRepo.EXPECT().ListRubrics().Return(nil, nil)

	service := &Service{
		evaluationRepo: evalRepo,
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		rubricRepo:     rubricRepo,
		buckets:        domain.PercentBuckets,
	}

	response, err := service.ForTeam(7, nil)

	require.NoError(t, err)
	require.NotNil(t, response)

	assert.Equal(t, "Time Sul", response.Summary.Label)
	assert.Equal(t, 3, response.Summary.Count)
	assert.InDelta(t, 73.3, response.Summary.AverageScore, 0.01)
	assert.Equal(t, domain.Distribution{Excellent: 1, Good: 1, Poor: 1}, response.Summary.Distribution)

	// Um grupo por vendedor, na ordem de aparição dos registros
	require.Len(t, response.Groups, 2)
	assert.Equal(t, "10", response.Groups[0].Key)
	assert.Equal(t, "Ana Souza", response.Groups[0].Label)
	assert.Equal(t, 2, response.Groups[0].Count)
	assert.Equal(t, "Bruno", response.Groups[1].Label)

	// Médias por categoria canônica, em ordem alfabética
	require.Len(t, response.Categories, 2)
	assert.Equal(t, domain.CategoryObjections, response.Categories[0].Category)
	assert.Equal(t, domain.CategoryPreparation, response.Categories[1].Category)
	assert.InDelta(t, 87.5, response.Categories[1].Average, 0.01)
}

func TestService_ForViewer(t *testing.T) {
	tests := []struct {
		name   string
		claims *domain.Claims
		setup  func(evalRepo *mocks.MockEvaluationRepository, userRepo *mocks.MockUserRepository, teamRepo *mocks.MockTeamRepository, rubricRepo *mocks.MockRubricRepository)
	}{
		{
			name:   "vendedor enxerga apenas os próprios números",
			claims: &domain.Claims{UserID: 10, UserRoleID: domain.RoleSalesperson},
			setup: func(evalRepo *mocks.MockEvaluationRepository, userRepo *mocks.MockUserRepository, teamRepo *mocks.MockTeamRepository, rubricRepo *mocks.MockRubricRepository) {
				userRepo.EXPECT().GetUserByID(10).Return(&domain.User{ID: 10, Name: "Ana"}, nil)
				evalRepo.EXPECT().ListBySalesperson(10, gomock.Any()).Return(nil, nil)
				rubricRepo.EXPECT().ListRubrics().Return(nil, nil)
			},
		},
		{
			name:   "líder enxerga o time",
			claims: &domain.Claims{UserID: 20, UserRoleID: domain.RoleSalesLead, UserTeamID: intPtr(7)},
			setup: func(evalRepo *mocks.MockEvaluationRepository, userRepo *mocks.MockUserRepository, teamRepo *mocks.MockTeamRepository, rubricRepo *mocks.MockRubricRepository) {
				teamRepo.EXPECT().GetTeamByID(7).Return(&domain.Team{ID: 7, Name: "Time Sul"}, nil)
				evalRepo.EXPECT().ListByTeam(7, gomock.Any()).Return(nil, nil)
				rubricRepo.EXPECT().ListRubrics().Return(nil, nil)
			},
		},
		{
			name:   "gerente regional enxerga os times da região",
			claims: &domain.Claims{UserID: 30, UserRoleID: domain.RoleRegionalManager, UserRegionID: strPtr("sul")},
			setup: func(evalRepo *mocks.MockEvaluationRepository, userRepo *mocks.MockUserRepository, teamRepo *mocks.MockTeamRepository, rubricRepo *mocks.MockRubricRepository) {
				teamRepo.EXPECT().ListTeamsByRegion("sul").Return([]*domain.Team{{ID: 7, Name: "Time Sul"}}, nil)
				evalRepo.EXPECT().ListByTeam(7, gomock.Any()).Return(nil, nil)
				rubricRepo.EXPECT().ListRubrics().Return(nil, nil)
			},
		},
		{
			name:   "diretoria enxerga a empresa inteira",
			claims: &domain.Claims{UserID: 40, UserRoleID: domain.RoleSalesDirector},
			setup: func(evalRepo *mocks.MockEvaluationRepository, userRepo *mocks.MockUserRepository, teamRepo *mocks.MockTeamRepository, rubricRepo *mocks.MockRubricRepository) {
				evalRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
				teamRepo.EXPECT().ListTeams().Return(nil, nil)
				rubricRepo.EXPECT().ListRubrics().Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			evalRepo := mocks.NewMockEvaluationRepository(ctrl)
			userRepo := mocks.NewMockUserRepository(ctrl)
			teamRepo := mocks.NewMockTeamRepository(ctrl)
			rubricRepo := mocks.NewMockRubricRepository(ctrl)

			tt.setup(evalRepo, userRepo, teamRepo, rubricRepo)

			service := &Service{
				evaluationRepo: evalRepo,
				userRepo:       userRepo,
				teamRepo:       teamRepo,
				rubricRepo:     rubricRepo,
				buckets:        domain.PercentBuckets,
			}

			response, err := service.ForViewer(tt.claims, nil)

			require.NoError(t, err)
			assert.NotNil(t, response)
		})
	}
}

func TestService_ForViewer_LiderSemTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		evaluationRepo: mocks.NewMockEvaluationRepository(ctrl),
		userRepo:       mocks.NewMockUserRepository(ctrl),
		teamRepo:       mocks.NewMockTeamRepository(ctrl),
		rubricRepo:     mocks.NewMockRubricRepository(ctrl),
		buckets:        domain.PercentBuckets,
	}

	response, err := service.ForViewer(&domain.Claims{UserID: 20, UserRoleID: domain.RoleSalesLead}, nil)

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrTeamNotResolved)
}
