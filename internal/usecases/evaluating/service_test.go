package evaluating

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

func testRubric() *domain.Rubric {
	return &domain.Rubric{
		ID:           "salesperson_mid",
		RoleID:       domain.RoleSalesperson,
		CustomerType: "mid",
		Categories: []domain.Category{
			{
				ID:        "cat_prep",
				Name:      "Preparação",
				Weight:    0.6,
				Kind:      domain.KindSalesBehavior,
				Canonical: domain.CategoryPreparation,
				Items:     []domain.Item{{ID: "prep_1"}, {ID: "prep_2"}},
			},
			{
				ID:        "cat_obj",
				Name:      "Objeções",
				Weight:    0.4,
				Kind:      domain.KindSalesBehavior,
				Canonical: domain.CategoryObjections,
				Items:     []domain.Item{{ID: "obj_1"}},
			},
		},
	}
}

func coachingRubric() *domain.Rubric {
	return &domain.Rubric{
		ID:           "coaching_mid",
		RoleID:       domain.RoleRegionalManager,
		CustomerType: "mid",
		Categories: []domain.Category{
			{
				ID:        "cat_obs",
				Name:      "Observação",
				Weight:    0.5,
				Kind:      domain.KindCoaching,
				Canonical: domain.CategoryObservation,
				Items:     []domain.Item{{ID: "obs1"}},
			},
			{
				ID:        "cat_fb",
				Name:      "Feedback",
				Weight:    0.5,
				Kind:      domain.KindCoaching,
				Canonical: domain.CategoryFeedback,
				Items:     []domain.Item{{ID: "fb1"}},
			},
		},
	}
}

func testSubject() *domain.User {
	return &domain.User{
		ID:     10,
		Name:   "Ana",
		RoleID: domain.RoleSalesperson,
		TeamID: intPtr(7),
		Active: true,
	}
}

func validRequest() *domain.CreateEvaluationRequest {
	return &domain.CreateEvaluationRequest{
		SalespersonID: 10,
		VisitDate:     "2026-03-14",
		CustomerType:  "mid",
		Items: []domain.CreateEvaluationItem{
			{BehaviorItemID: "prep_1", Rating: 4},
			{BehaviorItemID: "prep_2", Rating: 3, Comment: "Bom roteiro"},
			{BehaviorItemID: "obj_1", Rating: 2},
		},
	}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateEvaluationRequest
		setup    func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, record *domain.EvaluationRecord, err error)
	}{
		{
			name:    "avaliação completa é persistida com score ponderado",
			request: validRequest(),
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(10).Return(testSubject(), nil)
				rubricRepo.EXPECT().GetRubric(domain.RoleSalesperson, "mid").Return(testRubric(), nil)
				evalRepo.EXPECT().CreateEvaluation(gomock.Any()).DoAndReturn(
					func(record *domain.EvaluationRecord) (*domain.EvaluationRecord, error) {
						record.ID = "a1B2c3"
						return record, nil
					})
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.NoError(t, err)
				require.NotNil(t, record)

				// prep: (4+3)/2/4 = 87.5%; obj: 2/4 = 50%
				// geral: 87.5*0.6 + 50*0.4 = 72.5
				assert.InDelta(t, 72.5, record.OverallScore, 0.001)
				assert.Equal(t, "a1B2c3", record.ID)
				assert.Equal(t, 10, record.SalespersonID)
				assert.Equal(t, 20, record.ManagerID)
				require.NotNil(t, record.TeamID)
				assert.Equal(t, 7, *record.TeamID)

				// Itens na ordem da rubrica, não na do payload
				require.Len(t, record.Items, 3)
				assert.Equal(t, "prep_1", record.Items[0].BehaviorItemID)
				assert.Equal(t, "Bom roteiro", record.Items[1].Comment)
			},
		},
		{
			name: "gerente regional é avaliado com a rubrica de coaching",
			request: &domain.CreateEvaluationRequest{
				SalespersonID: 30,
				VisitDate:     "2026-03-14",
				Items: []domain.CreateEvaluationItem{
					{BehaviorItemID: "obs1", Rating: 3},
					{BehaviorItemID: "fb1", Rating: 4},
				},
			},
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(30).Return(&domain.User{
					ID:     30,
					Name:   "Carla",
					RoleID: domain.RoleRegionalManager,
					Active: true,
				}, nil)
				rubricRepo.EXPECT().GetRubric(domain.RoleRegionalManager, "").Return(coachingRubric(), nil)
				evalRepo.EXPECT().CreateEvaluation(gomock.Any()).DoAndReturn(
					func(record *domain.EvaluationRecord) (*domain.EvaluationRecord, error) {
						return record, nil
					})
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.NoError(t, err)
				require.NotNil(t, record)

				// obs: 3/4 = 75%; fb: 4/4 = 100%; geral: 75*0.5 + 100*0.5 = 87.5
				assert.InDelta(t, 87.5, record.OverallScore, 0.001)
				assert.Nil(t, record.TeamID)
			},
		},
		{
			name: "item sem nota bloqueia o envio antes de qualquer escrita",
			request: &domain.CreateEvaluationRequest{
				SalespersonID: 10,
				VisitDate:     "2026-03-14",
				CustomerType:  "mid",
				Items: []domain.CreateEvaluationItem{
					{BehaviorItemID: "prep_1", Rating: 4},
					{BehaviorItemID: "obj_1", Rating: 2},
				},
			},
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(10).Return(testSubject(), nil)
				rubricRepo.EXPECT().GetRubric(domain.RoleSalesperson, "mid").Return(testRubric(), nil)
				// CreateEvaluation não pode ser chamado
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.Error(t, err)
				assert.Nil(t, record)
				assert.True(t, errors.Is(err, ErrIncompleteRatings))
				assert.True(t, IsValidationError(err))

				var evalErr *EvalError
				require.True(t, errors.As(err, &evalErr))
				assert.Equal(t, []string{"prep_2"}, evalErr.ItemIDs)
			},
		},
		{
			name: "item enviado com nota zero conta como não avaliado",
			request: &domain.CreateEvaluationRequest{
				SalespersonID: 10,
				VisitDate:     "2026-03-14",
				CustomerType:  "mid",
				Items: []domain.CreateEvaluationItem{
					{BehaviorItemID: "prep_1", Rating: 4},
					{BehaviorItemID: "prep_2", Rating: 0},
					{BehaviorItemID: "obj_1", Rating: 2},
				},
			},
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(10).Return(testSubject(), nil)
				rubricRepo.EXPECT().GetRubric(domain.RoleSalesperson, "mid").Return(testRubric(), nil)
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrIncompleteRatings))

				var evalErr *EvalError
				require.True(t, errors.As(err, &evalErr))
				assert.Equal(t, []string{"prep_2"}, evalErr.ItemIDs)
			},
		},
		{
			name: "item que não pertence à rubrica é rejeitado",
			request: &domain.CreateEvaluationRequest{
				SalespersonID: 10,
				VisitDate:     "2026-03-14",
				CustomerType:  "mid",
				Items: []domain.CreateEvaluationItem{
					{BehaviorItemID: "intruso_1", Rating: 4},
				},
			},
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(10).Return(testSubject(), nil)
				rubricRepo.EXPECT().GetRubric(domain.RoleSalesperson, "mid").Return(testRubric(), nil)
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownRubricItem))
			},
		},
		{
			name: "alias legado score preenche a nota",
			request: &domain.CreateEvaluationRequest{
				SalespersonID: 10,
				VisitDate:     "2026-03-14",
				CustomerType:  "mid",
				Items: []domain.CreateEvaluationItem{
					{BehaviorItemID: "prep_1", Score: 4},
					{BehaviorItemID: "prep_2", Score: 4},
					{BehaviorItemID: "obj_1", Score: 4},
				},
			},
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(10).Return(testSubject(), nil)
				rubricRepo.EXPECT().GetRubric(domain.RoleSalesperson, "mid").Return(testRubric(), nil)
				evalRepo.EXPECT().CreateEvaluation(gomock.Any()).DoAndReturn(
					func(record *domain.EvaluationRecord) (*domain.EvaluationRecord, error) {
						return record, nil
					})
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 100.0, record.OverallScore, 0.001)
			},
		},
		{
			name: "vendedor inexistente",
			request: func() *domain.CreateEvaluationRequest {
				req := validRequest()
				req.SalespersonID = 99
				return req
			}(),
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(99).Return(nil, nil)
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrSubjectNotFound))
			},
		},
		{
			name: "sem rubrica para o perfil",
			request: func() *domain.CreateEvaluationRequest {
				req := validRequest()
				req.CustomerType = "high"
				return req
			}(),
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(10).Return(testSubject(), nil)
				rubricRepo.EXPECT().GetRubric(domain.RoleSalesperson, "high").Return(nil, nil)
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrRubricNotFound))
			},
		},
		{
			name: "data de visita em formato inválido",
			request: func() *domain.CreateEvaluationRequest {
				req := validRequest()
				req.VisitDate = "14/03/2026"
				return req
			}(),
			setup: func(evalRepo *mocks.MockEvaluationRepository, rubricRepo *mocks.MockRubricRepository, userRepo *mocks.MockUserRepository) {
			},
			validate: func(t *testing.T, record *domain.EvaluationRecord, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidVisitDate))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			evalRepo := mocks.NewMockEvaluationRepository(ctrl)
			rubricRepo := mocks.NewMockRubricRepository(ctrl)
			userRepo := mocks.NewMockUserRepository(ctrl)

			tt.setup(evalRepo, rubricRepo, userRepo)

			service := &Service{
				evaluationRepo: evalRepo,
				rubricRepo:     rubricRepo,
				userRepo:       userRepo,
				validate:       validator.New(),
			}

			record, err := service.Create(20, tt.request)
			tt.validate(t, record, err)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evalRepo := mocks.NewMockEvaluationRepository(ctrl)
	evalRepo.EXPECT().GetByID("naoexiste").Return(nil, nil)

	service := &Service{evaluationRepo: evalRepo, validate: validator.New()}

	record, err := service.GetByID("naoexiste")

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, ErrEvaluationNotFound))
}
