// Package dashboarding agrega avaliações em resumos para os dashboards:
// contagem, média, distribuição por faixa, tendência e médias por categoria
// canônica. O recorte de visão (pessoa, time, região, empresa) segue o perfil
// de quem consulta.
package dashboarding

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

var ErrTeamNotResolved = errors.New("user has no team assigned")

type Insighter interface {
	ForSalesperson(salespersonID int, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error)
	ForManager(managerID int, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error)
	ForTeam(teamID int, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error)
	ForRegion(regionID string, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error)
	ForCompany(filters *repository.EvaluationFilters) (*domain.DashboardResponse, error)
	ForViewer(claims *domain.Claims, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error)
}

type Service struct {
	evaluationRepo repository.EvaluationRepository
	userRepo       repository.UserRepository
	teamRepo       repository.TeamRepository
	rubricRepo     repository.RubricRepository
	buckets        domain.BucketConfig
}

func NewService(
	evaluationRepo repository.EvaluationRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	rubricRepo repository.RubricRepository,
	buckets domain.BucketConfig,
) Insighter {
	return &Service{
		evaluationRepo: evaluationRepo,
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		rubricRepo:     rubricRepo,
		buckets:        buckets,
	}
}

// ForViewer resolve o recorte do dashboard pelo perfil do usuário logado:
// vendedor vê só os próprios números, líder vê o time, gerente regional vê a
// região e diretoria/admin vê a empresa inteira.
func (s *Service) ForViewer(claims *domain.Claims, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error) {
	switch claims.UserRoleID {
	case domain.RoleAdmin, domain.RoleSalesDirector:
		return s.ForCompany(filters)
	case domain.RoleRegionalManager:
		if claims.UserRegionID == nil {
			return s.ForManager(claims.UserID, filters)
		}
		return s.ForRegion(*claims.UserRegionID, filters)
	case domain.RoleSalesLead:
		if claims.UserTeamID == nil {
			return nil, errors.Wrapf(ErrTeamNotResolved, "user %d", claims.UserID)
		}
		return s.ForTeam(*claims.UserTeamID, filters)
	default:
		return s.ForSalesperson(claims.UserID, filters)
	}
}

func (s *Service) ForSalesperson(salespersonID int, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error) {
	user, err := s.userRepo.GetUserByID(salespersonID)
	if err != nil {
		return nil, err
	}

	records, err := s.evaluationRepo.ListBySalesperson(salespersonID, filters)
	if err != nil {
		return nil, errors.Wrap(err, "listing salesperson evaluations")
	}

	return s.respond(strconv.Itoa(salespersonID), fullName(user), records, nil), nil
}

func (s *Service) ForManager(managerID int, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error) {
	records, err := s.evaluationRepo.ListByManager(managerID, filters)
	if err != nil {
		return nil, errors.Wrap(err, "listing manager evaluations")
	}

	groups, err := s.groupBySalesperson(records)
	if err != nil {
		return nil, err
	}

	return s.respond(strconv.Itoa(managerID), "", records, groups), nil
}

// ForTeam agrega as avaliações de um time, com um grupo por vendedor.
func (s *Service) ForTeam(teamID int, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error) {
	team, err := s.teamRepo.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	records, err := s.evaluationRepo.ListByTeam(teamID, filters)
	if err != nil {
		return nil, errors.Wrap(err, "listing team evaluations")
	}

	groups, err := s.groupBySalesperson(records)
	if err != nil {
		return nil, err
	}

	return s.respond(strconv.Itoa(teamID), team.Name, records, groups), nil
}

// ForRegion agrega as avaliações de todos os times de uma região, com um
// grupo por time.
func (s *Service) ForRegion(regionID string, filters *repository.EvaluationFilters) (*domain.DashboardResponse, error) {
	teams, err := s.teamRepo.ListTeamsByRegion(regionID)
	if err != nil {
		return nil, err
	}

	var all []*domain.EvaluationRecord
	groups := make([]domain.GroupSummary, 0, len(teams))

	for _, team := range teams {
		records, err := s.evaluationRepo.ListByTeam(team.ID, filters)
		if err != nil {
			return nil, errors.Wrapf(err, "listing evaluations for team %d", team.ID)
		}

		groups = append(groups, Summarize(strconv.Itoa(team.ID), team.Name, records, s.buckets))
		all = append(all, records...)
	}

	return s.respond(regionID, "", all, groups), nil
}

func (s *Service) ForCompany(filters *repository.EvaluationFilters) (*domain.DashboardResponse, error) {
	records, err := s.evaluationRepo.ListAll(filters)
	if err != nil {
		return nil, errors.Wrap(err, "listing all evaluations")
	}

	teams, err := s.teamRepo.ListTeams()
	if err != nil {
		return nil, err
	}

	byTeam := make(map[int][]*domain.EvaluationRecord)
	var unassigned []*domain.EvaluationRecord
	for _, record := range records {
		if record.TeamID == nil {
			unassigned = append(unassigned, record)
			continue
		}
		byTeam[*record.TeamID] = append(byTeam[*record.TeamID], record)
	}

	groups := make([]domain.GroupSummary, 0, len(teams))
	for _, team := range teams {
		groups = append(groups, Summarize(strconv.Itoa(team.ID), team.Name, byTeam[team.ID], s.buckets))
	}
	if len(unassigned) > 0 {
		groups = append(groups, Summarize("unassigned", "Sem time", unassigned, s.buckets))
	}

	return s.respond("company", "", records, groups), nil
}

func (s *Service) respond(key, label string, records []*domain.EvaluationRecord, groups []domain.GroupSummary) *domain.DashboardResponse {
	normalizer, err := s.normalizer()
	if err != nil {
		// Sem rubricas carregadas o fallback heurístico ainda resolve as
		// categorias canônicas dos IDs conhecidos.
		normalizer = NewNormalizer(nil)
	}

	return &domain.DashboardResponse{
		Summary:    Summarize(key, label, records, s.buckets),
		Groups:     groups,
		Categories: CategoryAverages(records, normalizer),
	}
}

func (s *Service) groupBySalesperson(records []*domain.EvaluationRecord) ([]domain.GroupSummary, error) {
	bySalesperson := make(map[int][]*domain.EvaluationRecord)
	order := make([]int, 0)

	for _, record := range records {
		if _, ok := bySalesperson[record.SalespersonID]; !ok {
			order = append(order, record.SalespersonID)
		}
		bySalesperson[record.SalespersonID] = append(bySalesperson[record.SalespersonID], record)
	}

	groups := make([]domain.GroupSummary, 0, len(order))
	for _, salespersonID := range order {
		label := ""
		if user, err := s.userRepo.GetUserByID(salespersonID); err == nil {
			label = fullName(user)
		}
		groups = append(groups, Summarize(strconv.Itoa(salespersonID), label, bySalesperson[salespersonID], s.buckets))
	}

	return groups, nil
}

func (s *Service) normalizer() (*Normalizer, error) {
	rubrics, err := s.rubricRepo.ListRubrics()
	if err != nil {
		return nil, err
	}
	return NewNormalizer(rubrics), nil
}

func fullName(user *domain.User) string {
	if user == nil {
		return ""
	}
	if user.Lastname == "" {
		return user.Name
	}
	return fmt.Sprintf("%s %s", user.Name, user.Lastname)
}
