package exporting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/dashboarding"
)

// Format é o formato de arquivo do export.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// File é o resultado pronto para download.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

type Exporter interface {
	Export(claims *domain.Claims, filters *repository.EvaluationFilters, format Format) (*File, error)
}

type Service struct {
	evaluationRepo repository.EvaluationRepository
	userRepo       repository.UserRepository
	rubricRepo     repository.RubricRepository
}

func NewService(
	evaluationRepo repository.EvaluationRepository,
	userRepo repository.UserRepository,
	rubricRepo repository.RubricRepository,
) Exporter {
	return &Service{
		evaluationRepo: evaluationRepo,
		userRepo:       userRepo,
		rubricRepo:     rubricRepo,
	}
}

// Export gera o arquivo no recorte do usuário logado: vendedor exporta só as
// próprias avaliações, líder as do time e os demais perfis a base inteira.
func (s *Service) Export(claims *domain.Claims, filters *repository.EvaluationFilters, format Format) (*File, error) {
	records, err := s.scopedRecords(claims, filters)
	if err != nil {
		return nil, err
	}

	rows := BuildRows(records, s.nameResolver(), s.normalizer())
	stamp := time.Now().Format("2006-01-02")

	switch format {
	case FormatCSV:
		return &File{
			Name:        fmt.Sprintf("evaluations_%s.csv", stamp),
			ContentType: "text/csv",
			Content:     RenderCSV(rows),
		}, nil
	case FormatXLSX:
		content, err := RenderXLSX(rows)
		if err != nil {
			return nil, err
		}
		return &File{
			Name:        fmt.Sprintf("evaluations_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

func (s *Service) scopedRecords(claims *domain.Claims, filters *repository.EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	switch claims.UserRoleID {
	case domain.RoleAdmin, domain.RoleSalesDirector, domain.RoleRegionalManager:
		return s.evaluationRepo.ListAll(filters)
	case domain.RoleSalesLead:
		if claims.UserTeamID == nil {
			return s.evaluationRepo.ListByManager(claims.UserID, filters)
		}
		return s.evaluationRepo.ListByTeam(*claims.UserTeamID, filters)
	default:
		return s.evaluationRepo.ListBySalesperson(claims.UserID, filters)
	}
}

// nameResolver carrega os usuários uma única vez e resolve IDs para nome
// completo. IDs desconhecidos viram o próprio número, para não perder a linha.
func (s *Service) nameResolver() func(userID int) string {
	names := make(map[int]string)
	if users, err := s.userRepo.ListUser(); err == nil {
		for _, user := range users {
			name := user.Name
			if user.Lastname != "" {
				name = fmt.Sprintf("%s %s", user.Name, user.Lastname)
			}
			names[user.ID] = name
		}
	}

	return func(userID int) string {
		if name, ok := names[userID]; ok {
			return name
		}
		return fmt.Sprintf("%d", userID)
	}
}

func (s *Service) normalizer() *dashboarding.Normalizer {
	rubrics, err := s.rubricRepo.ListRubrics()
	if err != nil {
		return dashboarding.NewNormalizer(nil)
	}
	return dashboarding.NewNormalizer(rubrics)
}
