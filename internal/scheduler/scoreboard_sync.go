// Package scheduler contém os serviços de agendamento para recomputação de dados
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/config"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/pkg/utils"
)

type ScoreboardSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// ScoreboardSyncService recomputa o ranking mensal dos times a partir das
// avaliações persistidas e grava o resultado na tabela de scoreboard.
type ScoreboardSyncService struct {
	scheduler           *gocron.Scheduler
	teamRepo            repository.TeamRepository
	evaluationRepo      repository.EvaluationRepository
	scoreboardRepo      repository.ScoreboardRepository
	config              ScoreboardSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewScoreboardSyncService(
	teamRepo repository.TeamRepository,
	evaluationRepo repository.EvaluationRepository,
	scoreboardRepo repository.ScoreboardRepository,
	cfg *config.Config,
) *ScoreboardSyncService {
	syncConfig := ScoreboardSyncConfig{
		CronSchedule:  cfg.ScoreboardSync.CronSchedule, // Default: 5h da manhã todos os dias
		SyncEnabled:   cfg.ScoreboardSync.Enabled,      // Default: desabilitado
		MonthLookBack: cfg.ScoreboardSync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do scoreboard de times carregada")

	return &ScoreboardSyncService{
		scheduler:      scheduler,
		teamRepo:       teamRepo,
		evaluationRepo: evaluationRepo,
		scoreboardRepo: scoreboardRepo,
		config:         syncConfig,
	}
}

func (s *ScoreboardSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do scoreboard de times desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do scoreboard de times")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateTeamScoreboard(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do scoreboard de times")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do scoreboard de times: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do scoreboard de times")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ScoreboardSyncService) UpdateTeamScoreboard() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização do scoreboard de times já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do scoreboard de times")

	teams, err := s.teamRepo.ListTeams()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar times para atualização do scoreboard")
		return err
	}

	if len(teams) == 0 {
		logrus.Info("Nenhum time encontrado para atualização do scoreboard")
		return nil
	}

	// O ranking do dia considera os dados até ontem. Com lookback maior que 1
	// os meses anteriores também são recomputados, para absorver avaliações
	// lançadas com atraso.
	yesterday := time.Now().AddDate(0, 0, -1)
	lookback := s.config.MonthLookBack
	if lookback < 1 {
		lookback = 1
	}

	for i := 0; i < lookback; i++ {
		reference := yesterday.AddDate(0, -i, 0)
		if err := s.updateMonth(teams, reference); err != nil {
			logrus.WithError(err).WithField("month", reference.Format("01-2006")).
				Error("Erro ao recomputar scoreboard do mês")
			return err
		}
	}

	logrus.Info("Atualização do scoreboard de times concluída")
	logrus.Debugf("Status do agendador: %s", utils.PrettyJson(s.GetStatus()))

	return nil
}

// updateMonth recomputa as posições de um mês: média do score geral e
// quantidade de avaliações por time dentro da janela do mês, ordenadas da
// maior média para a menor.
func (s *ScoreboardSyncService) updateMonth(teams []*domain.Team, reference time.Time) error {
	month := reference.Format("01-2006")
	start, end := monthWindow(reference)
	filters := &repository.EvaluationFilters{StartDate: &start, EndDate: &end}

	items := make([]*domain.TeamScoreboardItem, 0, len(teams))

	for _, team := range teams {
		records, err := s.evaluationRepo.ListByTeam(team.ID, filters)
		if err != nil {
			return fmt.Errorf("erro ao buscar avaliações do time %d: %w", team.ID, err)
		}

		if len(records) == 0 {
			continue
		}

		var total float64
		for _, record := range records {
			total += record.OverallScore
		}

		items = append(items, &domain.TeamScoreboardItem{
			TeamID:          team.ID,
			Month:           month,
			TeamName:        team.Name,
			AverageScore:    utils.RoundWithOneDecimalPlace(total / float64(len(records))),
			EvaluationCount: len(records),
		})
	}

	if len(items) == 0 {
		logrus.WithField("month", month).Info("Nenhuma avaliação no mês, scoreboard não atualizado")
		return nil
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].AverageScore != items[j].AverageScore {
			return items[i].AverageScore > items[j].AverageScore
		}
		if items[i].EvaluationCount != items[j].EvaluationCount {
			return items[i].EvaluationCount > items[j].EvaluationCount
		}
		return items[i].TeamName < items[j].TeamName
	})

	for position, item := range items {
		item.Position = position + 1

		previous, err := s.scoreboardRepo.GetByTeamID(item.TeamID, month)
		if err != nil {
			logrus.WithError(err).WithField("team_id", item.TeamID).
				Warn("Erro ao buscar posição anterior do time no scoreboard")
			continue
		}

		if previous != nil && previous.Position > 0 {
			item.PreviousPosition = previous.Position
			item.PositionChange = previous.Position - item.Position // Positivo = subiu
		}
	}

	if err := s.scoreboardRepo.SaveOrUpdateScoreboard(items); err != nil {
		return fmt.Errorf("erro ao salvar scoreboard do mês %s: %w", month, err)
	}

	logrus.WithFields(logrus.Fields{
		"month": month,
		"teams": len(items),
	}).Info("Scoreboard do mês atualizado com sucesso")

	return nil
}

// monthWindow delimita o mês de referência: do primeiro dia até o último
// instante antes do mês seguinte.
func monthWindow(reference time.Time) (time.Time, time.Time) {
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// TriggerManualSync inicia manualmente uma recomputação do scoreboard
func (s *ScoreboardSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do scoreboard já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do scoreboard de times")
	go func() {
		if err := s.UpdateTeamScoreboard(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do scoreboard de times")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ScoreboardSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_month_lookback":    s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
