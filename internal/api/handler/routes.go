package handler

import (
	"net/http"

	"github.com/vfg2006/sales-scorecard-api/infrastructure/repository"
	"github.com/vfg2006/sales-scorecard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/evaluating"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-scorecard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Teams(teamRepo repository.TeamRepository, userRepo repository.UserRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/teams",
			Method:      http.MethodGet,
			Handler:     ListTeams(teamRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id/members",
			Method:      http.MethodGet,
			Handler:     GetTeamMembers(teamRepo, userRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Rubrics(repo repository.RubricRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rubric",
			Method:      http.MethodGet,
			Handler:     GetRubric(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rubrics",
			Method:      http.MethodGet,
			Handler:     ListRubrics(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersOnly()},
		},
	}
}

func Evaluations(service evaluating.Submitter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/evaluations",
			Method:      http.MethodPost,
			Handler:     CreateEvaluation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersOnly()},
		},
		{
			Path:        "/v1/evaluations",
			Method:      http.MethodGet,
			Handler:     ListEvaluations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/evaluations/:id",
			Method:      http.MethodGet,
			Handler:     GetEvaluation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service dashboarding.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/teams/:id",
			Method:      http.MethodGet,
			Handler:     GetTeamDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersOnly()},
		},
		{
			Path:        "/v1/analytics/salespeople/:id",
			Method:      http.MethodGet,
			Handler:     GetSalespersonDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersOnly()},
		},
	}
}

func Exports(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export/evaluations",
			Method:      http.MethodGet,
			Handler:     ExportEvaluations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagersOnly()},
		},
	}
}

func TeamScoreboard(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/scoreboard",
			Method:      http.MethodGet,
			Handler:     GetTeamScoreboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDirector()},
		},
	}
}
