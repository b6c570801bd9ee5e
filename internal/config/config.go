package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Scoring        Scoring        `mapstructure:",squash"`
	ScoreboardSync ScoreboardSync `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Scoring concentra os parâmetros da classificação de scores: a escala da
// rubrica e os cortes dos buckets em percentual. Os cortes são resolvidos
// aqui uma única vez e usados por todos os dashboards.
type Scoring struct {
	RatingScaleMax  int     `mapstructure:"scoring_rating_scale_max"`
	ExcellentMinPct float64 `mapstructure:"scoring_excellent_min_pct"`
	GoodMinPct      float64 `mapstructure:"scoring_good_min_pct"`
	AverageMinPct   float64 `mapstructure:"scoring_average_min_pct"`
}

// Buckets materializa os cortes configurados na estrutura usada pelos
// dashboards.
func (s Scoring) Buckets() domain.BucketConfig {
	return domain.BucketConfig{
		ExcellentMin: s.ExcellentMinPct,
		GoodMin:      s.GoodMinPct,
		AverageMin:   s.AverageMinPct,
	}
}

// ScoreboardSync é a configuração do agendador do ranking mensal de times.
type ScoreboardSync struct {
	CronSchedule  string `mapstructure:"scoreboard_sync_cron"`
	Enabled       bool   `mapstructure:"scoreboard_sync_enabled"`
	MonthLookBack int    `mapstructure:"scoreboard_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/scorecard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Escala 1-4 convertida para percentual: cortes 90/75/50
	viper.SetDefault("SCORING_RATING_SCALE_MAX", 4)
	viper.SetDefault("SCORING_EXCELLENT_MIN_PCT", 90.0)
	viper.SetDefault("SCORING_GOOD_MIN_PCT", 75.0)
	viper.SetDefault("SCORING_AVERAGE_MIN_PCT", 50.0)

	viper.SetDefault("SCOREBOARD_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("SCOREBOARD_SYNC_ENABLED", false)
	viper.SetDefault("SCOREBOARD_SYNC_MONTH_LOOKBACK", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
