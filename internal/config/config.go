package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/storage"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	Storage    Storage         `yaml:"storage"`
	KPI        KPI             `yaml:"kpi"`
	Catalog    storage.Catalog `yaml:"catalog"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:8081"`
	FrontendDir    string        `yaml:"frontend_dir" env:"FRONTEND_DIR" env-default:"./frontend-dist"`
}

type Storage struct {
	Driver  string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Path    string `yaml:"path" env:"STORAGE_PATH" env-default:"./data/kpi-snapshot.json"`
	SlotKey string `yaml:"slot_key" env-default:"kpi-mantenimiento-georgalos-v2"`

	DBUser         string `yaml:"db_user" env:"DB_USER"`
	DBPassword     string `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost         string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort         int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName         string `yaml:"db_name" env:"DB_NAME"`
	ConnectRetries uint64 `yaml:"connect_retries" env-default:"5"`
}

type KPI struct {
	PlannedHours            float64 `yaml:"planned_hours" env-default:"720"`
	WeeklyCapacityHH        float64 `yaml:"weekly_capacity_hh" env-default:"160"`
	MinutesPerShift         float64 `yaml:"minutes_per_shift" env-default:"480"`
	RecomputePlanCompliance bool    `yaml:"recompute_plan_compliance" env-default:"true"`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at path, or only the environment when the file is missing.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SlotKey() == "" {
		c.Storage.SlotKey = constants.DefaultSlotKey
	}
	if c.KPI.MinutesPerShift <= 0 {
		c.KPI.MinutesPerShift = constants.DefaultMinutesPerShift
	}

	cat := &c.Catalog
	if len(cat.Sectors) == 0 {
		cat.Sectors = append([]string{}, constants.Sectors...)
	}
	if len(cat.LinesBySector) == 0 {
		cat.LinesBySector = make(map[string][]string, len(constants.LinesBySector))
		for sector, lines := range constants.LinesBySector {
			cat.LinesBySector[sector] = append([]string{}, lines...)
		}
	}
	if len(cat.Supervisors) == 0 {
		cat.Supervisors = append([]string{}, constants.Supervisors...)
	}
	if len(cat.Shifts) == 0 {
		cat.Shifts = append([]string{}, constants.Shifts...)
	}
	if cat.FallbackSector == "" && cat.HasSector(constants.FallbackSector) {
		cat.FallbackSector = constants.FallbackSector
	}
}

func (c *Config) SlotKey() string {
	return c.Storage.SlotKey
}
