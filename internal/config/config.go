package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Project struct {
		Name      string `yaml:"name"`
		Version   string `yaml:"version"`
		APIPrefix string `yaml:"api_prefix"`
	} `yaml:"project"`

	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`

	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`

	Database struct {
		// Reserved for the planned move off the flat file; not read by the store.
		DSN string `yaml:"url"`
	} `yaml:"database"`

	OpenAI struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"openai"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig populates AppConfig from an optional .env file, an optional
// yaml file (CONFIG_PATH, default config/config.yaml) and environment
// variables. Environment variables win.
func LoadConfig() {
	cfg := defaultConfig()

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnvOverrides(cfg)

	AppConfig = cfg
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Project.Name = "Sharjah Assets API"
	cfg.Project.Version = "0.1.0"
	cfg.Project.APIPrefix = "/api/v1"
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.CORS.Origins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://localhost:3002",
	}
	cfg.Store.Path = "data/users.json"
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Project.Name, "PROJECT_NAME")
	setString(&cfg.Project.Version, "VERSION")
	setString(&cfg.Project.APIPrefix, "API_V1_PREFIX")
	setString(&cfg.Server.Host, "SERVER_HOST")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.Store.Path, "STORE_PATH")
	setString(&cfg.Database.DSN, "DATABASE_URL")
	setString(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.FirstAdminEmail, "FIRST_ADMIN_EMAIL")
	setString(&cfg.FirstAdminPassword, "FIRST_ADMIN_PASSWORD")

	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid SERVER_PORT %q: %v", v, err)
		}
		cfg.Server.Port = port
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.Origins = origins
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
