package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost      string `yaml:"smtp_host"`
		SMTPPort      int    `yaml:"smtp_port"`
		SMTPUsername  string `yaml:"smtp_user"`
		SMTPPassword  string `yaml:"smtp_password"`
		FromEmail     string `yaml:"from_email"`
		FromName      string `yaml:"from_name"`
		UseTLS        bool   `yaml:"use_tls"`
		NoticeMailbox string `yaml:"notice_mailbox"` // admin address for application notices
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		BasePath string `yaml:"base_path"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize             int64 `yaml:"max_size"`              // bytes per file
		ResumeDeadlineHours int   `yaml:"resume_deadline_hours"` // upload window after applying
	} `yaml:"upload"`

	Sweep struct {
		Spec string `yaml:"spec"` // cron spec for the deadline sweep
	} `yaml:"sweep"`

	Portal struct {
		DisplayTimezone string `yaml:"display_timezone"` // e.g. Asia/Kolkata; storage is always UTC
		OTPTTLMinutes   int    `yaml:"otp_ttl_minutes"`
	} `yaml:"portal"`

	FirstTeacherEmail    string `yaml:"first_teacher_email"`
	FirstTeacherPassword string `yaml:"first_teacher_password"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env is optional; existing environment variables win.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Environment-variable mode (tests and containers).
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("MAIL_FROM")
	cfg.Email.FromName = "Psychology Job Portal"
	cfg.Email.NoticeMailbox = os.Getenv("NOTICE_MAILBOX")

	cfg.Storage.BasePath = os.Getenv("UPLOAD_FOLDER")
	cfg.Storage.BaseURL = "/api/v1/files"

	cfg.FirstTeacherEmail = os.Getenv("FIRST_TEACHER_EMAIL")
	cfg.FirstTeacherPassword = os.Getenv("FIRST_TEACHER_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/api/v1/files"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 7 * 1024 * 1024 // matches the portal's historical 7MB cap
	}
	if cfg.Upload.ResumeDeadlineHours == 0 {
		cfg.Upload.ResumeDeadlineHours = 48
	}
	if cfg.Sweep.Spec == "" {
		cfg.Sweep.Spec = "@every 12h"
	}
	if cfg.Portal.DisplayTimezone == "" {
		cfg.Portal.DisplayTimezone = "Asia/Kolkata"
	}
	if cfg.Portal.OTPTTLMinutes == 0 {
		cfg.Portal.OTPTTLMinutes = 10
	}
	if cfg.Email.NoticeMailbox == "" {
		cfg.Email.NoticeMailbox = "admin@example.com"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
