package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Database  DatabaseConfig  `yaml:"database"`
	Upload    UploadConfig    `yaml:"upload"`
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type UploadConfig struct {
	Dir               string   `yaml:"dir"`
	PublicBase        string   `yaml:"public_base"`
	MaxFileSizeMB     int      `yaml:"max_file_size_mb"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

type StorageConfig struct {
	Backend string      `yaml:"backend"` // local, minio
	Minio   MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "submissions.db"
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "./uploads/business"
	}
	if cfg.Upload.PublicBase == "" {
		cfg.Upload.PublicBase = "/uploads/business"
	}
	if cfg.Upload.MaxFileSizeMB == 0 {
		cfg.Upload.MaxFileSizeMB = 5
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".pdf", ".doc", ".docx"}
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "local"
	}
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = 100
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

// MaxFileSizeBytes returns the upload size limit in bytes
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return int64(u.MaxFileSizeMB) * 1024 * 1024
}

// ExtensionAllowed reports whether ext (including the dot) is accepted
func (u *UploadConfig) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range u.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
