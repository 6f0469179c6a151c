package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL     = "localhost:3001"
	defaultDatabaseDSN = "recipebox.sqlite"
	defaultUploadDir   = "uploads"
	defaultUploadMaxMB = 10
	defaultPolicy      = "owner"
)

type Config struct {
	// Server-side settings
	DatabaseDSN   string   `env:"DATABASE_URI"`
	AccessPolicy  string   `env:"ACCESS_POLICY"` // owner | open
	UploadDir     string   `env:"UPLOAD_DIR"`
	UploadMaxMB   int      `env:"UPLOAD_MAX_MB"`
	PublicBaseURL string   `env:"PUBLIC_BASE_URL"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:","`

	// S3 (если S3Bucket пуст: файлы хранятся локально в UploadDir)
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	UserFile  string `env:"USER_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres URL или путь к SQLite)")
	flag.StringVar(&cfg.AccessPolicy, "policy", cfg.AccessPolicy, "политика доступа: owner | open")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "каталог для загруженных изображений")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the RecipeBox server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.UserFile, "user-file", cfg.UserFile, "path to the file with the current username (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if strings.TrimSpace(cfg.DatabaseDSN) == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	cfg.AccessPolicy = strings.ToLower(strings.TrimSpace(cfg.AccessPolicy))
	if cfg.AccessPolicy == "" {
		cfg.AccessPolicy = defaultPolicy
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = defaultUploadDir
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = defaultUploadMaxMB
	}
	cfg.CORSOrigins = cleanList(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = cfg.ServerURL
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	// Fill client defaults if empty
	if cfg.UserFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		cfg.UserFile = filepath.Join(dir, "RecipeBox", "last_login")
	}

	return cfg
}

// UploadMaxBytes: лимит размера одного загружаемого файла.
func (c *Config) UploadMaxBytes() int64 {
	return int64(c.UploadMaxMB) * 1024 * 1024
}

// UseS3: изображения хранятся в S3.
func (c *Config) UseS3() bool {
	return c.S3Bucket != ""
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
