package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Remote    RemoteConfig    `yaml:"remote"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Artifact  ArtifactConfig  `yaml:"artifact"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql
	DSN  string `yaml:"dsn"`
}

// RemoteConfig 远程分析后端配置
type RemoteConfig struct {
	APIURL  string        `yaml:"api_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// AuthConfig 鉴权配置，Secret 用于校验网关签发的 JWT
type AuthConfig struct {
	Secret string `yaml:"secret"`
}

// RateLimitConfig 分析接口限流配置（按用户）
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// ArtifactConfig 原始上传件归档配置，Endpoint 为空时关闭归档
type ArtifactConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/trustlens.db",
		},
		Remote: RemoteConfig{
			APIURL:  "https://analyze.trustlens.app/v1",
			Timeout: 2 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 10,
			Burst:             3,
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// 环境变量优先级高于配置文件
	if apiURL := os.Getenv("REMOTE_API_URL"); apiURL != "" {
		config.Remote.APIURL = apiURL
	}
	if apiKey := os.Getenv("REMOTE_API_KEY"); apiKey != "" {
		config.Remote.APIKey = apiKey
	}
	if secret := os.Getenv("AUTH_SECRET"); secret != "" {
		config.Auth.Secret = secret
	}

	// 数据库环境变量
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}

	// 归档存储环境变量
	if endpoint := os.Getenv("ARTIFACT_ENDPOINT"); endpoint != "" {
		config.Artifact.Endpoint = endpoint
	}
	if accessKey := os.Getenv("ARTIFACT_ACCESS_KEY"); accessKey != "" {
		config.Artifact.AccessKey = accessKey
	}
	if secretKey := os.Getenv("ARTIFACT_SECRET_KEY"); secretKey != "" {
		config.Artifact.SecretKey = secretKey
	}
	if bucket := os.Getenv("ARTIFACT_BUCKET"); bucket != "" {
		config.Artifact.Bucket = bucket
	}
	if useSSL := os.Getenv("ARTIFACT_USE_SSL"); useSSL != "" {
		if v, err := strconv.ParseBool(useSSL); err == nil {
			config.Artifact.UseSSL = v
		}
	}

	if config.Remote.Timeout <= 0 {
		config.Remote.Timeout = 2 * time.Minute
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func UpdateConfig(newCfg *Config) {
	cfg = newCfg
}
