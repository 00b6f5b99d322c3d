package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the estimator API.
//
// Values come from the process environment (a .env file is autoloaded by
// cmd/api before Load runs). Every key has a local-friendly default so the
// service boots against DynamoDB Local without extra setup.
type Config struct {
	Port     int
	GinMode  string
	LogLevel string
	// LogFormat is "text" or "json".
	LogFormat string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	AutoCreateTables   bool
	ServicesTable      string
	QuotesTable        string

	CORSAllowOrigins []string

	MinIO MinIOConfig
}

// MinIOConfig configures the optional PDF archive. An empty Endpoint disables it.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (m MinIOConfig) Enabled() bool {
	return strings.TrimSpace(m.Endpoint) != ""
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return Config{
		Port:               v.GetInt("PORT"),
		GinMode:            v.GetString("GIN_MODE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),
		AutoCreateTables:   v.GetBool("DYNAMODB_AUTO_CREATE_TABLES"),
		ServicesTable:      v.GetString("SERVICES_TABLE"),
		QuotesTable:        v.GetString("QUOTES_TABLE"),
		CORSAllowOrigins:   splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("DYNAMODB_AUTO_CREATE_TABLES", false)
	v.SetDefault("SERVICES_TABLE", "services")
	v.SetDefault("QUOTES_TABLE", "quotes")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "quotes")
	v.SetDefault("MINIO_USE_SSL", false)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
