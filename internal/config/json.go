package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		SessionTTL        Duration `json:"session_ttl"`
		SessionCookieName string   `json:"session_cookie_name"`
		CookieSecure      bool     `json:"cookie_secure"`
		MaxUploadSize     int64    `json:"max_upload_size"`
		BcryptCost        int      `json:"bcrypt_cost"`
		Version           string   `json:"version"`
		LogLevel          string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend   string `json:"backend"`
			UploadDir string `json:"upload_dir"`
			S3        S3JSON `json:"s3,omitempty"`
		} `json:"files,omitempty"`

		Sessions struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
		} `json:"sessions,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		AuthRateLimit      int      `json:"auth_rate_limit"`
		MetricsDisabled    bool     `json:"metrics_disabled"`
	} `json:"server,omitempty"`

	Workers struct {
		FolderRepairInterval   Duration `json:"folder_repair_interval"`
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`
}

// S3JSON is the JSON layout of the object storage settings.
type S3JSON struct {
	Bucket          string `json:"bucket"`
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	UsePathStyle    bool   `json:"use_path_style"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.Files.S3
	cfg := &StructuredConfig{
		App: App{
			SessionTTL:        time.Duration(jsonCfg.App.SessionTTL),
			SessionCookieName: jsonCfg.App.SessionCookieName,
			CookieSecure:      jsonCfg.App.CookieSecure,
			MaxUploadSize:     jsonCfg.App.MaxUploadSize,
			BcryptCost:        jsonCfg.App.BcryptCost,
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:   jsonCfg.Storage.Files.Backend,
				UploadDir: jsonCfg.Storage.Files.UploadDir,
				S3: S3{
					Bucket:          s3.Bucket,
					Region:          s3.Region,
					Endpoint:        s3.Endpoint,
					AccessKeyID:     s3.AccessKeyID,
					SecretAccessKey: s3.SecretAccessKey,
					UsePathStyle:    s3.UsePathStyle,
				},
			},
			Sessions: Sessions{
				Backend: jsonCfg.Storage.Sessions.Backend,
				Dir:     jsonCfg.Storage.Sessions.Dir,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			AuthRateLimit:      jsonCfg.Server.AuthRateLimit,
			MetricsDisabled:    jsonCfg.Server.MetricsDisabled,
		},
		Workers: Workers{
			FolderRepairInterval:   time.Duration(jsonCfg.Workers.FolderRepairInterval),
			SessionCleanupInterval: time.Duration(jsonCfg.Workers.SessionCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
