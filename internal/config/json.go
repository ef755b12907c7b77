package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		AccessTokenTTL  Duration `json:"access_token_ttl"`
		RefreshTokenTTL Duration `json:"refresh_token_ttl"`
		DefaultRole     string   `json:"default_role"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Registry struct {
			Address      string   `json:"address"`
			DB           int      `json:"db"`
			DialTimeout  Duration `json:"dial_timeout"`
			ReadTimeout  Duration `json:"read_timeout"`
			WriteTimeout Duration `json:"write_timeout"`
		} `json:"registry,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Oauth struct {
		MaxRetries    int `json:"max_retries"`
		RatePerMinute int `json:"rate_per_minute"`

		Yandex struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			RedirectURI  string `json:"redirect_uri"`
			AuthURL      string `json:"auth_url"`
			TokenURL     string `json:"token_url"`
			ProfileURL   string `json:"profile_url"`
		} `json:"yandex,omitempty"`
	} `json:"oauth,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			AccessTokenTTL:  time.Duration(jsonCfg.App.AccessTokenTTL),
			RefreshTokenTTL: time.Duration(jsonCfg.App.RefreshTokenTTL),
			DefaultRole:     jsonCfg.App.DefaultRole,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Registry: Registry{
				Address:      jsonCfg.Storage.Registry.Address,
				DB:           jsonCfg.Storage.Registry.DB,
				DialTimeout:  time.Duration(jsonCfg.Storage.Registry.DialTimeout),
				ReadTimeout:  time.Duration(jsonCfg.Storage.Registry.ReadTimeout),
				WriteTimeout: time.Duration(jsonCfg.Storage.Registry.WriteTimeout),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Oauth: Oauth{
			MaxRetries:    jsonCfg.Oauth.MaxRetries,
			RatePerMinute: jsonCfg.Oauth.RatePerMinute,
			Yandex: YandexOauth{
				ClientID:     jsonCfg.Oauth.Yandex.ClientID,
				ClientSecret: jsonCfg.Oauth.Yandex.ClientSecret,
				RedirectURI:  jsonCfg.Oauth.Yandex.RedirectURI,
				AuthURL:      jsonCfg.Oauth.Yandex.AuthURL,
				TokenURL:     jsonCfg.Oauth.Yandex.TokenURL,
				ProfileURL:   jsonCfg.Oauth.Yandex.ProfileURL,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
