package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Upstream); err != nil {
		return err
	}
	if err := v.Struct(cfg.Transfer); err != nil {
		return err
	}
	applyDefaults(&cfg)
	Config = cfg
	return nil
}

// Default returns the built-in production configuration without reading a file.
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	u := &cfg.Upstream
	if u.BaseURL == "" {
		u.BaseURL = "https://kyfw.12306.cn"
	}
	if u.InitPath == "" {
		u.InitPath = "/otn/leftTicket/init"
	}
	if u.TicketPath == "" {
		u.TicketPath = "/otn/leftTicket/queryG"
	}
	if u.PricePath == "" {
		u.PricePath = "/otn/leftTicketPrice/queryAllPublicPrice"
	}
	if u.TransferPath == "" {
		u.TransferPath = "/lcquery/queryG"
	}
	if u.RoutePath == "" {
		u.RoutePath = "/otn/czxx/queryByTrainNo"
	}
	if u.StationAssetPath == "" {
		u.StationAssetPath = "/otn/resources/js/framework/station_name.js"
	}
	if u.TimeoutSeconds == 0 {
		u.TimeoutSeconds = 8
	}
	if u.RetryAttempts == 0 {
		u.RetryAttempts = 3
	}
	if u.RetryWaitMS == 0 {
		u.RetryWaitMS = 1000
	}
	if cfg.Station.SnapshotPath == "" {
		cfg.Station.SnapshotPath = "stations.dat"
	}
	if cfg.Transfer.PageSize == 0 {
		cfg.Transfer.PageSize = 10
	}
}
