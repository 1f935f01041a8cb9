package config

// UpstreamConfig describes the 12306 endpoints and the transport policy used
// against them.
type UpstreamConfig struct {
	BaseURL          string `yaml:"base_url" validate:"omitempty,url"`
	InitPath         string `yaml:"init_path"`
	TicketPath       string `yaml:"ticket_path"`
	PricePath        string `yaml:"price_path"`
	TransferPath     string `yaml:"transfer_path"`
	RoutePath        string `yaml:"route_path"`
	StationAssetPath string `yaml:"station_asset_path"`
	TimeoutSeconds   int    `yaml:"timeout_seconds" validate:"gte=0"`
	RetryAttempts    int    `yaml:"retry_attempts" validate:"gte=0"`
	RetryWaitMS      int    `yaml:"retry_wait_ms" validate:"gte=0"`
}

// StationConfig contains station directory configuration
type StationConfig struct {
	SnapshotPath string `yaml:"snapshot_path"`
}

// TransferConfig contains transfer-search pagination configuration
type TransferConfig struct {
	PageSize int `yaml:"page_size" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Upstream UpstreamConfig `yaml:"upstream"`
	Station  StationConfig  `yaml:"station"`
	Transfer TransferConfig `yaml:"transfer"`
}
