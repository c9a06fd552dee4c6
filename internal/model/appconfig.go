package model

// AppConfig holds application-wide preferences and the default pack
// tuning applied to new orders.
type AppConfig struct {
	// Defaults applied to new orders, mirroring PackConfig.
	DefaultMaxWeight           float64 `json:"default_max_weight"`
	DefaultSupportThreshold    float64 `json:"default_support_threshold"`
	DefaultShortLength         float64 `json:"default_short_length"`
	DefaultLongLength          float64 `json:"default_long_length"`
	DefaultBundleProfileID     string  `json:"default_bundle_profile_id"`

	// Application preferences.
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentOrders     []string `json:"recent_orders"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultPackConfig.
func DefaultAppConfig() AppConfig {
	defaults := DefaultPackConfig()
	return AppConfig{
		DefaultMaxWeight:        defaults.MaxWeight,
		DefaultSupportThreshold: defaults.SupportThreshold,
		DefaultShortLength:      defaults.ShortLength,
		DefaultLongLength:       defaults.LongLength,
		AutoSaveInterval:        0,
		RecentOrders:            []string{},
	}
}

// ApplyToConfig copies the default values from AppConfig into a
// PackConfig. Used when starting a new order so it inherits the user's
// saved defaults without disturbing the constants AppConfig doesn't track.
func (c AppConfig) ApplyToConfig(cfg *PackConfig) {
	cfg.MaxWeight = c.DefaultMaxWeight
	cfg.SupportThreshold = c.DefaultSupportThreshold
	cfg.ShortLength = c.DefaultShortLength
	cfg.LongLength = c.DefaultLongLength
}
