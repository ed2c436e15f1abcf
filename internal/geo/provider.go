package geo

import "linkpulse/internal/config"

// NewProvider picks the offline database when configured, then the keyed
// provider, and falls back to the free tier.
func NewProvider(cfg *config.GeoConfig) (Provider, error) {
	if cfg.MaxMindDB != "" {
		return NewMaxMindProvider(cfg.MaxMindDB)
	}

	client := newHTTPClient(cfg.Timeout)
	if cfg.APIKey != "" {
		return NewIPStackProvider(client, cfg.APIURL, cfg.APIKey), nil
	}
	return NewIPAPIProvider(client, cfg.FreeAPIURL), nil
}
