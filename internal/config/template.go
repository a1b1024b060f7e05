package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// GenerateTemplateConfig returns a config holding the defaults plus one
// example of each user section. When path is not empty the template is also
// written there as YAML.
func GenerateTemplateConfig(path string) (Config, error) {
	cfg := Config{
		LogLevel:  "info",
		SafariApp: DefaultSafariApp,

		Resolve: ResolveConfig{
			Timeout:     DefaultResolveTimeout,
			CacheSize:   DefaultResolveCacheSize,
			Concurrency: DefaultResolveConcurrency,
		},

		TidyRules: []Rule{
			{
				Type:       "DOMAIN",
				MatchValue: "www.example.com",
				Action:     "REMOVE-PARAM",
				Value:      "ref",
			},
			{
				Type:       "DOMAIN-SUFFIX",
				MatchValue: "example.org",
				Action:     "CLEAR-FRAGMENT-IF",
				Value:      "share-*",
			},
		},

		ReferralTargets: []ReferralTarget{
			{
				Hostname:   "stackoverflow.com",
				Identifier: "1558022",
			},
		},
	}

	if path != "" {
		data, err := yaml.Marshal(&cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to marshal template config to YAML: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return Config{}, fmt.Errorf("failed to write template config to file: %w", err)
		}
	}
	return cfg, nil
}
