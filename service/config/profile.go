package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Profile is an operator-named rendering preset. Profiles are curated
// deployment artifacts (checked in, versioned), unlike the env-var
// Config above which is process-level and may hold secrets; keeping
// them on separate loaders avoids mixing the two lifecycles.
type Profile struct {
	Name      string `mapstructure:"name"`
	PageWidth uint   `mapstructure:"pageWidth"`
}

// LoadProfiles reads a YAML or JSON file of named profiles. A missing
// path is not an error: callers fall back to DefaultPageWidth.
func LoadProfiles(path string) (map[string]Profile, error) {
	if path == "" {
		return map[string]Profile{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var raw []Profile
	if err := v.UnmarshalKey("profiles", &raw); err != nil {
		return nil, fmt.Errorf("decode profiles file: %w", err)
	}

	profiles := make(map[string]Profile, len(raw))
	for _, p := range raw {
		if p.Name == "" {
			return nil, fmt.Errorf("profile missing a name")
		}
		profiles[p.Name] = p
	}

	return profiles, nil
}
