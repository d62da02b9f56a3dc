package common

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CATALOG_DATABASE_DSN.
const EnvPrefix = "CATALOG"

// LoadWithIncludes reads base config and merges includes in order.
func LoadWithIncludes(base string, includes []string) (*viper.Viper, error) {
	v := viper.New()
	if base != "" {
		v.SetConfigFile(base)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	for _, inc := range includes {
		iv := viper.New()
		iv.SetConfigFile(inc)
		if err := iv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("include %s: %w", inc, err)
		}
		if err := v.MergeConfigMap(iv.AllSettings()); err != nil {
			return nil, fmt.Errorf("include %s: %w", inc, err)
		}
	}
	return v, nil
}

// Load reads the service config plus includes, applies an optional profile
// from the top-level "profiles" map and enables CATALOG_* env overrides.
func Load(base string, includes []string, profile string) (*viper.Viper, error) {
	v, err := LoadWithIncludes(base, includes)
	if err != nil {
		return nil, err
	}
	if v, err = ApplySectionAndProfile(v, "", profile); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// mergeMaps recursively merges b into a.
func mergeMaps(a, b map[string]any) map[string]any {
	for k, vb := range b {
		if ma, ok := a[k].(map[string]any); ok {
			if mb, ok2 := vb.(map[string]any); ok2 {
				a[k] = mergeMaps(ma, mb)
				continue
			}
		}
		a[k] = vb
	}
	return a
}

// ApplySectionAndProfile narrows v to section (if set) and overlays profiles.<name>.
func ApplySectionAndProfile(v *viper.Viper, section, profile string) (*viper.Viper, error) {
	if section != "" {
		sub := v.Sub(section)
		if sub == nil {
			return nil, fmt.Errorf("section %s not found", section)
		}
		v = sub
	}
	if profile == "" {
		return v, nil
	}
	prof := v.Sub("profiles")
	if prof == nil {
		return nil, fmt.Errorf("profiles not found")
	}
	p := prof.Sub(profile)
	if p == nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}
	base := v.AllSettings()
	delete(base, "profiles")
	nv := viper.New()
	if err := nv.MergeConfigMap(mergeMaps(base, p.AllSettings())); err != nil {
		return nil, err
	}
	return nv, nil
}

// Database returns the driver and DSN, honouring CATALOG_DATABASE_* overrides.
func Database(v *viper.Viper) (driver, dsn string) {
	return strings.TrimSpace(v.GetString("database.driver")), strings.TrimSpace(v.GetString("database.dsn"))
}
