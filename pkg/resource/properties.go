package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	v          = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// Init loads application properties from a YAML file. String values written as
// ${ENV_NAME:default} are resolved against the environment.
func Init(filepath string) error {
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	properties := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), properties)
	for key, value := range properties {
		v.Set(key, value)
	}
	return nil
}

// parsePropertiesMap walks the YAML tree and resolves env placeholders on string leaves
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch val := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(val)
		case map[string]any:
			parsePropertiesMap(fullKey, val, result)
		default:
			result[fullKey] = val
		}
	}
}

// resolveEnvVariable expands ${NAME:default}; other values are returned unchanged
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}
	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

// SetDefault registers a fallback used when the key is missing from the file.
func SetDefault(key string, value any) {
	v.SetDefault(key, value)
}

// Set overrides a property.
func Set(key string, value any) {
	v.Set(key, value)
}

func IsSet(key string) bool {
	return v.IsSet(key)
}

func Get(key string) any {
	return v.Get(key)
}

func GetString(key string) string {
	return v.GetString(key)
}

func GetBool(key string) bool {
	return v.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return v.GetDuration(key)
}

func GetInt(key string) int {
	return v.GetInt(key)
}

func GetStringSlice(key string) []string {
	return v.GetStringSlice(key)
}

// UnmarshalKey decodes the property tree under key into target. Keys of YAML
// maps are lowercased, so identifiers that keep their case belong in lists.
func UnmarshalKey(key string, target any) error {
	return v.UnmarshalKey(key, target)
}
