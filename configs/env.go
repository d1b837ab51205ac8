package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
	PropertiesFile  string
	MessagesFile    string
}

// LoadEnv reads the process level settings that must be known before the
// properties file is parsed.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", DefaultModuleID),
		LogLevel:        getStringOrDefault(v, "LOG_LEVEL", "info"),
		PropertiesFile:  getStringOrDefault(v, "PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesFile:    getStringOrDefault(v, "MESSAGES_FILE_PATH", "configs/messages.yml"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
