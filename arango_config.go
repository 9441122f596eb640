package arangobase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/netcracker/qubership-core-lib-go-arangodb-client/model"
	"github.com/netcracker/qubership-core-lib-go/v3/configloader"
)

const (
	DefaultAddress = "localhost"
	DefaultPort    = 8529

	propertyPattern = "arangodb.%s.%s"
)

// SettingsFromConfig reads the settings of database name from properties arangodb.<name>.*
func SettingsFromConfig(name string) model.DatabaseSettings {
	property := func(key string) string {
		return fmt.Sprintf(propertyPattern, name, key)
	}
	settings := model.NewDatabaseSettings(
		configloader.GetOrDefaultString(property("address"), DefaultAddress),
		toInt(configloader.GetOrDefault(property("port"), DefaultPort), DefaultPort),
		model.ProtocolType(strings.ToLower(configloader.GetOrDefaultString(property("protocol"), string(model.HTTP)))),
		configloader.GetOrDefaultString(property("system.password"), ""),
		configloader.GetOrDefaultString(property("database"), name),
		configloader.GetOrDefaultString(property("username"), ""),
		configloader.GetOrDefaultString(property("password"), ""),
		toBool(configloader.GetOrDefault(property("auto-create"), false)),
		toBool(configloader.GetOrDefault(property("debug"), false)),
	)
	settings.Serialization.EscapeHTML = toBool(configloader.GetOrDefault(property("serialization.escape-html"), false))
	settings.Serialization.Indent = toBool(configloader.GetOrDefault(property("serialization.indent"), settings.Serialization.Indent))
	return settings
}

// RegisterFromConfig registers every named database with settings read from config.
// The name "default" registers the default database.
func RegisterFromConfig(client *ArangoClient, names ...string) error {
	for _, name := range names {
		if _, err := client.Register(name, SettingsFromConfig(name)); err != nil {
			return err
		}
	}
	return nil
}

func toInt(value interface{}, defaultValue int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
		logger.Warnf("Can't parse '%s' as integer, using %d", v, defaultValue)
	}
	return defaultValue
}

func toBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	}
	return false
}
