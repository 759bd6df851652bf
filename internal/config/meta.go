package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			if fieldName == "max_log_files" {
				return 100
			}
			return 10
		case reflect.Int64:
			if fieldName == "kv_quota_bytes" {
				return int64(5 << 20)
			}
			return int64(0)
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "db_path":
			return "~/.shed/state.db"
		case "kv_dir":
			return "~/.shed/kv"
		case "remote_driver":
			return RemoteDriverPostgres
		case "remote_dsn":
			return "host=localhost user=shed dbname=shed sslmode=disable"
		default:
			return "example"
		}
	}

	return nil
}
