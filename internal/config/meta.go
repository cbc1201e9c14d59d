package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// This automatically stays in sync when new fields are added to Settings.
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
			switch fieldName {
			case "max_log_files":
				return 200
			case "week_offset":
				return DefaultWeekOffset
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "anchor_policy":
			return "53-weeks"
		case "author_email":
			return "you@example.com"
		case "author_name":
			return "Your Name"
		case "gemini_model":
			return DefaultGeminiModel
		case "primary_branch":
			return DefaultPrimaryBranch
		case "remote_name":
			return DefaultRemoteName
		case "repos_dir":
			return "~/art"
		default:
			return "example"
		}
	}

	return nil
}
