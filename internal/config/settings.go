package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultWindowDays is the default look-back window for summaries
const DefaultWindowDays = 7

// Settings represents the structure of $STUDYLOG_HOME/settings.json
type Settings struct {
	DataFile    string `json:"data_file,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	WindowDays  *int   `json:"window_days,omitempty"`
	ShowMessage *bool  `json:"show_message,omitempty"`
}

// LoadSettings loads settings from $STUDYLOG_HOME/settings.json
// (or ~/.studylog/settings.json if not set).
// Returns empty Settings if the file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand DataFile path if it starts with ~
	if settings.DataFile != "" {
		settings.DataFile = ExpandPath(settings.DataFile)
	}

	return &settings, nil
}

// SaveSettings saves settings to $STUDYLOG_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(GetStudylogHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
