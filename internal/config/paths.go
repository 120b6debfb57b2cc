package config

import (
	"os"
	"path/filepath"
)

// GetStudylogHome returns STUDYLOG_HOME or ~/.studylog default
func GetStudylogHome() string {
	home := os.Getenv("STUDYLOG_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".studylog"
		}
		return filepath.Join(homeDir, ".studylog")
	}
	return ExpandPath(home)
}

// GetDataPath returns $STUDYLOG_HOME/study_data.json
func GetDataPath() string {
	return filepath.Join(GetStudylogHome(), "study_data.json")
}

// GetCSVPath returns $STUDYLOG_HOME/study_data.csv, the default CSV
// export destination (a sibling of the data file)
func GetCSVPath() string {
	return filepath.Join(GetStudylogHome(), "study_data.csv")
}

// GetSettingsPath returns $STUDYLOG_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetStudylogHome(), "settings.json")
}

// GetLogDir returns $STUDYLOG_HOME/logs
func GetLogDir() string {
	return filepath.Join(GetStudylogHome(), "logs")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
