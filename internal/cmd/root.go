package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"studylog/internal/config"
	"studylog/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version   kong.VersionFlag `help:"Show version information"`
	Debug     bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile string           `help:"Custom path for debug log file"`
	DataFile  string           `help:"Path to the session data file (overrides settings.json)"`

	Run     RunCmd     `cmd:"" help:"Start the studylog TUI (default)" default:"1"`
	Log     LogCmd     `cmd:"log" help:"Log a study session"`
	List    ListCmd    `cmd:"list" help:"List all logged sessions"`
	Stats   StatsCmd   `cmd:"stats" help:"Show study time per subject"`
	Summary SummaryCmd `cmd:"summary" help:"Show a summary of recent days"`
	Export  ExportCmd  `cmd:"export" help:"Export sessions to CSV"`
	Clear   ClearCmd   `cmd:"clear" help:"Delete all session data"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("STUDYLOG_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
		if c.DataFile == "" {
			c.DataFile = c.settings.DataFile
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile)
	if err != nil {
		return err
	}

	// Export debug settings so any child processes share the log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("STUDYLOG_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("STUDYLOG_DEBUG_FILE", logFilePath)
		}
	}

	c.Container = NewContainer(c.DataFile)
	return nil
}

// windowDays resolves the summary window, preferring the flag value
// when set, then settings.json, then the default of 7
func (c *CLI) windowDays(flagValue int) int {
	if flagValue != config.DefaultWindowDays {
		return flagValue
	}
	if c.settings != nil && c.settings.WindowDays != nil && *c.settings.WindowDays > 0 {
		return *c.settings.WindowDays
	}
	return config.DefaultWindowDays
}
