// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/segfield/internal/field"
	"github.com/bethropolis/segfield/internal/types"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	ContentType    *string
	MaxLength      *int
	ThemeFile      *string
	// Logger filters
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
	SystemClipboard *bool
}

// DefineFlags sets up the command-line flags on fs. A nil fs uses
// flag.CommandLine.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	f.set = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.ContentType = fs.String("type", "", "Show a single field of this type (plain, bank_card, national_id, phone) instead of the configured form")
	f.MaxLength = fs.Int("maxlen", 0, "Maximum displayed length of every field, separators included - Overrides config file") // 0 means unset
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use system clipboard instead of internal clipboard")
}

// ParseFlags defines the flags on fs and parses args into them.
// It returns the remaining non-flag arguments.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// ApplyOverrides updates the Config struct with values from flags *if* they
// were set, and returns the names of the flags it applied.
func (f *Flags) ApplyOverrides(cfg *Config) ([]string, error) {
	if f.set == nil {
		return nil, nil
	}
	var applied []string
	var firstErr error
	maxLength := 0

	// Visit only processes flags that were actually set
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel == "" {
				return
			}
			cfg.Logger.LogLevel = *f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // Empty string is valid
		case "type":
			ct, err := types.ParseContentType(*f.ContentType)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("flag -type: %w", err)
				}
				return
			}
			single := field.DefaultConfig(ct)
			single.Label = ct.String()
			cfg.Fields = []field.Config{single}
		case "maxlen":
			if *f.MaxLength <= 0 {
				return
			}
			maxLength = *f.MaxLength
		case "theme":
			cfg.Form.ThemeFile = *f.ThemeFile
		case "system-clipboard":
			cfg.Form.SystemClipboard = *f.SystemClipboard
		case "debug-log":
			cfg.Logger.DebugFilter = *f.DebugLog
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		default:
			return
		}
		applied = append(applied, fl.Name)
	})

	// Visit is alphabetical; -maxlen must see the fields -type installed.
	if maxLength > 0 {
		if len(cfg.Fields) == 0 {
			cfg.Fields = DefaultFields()
		}
		for i := range cfg.Fields {
			cfg.Fields[i].MaxLength = maxLength
		}
	}
	return applied, firstErr
}

// splitCommaList splits a comma-separated list, dropping empty items.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
