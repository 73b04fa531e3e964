package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/relgate/relgate/schema"
)

// Color variables for console output.
var (
	BlockColor    = color.New(color.FgRed, color.Bold)     // BlockColor marks files that stop a release.
	WarnColor     = color.New(color.FgYellow)              // WarnColor marks standard caution, not bold.
	PassColor     = color.New(color.FgGreen)               // PassColor marks a clean verdict.
	CriticalColor = color.New(color.FgRed, color.Bold)     // CriticalColor marks critical findings.
	HighColor     = color.New(color.FgMagenta, color.Bold) // HighColor marks a strong, distinct warning.
	MediumColor   = color.New(color.FgYellow)              // MediumColor marks standard caution.
	LowColor      = color.New(color.FgCyan)                // LowColor marks informational signal.
)

// GateColorLabel returns a colored gate label for console table output.
func GateColorLabel(gate schema.GateDecision) string {
	switch gate {
	case schema.GateBlock:
		return BlockColor.Sprint(string(gate))
	case schema.GateWarn:
		return WarnColor.Sprint(string(gate))
	default:
		return PassColor.Sprint(string(gate))
	}
}

// PriorityColorLabel returns a colored priority label for console output.
func PriorityColorLabel(p schema.RiskPriority) string {
	switch p {
	case schema.PriorityCritical:
		return CriticalColor.Sprint(string(p))
	case schema.PriorityHigh:
		return HighColor.Sprint(string(p))
	case schema.PriorityMedium:
		return MediumColor.Sprint(string(p))
	default:
		return LowColor.Sprint(string(p))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ShouldIgnore returns true if the given path matches any of the exclude patterns.
// It supports simple glob patterns (using filepath.Match) when the pattern
// contains wildcard characters (*, ?, [ ]). Patterns ending with '/' are treated
// as prefixes. Patterns starting with '.' are treated as suffix (extension) matches.
// A user can provide patterns like "vendor/", "node_modules/", "*.min.js".
func ShouldIgnore(path string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}

		// If the pattern contains glob characters, try filepath.Match.
		if strings.ContainsAny(ex, "*?[") || strings.Contains(ex, "**") {
			pat := strings.ReplaceAll(ex, "**", "*")
			if ok, err := filepath.Match(pat, path); err == nil && ok {
				return true
			}
			// Also try matching against the base filename (e.g. *.min.js)
			if ok, err := filepath.Match(pat, filepath.Base(path)); err == nil && ok {
				return true
			}
			continue
		}

		// Handle prefix, suffix, or substring matches
		switch {
		case strings.HasSuffix(ex, "/"):
			if strings.HasPrefix(path, ex) || strings.Contains(path, "/"+ex) {
				return true
			}
		case strings.HasPrefix(ex, "."):
			if strings.HasSuffix(path, ex) {
				return true
			}
		case strings.Contains(path, ex):
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".relgate_history.db"
	}
	return filepath.Join(homeDir, ".relgate_history.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and
// at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
