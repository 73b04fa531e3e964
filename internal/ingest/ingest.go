// Package ingest scans repositories into immutable file batches for the
// analysis pipeline. It owns traversal, size filtering, language detection
// and encoding checks so the pipeline never touches the filesystem.
package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// MaxFileSize is the per-file ingestion cap. Larger files are skipped.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// ignoreDirs are directory names skipped during traversal regardless of the
// configured excludes.
var ignoreDirs = map[string]struct{}{
	"node_modules": {}, "__pycache__": {}, ".git": {}, ".svn": {},
	"venv": {}, "env": {}, "build": {}, "dist": {}, "target": {},
	".idea": {}, ".vscode": {}, "bin": {}, "obj": {},
}

// languageByExt maps file extensions to language labels. Labels without a
// registered handler fall back to generic analysis downstream.
var languageByExt = map[string]string{
	".py":   "Python",
	".java": "Java",
	".js":   "JavaScript",
	".jsx":  "JavaScript",
	".ts":   "TypeScript",
	".tsx":  "TypeScript",
	".c":    "C",
	".cpp":  "C++",
	".cc":   "C++",
	".h":    "C/C++",
	".hpp":  "C++",
	".go":   "Go",
	".rs":   "Rust",
	".rb":   "Ruby",
	".php":  "PHP",
	".html": "HTML",
	".css":  "CSS",
	".scss": "SCSS",
	".sh":   "Shell",
	".yaml": "YAML",
	".yml":  "YAML",
}

// Result is the ingestion output handed to the pipeline: the batch itself
// plus provenance and a language histogram.
type Result struct {
	RepoPath   string
	Files      []schema.FileRecord
	Languages  map[string]int
	TotalLines int
}

// Scan walks the repository and ingests every supported source file,
// honoring the ignore-dir set, the configured excludes and the size cap.
// Unreadable or non-text files are logged and skipped, never fatal.
func Scan(repoPath string, excludes []string) (*Result, error) {
	info, err := os.Stat(repoPath)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %s", repoPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", repoPath)
	}

	result := &Result{RepoPath: repoPath, Languages: make(map[string]int)}

	err = filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			contract.LogWarn(fmt.Sprintf("scanning %s", path), walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, ignored := ignoreDirs[d.Name()]; ignored {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(repoPath, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if _, supported := languageByExt[strings.ToLower(filepath.Ext(path))]; !supported {
			return nil
		}
		if contract.ShouldIgnore(rel, excludes) {
			return nil
		}

		record, ok := processFile(path, rel)
		if !ok {
			return nil
		}
		result.Files = append(result.Files, record)
		result.Languages[record.Language]++
		result.TotalLines += record.Lines
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ScanFiles ingests an explicit file list (ad-hoc sets, uploads). Missing or
// unsupported entries are logged and skipped.
func ScanFiles(paths []string) *Result {
	result := &Result{RepoPath: "ad-hoc files", Languages: make(map[string]int)}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			contract.LogWarn("ingesting file", fmt.Errorf("not a readable file: %s", path))
			continue
		}
		record, ok := processFile(path, filepath.ToSlash(path))
		if !ok {
			continue
		}
		result.Files = append(result.Files, record)
		result.Languages[record.Language]++
		result.TotalLines += record.Lines
	}
	return result
}

// processFile reads one file into a FileRecord. It enforces the size cap and
// rejects content that is not valid UTF-8 (binary files).
func processFile(path, rel string) (schema.FileRecord, bool) {
	info, err := os.Stat(path)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("reading %s", rel), err)
		return schema.FileRecord{}, false
	}
	if info.Size() > MaxFileSize {
		return schema.FileRecord{}, false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("reading %s", rel), err)
		return schema.FileRecord{}, false
	}
	content := string(raw)
	if !utf8.ValidString(content) {
		return schema.FileRecord{}, false
	}

	return schema.FileRecord{
		Path:     rel,
		Name:     filepath.Base(path),
		Language: DetectLanguage(path),
		Content:  content,
		Lines:    countLines(content),
	}, true
}

// DetectLanguage maps a file path onto a language label by extension.
func DetectLanguage(path string) string {
	if lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "Unknown"
}

// countLines counts newline-separated lines the way editors do: an empty
// file has one line, a trailing newline adds one.
func countLines(content string) int {
	return strings.Count(content, "\n") + 1
}
