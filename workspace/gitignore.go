package workspace

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// GitignoreParser matches paths against the root .gitignore of a tree
type GitignoreParser struct {
	rootDir          string
	ignorePatterns   []string
	negationPatterns []string
}

// NewGitignoreParser creates a new gitignore parser for the given directory
func NewGitignoreParser(rootDir string) *GitignoreParser {
	parser := &GitignoreParser{
		rootDir: rootDir,
	}
	parser.loadGitignore()
	return parser
}

// loadGitignore reads and parses the .gitignore file
func (gp *GitignoreParser) loadGitignore() {
	gitignorePath := filepath.Join(gp.rootDir, ".gitignore")
	file, err := os.Open(gitignorePath)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			pattern := strings.TrimPrefix(line, "!")
			gp.negationPatterns = append(gp.negationPatterns, pattern)
		} else {
			gp.ignorePatterns = append(gp.ignorePatterns, line)
		}
	}
}

// ShouldIgnore checks if a path should be ignored based on .gitignore patterns
func (gp *GitignoreParser) ShouldIgnore(path string) bool {
	relPath, err := filepath.Rel(gp.rootDir, path)
	if err != nil || relPath == "." {
		return false
	}

	relPath = filepath.ToSlash(relPath)

	shouldIgnore := false
	for _, pattern := range gp.ignorePatterns {
		if gp.matchPattern(pattern, relPath) {
			shouldIgnore = true
			break
		}
	}

	if shouldIgnore {
		for _, pattern := range gp.negationPatterns {
			if gp.matchPattern(pattern, relPath) {
				return false
			}
		}
	}

	return shouldIgnore
}

// matchPattern checks if a path matches a gitignore pattern
func (gp *GitignoreParser) matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		pattern = strings.TrimSuffix(pattern, "/")

		if strings.HasPrefix(path, pattern+"/") || path == pattern {
			return true
		}

		for _, part := range strings.Split(path, "/") {
			if part == pattern {
				return true
			}
		}

		return false
	}

	if strings.HasPrefix(pattern, "/") {
		return matchGlob(strings.TrimPrefix(pattern, "/"), path)
	}

	if matchGlob(pattern, path) {
		return true
	}

	pathParts := strings.Split(path, "/")
	for i := range pathParts {
		if matchGlob(pattern, strings.Join(pathParts[i:], "/")) {
			return true
		}
	}

	if !strings.Contains(pattern, "/") {
		for _, part := range pathParts {
			if matchGlob(pattern, part) {
				return true
			}
		}
	}

	return false
}

// matchGlob handles exact names and shell wildcards
func matchGlob(pattern, text string) bool {
	if pattern == text {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return false
	}
	matched, err := filepath.Match(pattern, text)
	return err == nil && matched
}

// skippedDir reports directories never searched for sources
func skippedDir(name string) bool {
	switch name {
	case "node_modules", "vendor", "build", "dist", "coverage":
		return true
	}
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// findSourceFiles finds all source files below root with one of extensions
func findSourceFiles(root string, extensions []string, respectGitignore bool) ([]string, error) {
	var sourceFiles []string

	var gitignoreParser *GitignoreParser
	if respectGitignore {
		gitignoreParser = NewGitignoreParser(root)
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if gitignoreParser != nil && gitignoreParser.ShouldIgnore(path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if path != root && skippedDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if hasExtension(path, extensions) {
			sourceFiles = append(sourceFiles, path)
		}
		return nil
	})

	return sourceFiles, err
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
