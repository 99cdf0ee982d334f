// Package scanner finds rewrite input files below a directory.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtension marks rewrite input files.
const DefaultExtension = ".gym"

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir    string
	extensions []string
}

// New creates a scanner for rootDir. Without extensions, DefaultExtension
// is used.
func New(rootDir string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the root directory and returns the matching files sorted by
// path. Hidden directories such as the result cache are skipped.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != s.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isTargetFile(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

// Paths is Scan without the sizes.
func (s *Scanner) Paths() ([]string, error) {
	files, err := s.Scan()
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, err
}

func (s *Scanner) isTargetFile(path string) bool {
	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
