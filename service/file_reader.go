package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ludo-technologies/csim/domain"
)

// FileReaderImpl implements the FileReader interface
type FileReaderImpl struct {
	extensions []string
}

// NewFileReader creates a file reader accepting the default source extensions
func NewFileReader() *FileReaderImpl {
	return NewFileReaderWithExtensions(domain.DefaultSourceExtensions())
}

// NewFileReaderWithExtensions creates a file reader accepting the given
// extensions (each including the leading dot)
func NewFileReaderWithExtensions(extensions []string) *FileReaderImpl {
	return &FileReaderImpl{extensions: extensions}
}

// ReadFile reads the content of a source file
func (f *FileReaderImpl) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return content, nil
}

// FileExists checks whether the path exists and is a regular file
func (f *FileReaderImpl) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsValidSourceFile checks whether the path looks like a comparable source file
func (f *FileReaderImpl) IsValidSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range f.extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// ResolveSourcePath expands a path or glob pattern to exactly one source
// file. A plain existing path wins over pattern expansion; a pattern must
// match exactly one valid source file.
func (f *FileReaderImpl) ResolveSourcePath(pattern string) (string, error) {
	if f.FileExists(pattern) {
		if !f.IsValidSourceFile(pattern) {
			return "", domain.NewInvalidInputError(
				fmt.Sprintf("not a source file: %s (accepted extensions: %s)",
					pattern, strings.Join(f.extensions, ", ")), nil)
		}
		return pattern, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return "", domain.NewInvalidInputError(fmt.Sprintf("invalid pattern: %s", pattern), err)
	}

	var files []string
	for _, match := range matches {
		if f.FileExists(match) && f.IsValidSourceFile(match) {
			files = append(files, match)
		}
	}

	switch len(files) {
	case 0:
		return "", domain.NewFileNotFoundError(pattern, nil)
	case 1:
		return files[0], nil
	default:
		return "", domain.NewInvalidInputError(
			fmt.Sprintf("pattern %s matches %d files, expected exactly one", pattern, len(files)), nil)
	}
}
