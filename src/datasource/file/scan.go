package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"TidyTable/src/utils"
)

var tableExtensions = []string{".csv", ".xlsx"}

// IsTableFile reports whether a path looks like a loadable dataset.
func IsTableFile(path string) bool {
	return utils.Contains(tableExtensions, strings.ToLower(filepath.Ext(path)))
}

// ScanDir loads every CSV/XLSX file directly under dir into a map
// keyed by file name without extension. Unreadable files are reported
// on stdout and skipped so one broken export does not block the rest.
func ScanDir(dir, sheetName string, naValues []string) (map[string]dataframe.DataFrame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	tables := make(map[string]dataframe.DataFrame)
	for _, entry := range entries {
		if entry.IsDir() || !IsTableFile(entry.Name()) {
			continue
		}

		fullPath := filepath.Join(dir, entry.Name())
		df, err := LoadTable(fullPath, sheetName, naValues)
		if err != nil {
			fmt.Printf("skipping %s: %v\n", fullPath, err)
			continue
		}

		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		tables[key] = df
	}

	return tables, nil
}
