package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsRecordFile reports whether a filename names a real invoice record.
// Records are YAML files; a leading underscore marks the reserved
// template/example file (_template.yaml) which is never processed.
// A pure string predicate, independent of any filesystem API.
func IsRecordFile(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// discoverRecords lists candidate record paths in dir, sorted
// lexicographically so runs process invoices in a deterministic order.
func discoverRecords(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsRecordFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
