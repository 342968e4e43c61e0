package config

import "strings"

// mergeWindows replaces base windows by name, keeping their position in the
// list, and appends windows base does not have.
func mergeWindows(base []WindowConfig, overlay []WindowConfig) []WindowConfig {
	if len(base) == 0 {
		return append([]WindowConfig(nil), overlay...)
	}
	if len(overlay) == 0 {
		return append([]WindowConfig(nil), base...)
	}

	overlayByName := make(map[string]WindowConfig, len(overlay))
	for _, w := range overlay {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			continue
		}
		overlayByName[name] = w
	}

	merged := make([]WindowConfig, 0, len(base)+len(overlay))
	for _, w := range base {
		name := strings.TrimSpace(w.Name)
		if replacement, ok := overlayByName[name]; ok {
			merged = append(merged, replacement)
			delete(overlayByName, name)
			continue
		}
		merged = append(merged, w)
	}

	for _, w := range overlay {
		name := strings.TrimSpace(w.Name)
		if _, ok := overlayByName[name]; ok {
			merged = append(merged, w)
			delete(overlayByName, name)
		}
	}
	return merged
}
