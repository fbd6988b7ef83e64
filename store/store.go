package store

import "errors"

// Table names for the two team collections. Both hold the same record
// shape; only the event differs.
const (
	TableSurvival   = "survivalregs"
	TableCodeCortex = "codecortexregs"
)

// ErrNotFound is returned when no record matches the given key.
var ErrNotFound = errors.New("record not found")

// filterPatch maps client-facing JSON field names onto database
// columns, dropping anything unknown so an arbitrary admin patch
// cannot touch primary keys or timestamps.
func filterPatch(patch map[string]any, columns map[string]string) map[string]any {
	out := make(map[string]any, len(patch))
	for field, value := range patch {
		if col, ok := columns[field]; ok {
			out[col] = value
		}
	}
	return out
}
