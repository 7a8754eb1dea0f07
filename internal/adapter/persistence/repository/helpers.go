package repository

import "os"

// getenvDefault resolves the table-name env vars (DOCUMENTS_TABLE and
// friends), falling back to the repository's default when unset.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
