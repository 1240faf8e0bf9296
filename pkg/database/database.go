// Package database opens store connections for the supported DATABASE_URL
// schemes.
package database

import "strings"

type Kind int

const (
	KindUnknown Kind = iota
	KindMongo
	KindSQL
)

// KindOf classifies a DATABASE_URL by scheme.
func KindOf(url string) Kind {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return KindMongo
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"), strings.HasPrefix(url, sqlitePrefix):
		return KindSQL
	default:
		return KindUnknown
	}
}
