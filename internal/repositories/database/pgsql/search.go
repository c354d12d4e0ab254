package pgsql

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards in a user-supplied search term so the term
// matches literally. Backslash is the Postgres default escape character.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
