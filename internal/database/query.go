package database

import "strings"

// QueryBuilder converts queries written with ? placeholders to the dialect's form.
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder creates a QueryBuilder for the given dialect
func NewQueryBuilder(dialect Dialect) *QueryBuilder {
	return &QueryBuilder{dialect: dialect}
}

// Build rewrites ? placeholders. SQLite queries come back unchanged; for
// PostgreSQL
//
//	SELECT * FROM profiles WHERE community_id = ? AND character_id = ?
//
// becomes
//
//	SELECT * FROM profiles WHERE community_id = $1 AND character_id = $2
func (qb *QueryBuilder) Build(query string) string {
	if _, ok := qb.dialect.(*SQLiteDialect); ok {
		return query
	}

	var result strings.Builder
	result.Grow(len(query) + 8)
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result.WriteString(qb.dialect.Placeholder(position))
			position++
			continue
		}
		result.WriteByte(query[i])
	}

	return result.String()
}
