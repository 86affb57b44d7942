// Package postgres implements the article repository on PostgreSQL.
// Tags are stored in a TEXT[] column and read through pq.Array.
package postgres

import (
	"fmt"
	"strings"

	"portfolio-blog/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for published article listings.
// Centralizing the clause construction keeps ListPublished and CountPublished
// filters in sync.
type ArticleQueryBuilder struct{}

func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause returns the WHERE clause and positional args for the
// filter's tag/featured constraints. The published predicate is always
// present; paging fields are ignored.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ListFilter) (string, []interface{}) {
	conditions := []string{"published"}
	args := make([]interface{}, 0, 2)

	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conditions = append(conditions, fmt.Sprintf("featured = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
