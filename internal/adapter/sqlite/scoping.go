package sqlite

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// OwnerColumn is the partition column every entity table carries. Reads
// filter on it, inserts stamp it with the active scope, and updates never
// touch it — a row's owner is fixed at creation, so switching scope only
// changes which rows future queries see.
const OwnerColumn = "owner_user_id"

// Builder returns a statement builder configured for the store's
// placeholder format.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// ScopedSelect starts a SELECT over table restricted to the scope's rows.
func ScopedSelect(table string, scope domain.Scope, columns ...string) sq.SelectBuilder {
	return Builder().Select(columns...).From(table).Where(sq.Eq{OwnerColumn: scope.OwnerID()})
}

// ScopedUpdate starts an UPDATE restricted to the scope's rows. The owner
// column must not appear in any SET list.
func ScopedUpdate(table string, scope domain.Scope) sq.UpdateBuilder {
	return Builder().Update(table).Where(sq.Eq{OwnerColumn: scope.OwnerID()})
}

// ScopedDelete starts a DELETE restricted to the scope's rows.
func ScopedDelete(table string, scope domain.Scope) sq.DeleteBuilder {
	return Builder().Delete(table).Where(sq.Eq{OwnerColumn: scope.OwnerID()})
}
