package persistence

import "context"

// Identifiable is implemented by every stored record: it owns a surrogate
// integer key assigned by the database on insert.
type Identifiable interface {
	GetID() int64
	SetID(id int64)
}

// SoftDeletable is implemented by records that are flagged instead of removed.
// The flag must be stored in the is_deleted column.
type SoftDeletable interface {
	IsSoftDeleted() bool
	MarkDeleted()
}

// Entity is the constraint for the generic Repository. PT is the pointer
// type of the row struct T, whose fields carry `db` tags matching Columns.
type Entity[T any] interface {
	*T
	Identifiable
	TableName() string
	// Columns lists the writable columns, excluding id, in the order Values returns them.
	Columns() []string
	Values() []any
}

// RelationAttacher is implemented by records that reference child records.
// Insert and Update call it, in the same unit of work, before the parent row
// is written. With onlyDetached set, children that are already stored are
// left untouched.
type RelationAttacher interface {
	AttachRelations(ctx context.Context, q Executor, onlyDetached bool) error
}

// Relation eagerly loads related data onto an already fetched result set.
type Relation[T any] func(ctx context.Context, q Executor, items []*T) error

const softDeleteColumn = "is_deleted"
