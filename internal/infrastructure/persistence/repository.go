package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

var ErrSoftDeleteUnsupported = errors.New("soft delete not supported for this entity")

// Repository provides CRUD over a single table for any row type satisfying Entity.
// Lookups report a missing row as a nil result, never as an error. Database
// errors, including constraint violations, are wrapped but not translated.
type Repository[T any, PT Entity[T]] struct {
	q             Executor
	table         string
	columns       []string
	selectList    string
	softDeletable bool
}

func NewRepository[T any, PT Entity[T]](q Executor) *Repository[T, PT] {
	var probe PT = new(T)
	_, soft := any(probe).(SoftDeletable)

	columns := probe.Columns()
	selected := make([]string, 0, len(columns)+1)
	selected = append(selected, pgx.Identifier{"id"}.Sanitize())
	for _, c := range columns {
		selected = append(selected, pgx.Identifier{c}.Sanitize())
	}

	return &Repository[T, PT]{
		q:             q,
		table:         pgx.Identifier{probe.TableName()}.Sanitize(),
		columns:       columns,
		selectList:    strings.Join(selected, ", "),
		softDeletable: soft,
	}
}

// WithExecutor returns a copy of the repository bound to q, typically a transaction.
func (r *Repository[T, PT]) WithExecutor(q Executor) *Repository[T, PT] {
	clone := *r
	clone.q = q
	return &clone
}

// GetAll returns the rows matching pred. Soft-deleted rows are always
// excluded when T is SoftDeletable, whatever pred says.
func (r *Repository[T, PT]) GetAll(ctx context.Context, pred Predicate, relations ...Relation[T]) ([]*T, error) {
	if r.softDeletable {
		pred = And(pred, Eq(softDeleteColumn, false))
	}
	return r.find(ctx, pred, relations)
}

// GetBy returns the rows matching pred with no implicit soft-delete filter.
func (r *Repository[T, PT]) GetBy(ctx context.Context, pred Predicate, relations ...Relation[T]) ([]*T, error) {
	return r.find(ctx, pred, relations)
}

// GetByID returns the row with the given key, or nil when there is none.
func (r *Repository[T, PT]) GetByID(ctx context.Context, id int64, relations ...Relation[T]) (*T, error) {
	items, err := r.find(ctx, Eq("id", id), relations)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (r *Repository[T, PT]) Exists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, r.table)

	var exists bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s existence: %w", r.table, err)
	}
	return exists, nil
}

// Insert writes a new row and stores the generated key on entity.
func (r *Repository[T, PT]) Insert(ctx context.Context, entity PT) error {
	if err := r.attach(ctx, entity, false); err != nil {
		return err
	}

	placeholders := make([]string, len(r.columns))
	for i := range r.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		r.table, r.quotedColumns(), strings.Join(placeholders, ", "),
	)

	var id int64
	if err := r.q.QueryRow(ctx, query, entity.Values()...).Scan(&id); err != nil {
		return fmt.Errorf("insert into %s: %w", r.table, err)
	}
	entity.SetID(id)

	return nil
}

// InsertMany writes all entities in one transaction; either every row is stored or none is.
func (r *Repository[T, PT]) InsertMany(ctx context.Context, entities []PT) error {
	if len(entities) == 0 {
		return nil
	}
	return r.ExecuteTransaction(ctx, func(ctx context.Context, tx *Repository[T, PT]) error {
		for _, e := range entities {
			if err := tx.Insert(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update replaces every writable column of the row keyed by entity's id.
// A missing row is not an error.
func (r *Repository[T, PT]) Update(ctx context.Context, entity PT) error {
	if err := r.attach(ctx, entity, false); err != nil {
		return err
	}
	return r.update(ctx, entity)
}

// UpdateWithRelationships is Update, except related records that are already stored are not re-attached.
func (r *Repository[T, PT]) UpdateWithRelationships(ctx context.Context, entity PT) error {
	if err := r.attach(ctx, entity, true); err != nil {
		return err
	}
	return r.update(ctx, entity)
}

// Delete removes the row with the given key. With soft set the row is loaded,
// flagged through SoftDeletable and written back with Update instead.
// Deleting a missing row is a no-op in both modes.
func (r *Repository[T, PT]) Delete(ctx context.Context, id int64, soft bool) error {
	if soft {
		if !r.softDeletable {
			return ErrSoftDeleteUnsupported
		}

		entity, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entity == nil {
			return nil
		}

		var e PT = entity
		any(e).(SoftDeletable).MarkDeleted()
		return r.Update(ctx, e)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete from %s: %w", r.table, err)
	}
	return nil
}

// ExecuteTransaction runs fn against a repository bound to a new transaction.
// The transaction commits only if fn returns nil; otherwise it is rolled back
// and fn's error is returned unchanged.
func (r *Repository[T, PT]) ExecuteTransaction(ctx context.Context, fn func(ctx context.Context, tx *Repository[T, PT]) error) error {
	return WithTransaction(ctx, r.q, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, r.WithExecutor(tx))
	})
}

// WithTransaction executes fn within a database transaction started on q.
// When q is already a transaction a savepoint is used.
func WithTransaction(ctx context.Context, q Executor, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *Repository[T, PT]) find(ctx context.Context, pred Predicate, relations []Relation[T]) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, r.selectList, r.table)
	where, args := pred.build(1)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s rows: %w", r.table, err)
	}

	for _, load := range relations {
		if err := load(ctx, r.q, items); err != nil {
			return nil, fmt.Errorf("load %s relations: %w", r.table, err)
		}
	}

	return items, nil
}

func (r *Repository[T, PT]) update(ctx context.Context, entity PT) error {
	sets := make([]string, len(r.columns))
	for i, c := range r.columns {
		sets[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{c}.Sanitize(), i+1)
	}
	query := fmt.Sprintf(
		`UPDATE %s SET %s WHERE id = $%d`,
		r.table, strings.Join(sets, ", "), len(r.columns)+1,
	)

	args := append(entity.Values(), entity.GetID())
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	return nil
}

func (r *Repository[T, PT]) attach(ctx context.Context, entity PT, onlyDetached bool) error {
	attacher, ok := any(entity).(RelationAttacher)
	if !ok {
		return nil
	}
	if err := attacher.AttachRelations(ctx, r.q, onlyDetached); err != nil {
		return fmt.Errorf("attach %s relations: %w", r.table, err)
	}
	return nil
}

func (r *Repository[T, PT]) quotedColumns() string {
	quoted := make([]string, len(r.columns))
	for i, c := range r.columns {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	return strings.Join(quoted, ", ")
}
