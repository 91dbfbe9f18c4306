package persistence

// SupportsSoftDelete reports whether T implements SoftDeletable.
func (r *Repository[T, PT]) SupportsSoftDelete() bool {
	return r.softDeletable
}
