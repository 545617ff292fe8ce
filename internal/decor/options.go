package decor

// FilterFunc is called for every existing decoration whose interval
// intersects the update's filter window. Returning false drops the
// decoration.
type FilterFunc func(d Decoration) bool

// UpdateOption configures a call to DecorationSet.Update, in the
// functional-options style.
type UpdateOption func(*updateOptions)

type updateOptions struct {
	filter      FilterFunc
	filterFrom  int
	filterTo    int
	hasFilterTo bool
}

// WithFilter supplies the predicate used to drop existing decorations
// within the filter window. Decorations outside the window are preserved
// without the predicate being called.
func WithFilter(f FilterFunc) UpdateOption {
	return func(o *updateOptions) { o.filter = f }
}

// WithFilterRange restricts the filter window to [from, to). Without this
// option the window defaults to the whole set, [0, set.Length()).
func WithFilterRange(from, to int) UpdateOption {
	return func(o *updateOptions) {
		o.filterFrom = from
		o.filterTo = to
		o.hasFilterTo = true
	}
}
