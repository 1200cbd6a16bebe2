package parsekit

// Clean removes Empty nodes from groups, including groups nested
// under labeled nodes.  A group left with no items collapses into
// Empty.  Cleaning an already clean tree returns an equal tree.
func Clean[T comparable](n Node[T]) Node[T] {
	switch v := n.(type) {
	case Labeled[T]:
		return Labeled[T]{ID: v.ID, Child: Clean(v.Child)}
	case Group[T]:
		var items []Node[T]
		for _, item := range v.Items {
			item = Clean(item)
			if IsEmpty(item) {
				continue
			}
			items = append(items, item)
		}
		if len(items) == 0 {
			return Empty[T]{}
		}
		return Group[T]{Items: items}
	case nil:
		return Empty[T]{}
	default:
		return n
	}
}
