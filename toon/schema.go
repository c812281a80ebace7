package toon

// Schema is the shape of a root collection, taken from its first record.
type Schema struct {
	// ScalarKeys are the dot paths written as root block columns.
	ScalarKeys []string
	// ChildKeys are the top-level list fields written as child blocks.
	ChildKeys []string
}

// DiscoverSchema classifies the fields of a representative record.
// Callers handle empty collections themselves.
func DiscoverSchema(representative *Value) Schema {
	s := Schema{ScalarKeys: FlattenKeys(representative)}
	if !representative.IsMap() {
		return s
	}
	for _, e := range representative.mapVal {
		if e.Value.IsList() {
			s.ChildKeys = append(s.ChildKeys, e.Key)
		}
	}
	return s
}

// ChildSchema returns the columns of a child block: the top-level field
// names of its first element, unflattened.
func ChildSchema(first *Value) []string {
	return first.Keys()
}
