package model

// All lists every model managed by migrations, in creation order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&DictionaryEntry{},
	}
}
