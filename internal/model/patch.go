package model

// assign records column = *v when v is present.
func assign[T any](cols map[string]interface{}, column string, v *T) {
	if v != nil {
		cols[column] = *v
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
