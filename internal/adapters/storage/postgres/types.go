package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonColumn guarda T como jsonb. Se usa para las listas anidadas
// (servicios, zonas, perros) que nunca se consultan por SQL.
type jsonColumn[T any] struct {
	V T
}

func (j *jsonColumn[T]) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		var zero T
		j.V = zero
		return nil
	case []byte:
		return json.Unmarshal(v, &j.V)
	case string:
		return json.Unmarshal([]byte(v), &j.V)
	default:
		return fmt.Errorf("unsupported type %T", v)
	}
}

func (j jsonColumn[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
