package wizard

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStep = errors.New("unknown step")
	ErrStepInvalid = errors.New("step has errors")
)

// FieldError describe un campo inválido dentro de un paso.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError junta los FieldError de un paso (o de todo el flujo).
type ValidationError struct {
	Step   string       `json:"step,omitempty"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("%d invalid fields", len(e.Fields))
	}
	return fmt.Sprintf("step %s: %d invalid fields", e.Step, len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrStepInvalid }

// Step es un paso del wizard. Validate nil significa que el paso
// siempre pasa (p.ej. el resumen).
type Step[T any] struct {
	Name     string
	Validate func(T) []FieldError
}

// Flow es una secuencia fija de pasos sobre un borrador T.
type Flow[T any] struct {
	Name  string
	Steps []Step[T]
}

func (f Flow[T]) Len() int { return len(f.Steps) }

// StepIndex busca un paso por nombre y devuelve su índice 1-based.
func (f Flow[T]) StepIndex(name string) (int, bool) {
	for i, s := range f.Steps {
		if s.Name == name {
			return i + 1, true
		}
	}
	return 0, false
}

// ValidateStep valida el paso n (1-based).
func (f Flow[T]) ValidateStep(n int, draft T) ([]FieldError, error) {
	if n < 1 || n > len(f.Steps) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, n)
	}
	s := f.Steps[n-1]
	if s.Validate == nil {
		return []FieldError{}, nil
	}
	errs := s.Validate(draft)
	if errs == nil {
		errs = []FieldError{}
	}
	return errs, nil
}

// ValidateAll corre todos los pasos; se usa antes de persistir.
func (f Flow[T]) ValidateAll(draft T) error {
	var all []FieldError
	for _, s := range f.Steps {
		if s.Validate == nil {
			continue
		}
		all = append(all, s.Validate(draft)...)
	}
	if len(all) > 0 {
		return &ValidationError{Fields: all}
	}
	return nil
}

// Cursor recorre el flujo paso a paso. El paso actual es 1-based.
type Cursor[T any] struct {
	flow    Flow[T]
	current int
}

func NewCursor[T any](f Flow[T]) *Cursor[T] {
	return &Cursor[T]{flow: f, current: 1}
}

func (c *Cursor[T]) Current() int { return c.current }

func (c *Cursor[T]) StepName() string {
	return c.flow.Steps[c.current-1].Name
}

// Next avanza solo si el paso actual valida. En el último paso no avanza.
func (c *Cursor[T]) Next(draft T) error {
	errs, err := c.flow.ValidateStep(c.current, draft)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return &ValidationError{Step: c.StepName(), Fields: errs}
	}
	if c.current < c.flow.Len() {
		c.current++
	}
	return nil
}

// Prev retrocede sin validar; en el primer paso no hace nada.
func (c *Cursor[T]) Prev() {
	if c.current > 1 {
		c.current--
	}
}

// Done indica que se llegó al último paso (resumen).
func (c *Cursor[T]) Done() bool {
	return c.current == c.flow.Len()
}
