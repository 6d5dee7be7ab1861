package auth

// UserType distingue clientes (dueños de perros) de sitters.
type UserType string

const (
	UserTypeClient UserType = "client"
	UserTypeSitter UserType = "sitter"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID   string
	Email    string
	UserType UserType // puede venir vacío si el usuario no terminó el registro
}
