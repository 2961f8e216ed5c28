package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// CredentialProvider además verifica credenciales (login con email/password).
// Variantes: dummy (usuarios demo fijos) y httpapi (API de auth real),
// seleccionadas por configuración en el main.
type CredentialProvider interface {
	AuthVerifier
	Login(ctx context.Context, email, password string) (Session, error)
}
