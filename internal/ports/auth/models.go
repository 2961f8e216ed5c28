package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Name   string
}

// Session es el resultado de un login: usuario más bearer token.
type Session struct {
	User  Claims
	Token string
}
