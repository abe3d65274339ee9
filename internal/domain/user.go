package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin é o único papel emitido: quem pode disparar sincronizações
const RoleAdmin = "admin"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
