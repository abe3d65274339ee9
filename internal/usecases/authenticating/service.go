package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sticky-analytics-api/internal/config"
	"github.com/vfg2006/sticky-analytics-api/internal/domain"
	"github.com/vfg2006/sticky-analytics-api/pkg/apiResponse"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 12 * time.Hour

type Authenticator interface {
	Enabled() bool
	Login(username, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg.Auth,
		now: time.Now,
	}
}

// Enabled indica se as rotas administrativas exigem token
func (s *Service) Enabled() bool {
	return s.cfg.Enabled()
}

// Login valida o usuário administrador e emite um token JWT
func (s *Service) Login(username, password string) (*domain.LoginResponse, error) {
	if !s.Enabled() {
		return nil, NewAuthError(ErrAuthDisabled, apiResponse.StatusNotImplemented, "Defina AUTH_SECRET para habilitar o login")
	}

	// Validação de entrada
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiResponse.StatusBadRequest, "Usuário e senha são obrigatórios")
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) != 1 {
		return nil, NewAuthError(ErrInvalidCredentials, apiResponse.StatusUnauthorized, "Usuário ou senha incorretos")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		logrus.WithField("username", username).Warn("Tentativa de login com senha incorreta")
		return nil, NewAuthError(ErrInvalidCredentials, apiResponse.StatusUnauthorized, "Usuário ou senha incorretos")
	}

	ttl := s.cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	expiresAt := s.now().Add(ttl)

	token, err := generateJWT(username, expiresAt, s.now(), s.cfg.Secret)
	if err != nil {
		return nil, NewAuthError(ErrTokenGeneration, apiResponse.StatusInternalServerError, err.Error())
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func generateJWT(username string, expiresAt, issuedAt time.Time, secretKey string) (string, error) {
	claims := domain.Claims{
		Username: username,
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiResponse.StatusUnauthorized, "Faça login novamente")
		}
		return nil, NewAuthError(ErrInvalidToken, apiResponse.StatusUnauthorized, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Role != domain.RoleAdmin {
		return nil, NewAuthError(ErrInvalidToken, apiResponse.StatusUnauthorized, "Token sem permissão administrativa")
	}

	return claims, nil
}
