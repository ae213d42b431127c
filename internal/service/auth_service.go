package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"schedulink-backend/internal/cache"
	"schedulink-backend/internal/model"
	"schedulink-backend/internal/repository"
	apperrors "schedulink-backend/pkg/app_errors"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Claims 為 access token 內容，Id (jti) 用於登出撤銷
type Claims struct {
	UserID   int            `json:"user_id"`
	Username string         `json:"username"`
	Role     model.UserRole `json:"role"`
	jwt.StandardClaims
}

// RegisterParams 註冊輸入，公開註冊不接受角色
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (int, error)
	EnsureAdmin(ctx context.Context, params RegisterParams) error
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	ParseToken(ctx context.Context, token string) (*Claims, error)
	Logout(ctx context.Context, claims *Claims) error
	GetUser(ctx context.Context, id int) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}

type AuthServiceImpl struct {
	userRepo   repository.UserRepository
	tokenStore cache.TokenStore
	secret     []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, tokenStore cache.TokenStore, secret string, tokenTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, params RegisterParams) (int, error) {
	return s.createUser(ctx, params, model.UserRoleUser)
}

// EnsureAdmin 啟動時建立管理員帳號，已存在則略過
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, params RegisterParams) error {
	_, err := s.createUser(ctx, params, model.UserRoleAdmin)
	if errors.Is(err, apperrors.ErrDuplicateUser) {
		return nil
	}
	return err
}

func (s *AuthServiceImpl) createUser(ctx context.Context, params RegisterParams, role model.UserRole) (int, error) {
	username := strings.TrimSpace(params.Username)
	email := strings.TrimSpace(params.Email)
	if username == "" || email == "" || params.Password == "" {
		return 0, apperrors.ErrMissingRequiredFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	return s.userRepo.Create(ctx, &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	})
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	user.Password = ""
	return token, user, nil
}

func (s *AuthServiceImpl) issueToken(user *model.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Subject:   user.Username,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || !claims.Role.IsValid() {
		return nil, apperrors.ErrUnauthorized
	}

	revoked, err := s.tokenStore.IsRevoked(ctx, claims.Id)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	return claims, nil
}

// Logout 撤銷 token 直到其原本的到期時間
func (s *AuthServiceImpl) Logout(ctx context.Context, claims *Claims) error {
	ttl := time.Unix(claims.ExpiresAt, 0).Sub(s.now())
	return s.tokenStore.Revoke(ctx, claims.Id, ttl)
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *AuthServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}
