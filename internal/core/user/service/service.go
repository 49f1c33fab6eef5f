package userapp

import (
	"context"
	"strconv"
	"time"

	"tailorspace/internal/core/apperr"
	userEntity "tailorspace/internal/core/user"
	userPort "tailorspace/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserService handles registration and login and issues the JWT carried by
// every authenticated request.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		logger:         logger,
	}
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if existing != nil {
		return nil, apperr.Validation("Username or email already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Store(err)
	}

	u := &userEntity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		s.logger.Error("failed to create user", zap.String("username", username), zap.Error(err))
		return nil, apperr.Store(err)
	}

	return &userPort.UserDTO{
		ID:       created.ID,
		Username: created.Username,
		Email:    created.Email,
	}, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if u == nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Uint("userID", u.ID), zap.Error(err))
		return nil, apperr.Store(err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) generateJWT(u *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   strconv.FormatUint(uint64(u.ID), 10),
		Issuer:    "tailorspace",
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
