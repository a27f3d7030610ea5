// Package auth layers credential handling over the users store: bcrypt
// password hashing and signed bearer tokens. Token verification lives in
// the request middleware of the consuming application, not here.
package auth

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"food-marketplace-datastore/config"
	"food-marketplace-datastore/models"
	"food-marketplace-datastore/store"
)

// RegisterInput is the signup payload accepted by Register.
type RegisterInput struct {
	Name     string          `validate:"required"`
	Email    string          `validate:"required,email"`
	Password string          `validate:"required,min=6"`
	Role     models.UserRole `validate:"required,oneof=customer owner admin"`
	Phone    string          `validate:"omitempty"`
}

// Service implements signup, password verification and token issuance.
type Service struct {
	users    *store.Users
	cfg      *config.Config
	validate *validator.Validate
	log      zerolog.Logger
}

func New(users *store.Users, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		users:    users,
		cfg:      cfg,
		validate: validator.New(),
		log:      log.With().Str("component", "auth").Logger(),
	}
}

// Register hashes the password and creates the account. A taken email
// fails with store.ErrDuplicateEmail; the returned record is redacted.
func (s *Service) Register(in RegisterInput) (models.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.User{}, err
	}
	if existing := s.users.FindByEmail(in.Email); existing != nil {
		return models.User{}, store.ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user, err := s.users.Create(models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     in.Role,
		Phone:    in.Phone,
	})
	if err != nil {
		return models.User{}, err
	}
	s.log.Info().Str("user", user.ID).Msg("user registered")
	return user, nil
}

// CheckPassword reports whether entered matches the stored bcrypt hash.
func (s *Service) CheckPassword(entered, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(entered)) == nil
}

// IssueToken signs a bearer token carrying the user id as its subject.
// Secret and lifetime come from process configuration, read at issuance.
func (s *Service) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}
