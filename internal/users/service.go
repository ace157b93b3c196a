package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ticketeiro/internal/auth"
	"ticketeiro/internal/config"
	"ticketeiro/internal/logger"
	"ticketeiro/internal/models"
	"ticketeiro/internal/schema"
)

type UserDBLayer interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrCPF(ctx context.Context, email, cpfCNPJ string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
}

type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (*auth.GoogleProfile, error)
}

// AuthResult is what the sign-in/sign-up actions hand back to the UI:
// a message to toast, and on success a session token plus the
// role-based landing URL.
type AuthResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Fields  []schema.FieldError `json:"fields,omitempty"`
	Token   string              `json:"token,omitempty"`
	URL     string              `json:"url,omitempty"`
}

type UserService struct {
	DB       UserDBLayer
	AuthCfg  config.AuthConfig
	Verifier IDTokenVerifier
	Logger   *logger.Logger
}

func NewUserService(db UserDBLayer, authCfg config.AuthConfig, verifier IDTokenVerifier, log *logger.Logger) *UserService {
	return &UserService{DB: db, AuthCfg: authCfg, Verifier: verifier, Logger: log}
}

func (s *UserService) SignUp(ctx context.Context, payload *models.CredentialsSignUp) AuthResult {
	if err := schema.ValidateCredentialsSignUp(payload); err != nil {
		res := AuthResult{Message: "Campos inválidos"}
		if verr, ok := err.(*schema.ValidationError); ok {
			res.Fields = verr.Fields
		}
		return res
	}

	existing, err := s.DB.FindByEmailOrCPF(ctx, payload.Email, payload.CPFCNPJ)
	if err != nil {
		s.Logger.Error("DATABASE", fmt.Sprintf("duplicate check failed: %v", err))
		return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
	}
	if existing != nil {
		return AuthResult{Message: "Email ou CPF/CNPJ informado já está cadastrado"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    payload.Email,
		Name:     payload.Name,
		Password: string(hashed),
		CPFCNPJ:  payload.CPFCNPJ,
		Phone:    payload.Phone,
		Role:     payload.Role,
	}

	created, err := s.DB.CreateUser(ctx, user)
	if err != nil || created == nil {
		s.Logger.Error("DATABASE", fmt.Sprintf("user insert failed: %v", err))
		return AuthResult{Message: "Erro ao criar usuário"}
	}

	token, err := auth.IssueSessionToken(s.AuthCfg, created)
	if err != nil {
		s.Logger.Error("AUTH", fmt.Sprintf("token issue failed: %v", err))
		return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
	}

	return AuthResult{
		Success: true,
		Message: "Usuário criado com sucesso",
		Token:   token,
		URL:     auth.RedirectPath(created.Role),
	}
}

func (s *UserService) SignIn(ctx context.Context, payload *models.CredentialsSignIn, callbackURL string) AuthResult {
	if err := schema.ValidateCredentialsSignIn(payload); err != nil {
		res := AuthResult{Message: "Campos inválidos"}
		if verr, ok := err.(*schema.ValidationError); ok {
			res.Fields = verr.Fields
		}
		return res
	}

	user, err := s.DB.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		s.Logger.Error("DATABASE", fmt.Sprintf("user lookup failed: %v", err))
		return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
	}
	if user == nil || user.Password == "" {
		return AuthResult{Message: "Usuário não cadastrado!"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		s.Logger.LogSecurity("SIGN_IN", fmt.Sprintf("wrong password for %s", payload.Email))
		return AuthResult{Message: "Senha incorreta!"}
	}

	token, err := auth.IssueSessionToken(s.AuthCfg, user)
	if err != nil {
		s.Logger.Error("AUTH", fmt.Sprintf("token issue failed: %v", err))
		return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
	}

	url := callbackURL
	if url == "" {
		url = auth.RedirectPath(user.Role)
	}

	return AuthResult{Success: true, Token: token, URL: url}
}

// Profile returns the stored user backing a session.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.DB.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return user, nil
}

// OAuthRegister completes a Google sign-in: the verified subject
// becomes the user id, and the submitted profile fills the fields the
// provider does not supply.
func (s *UserService) OAuthRegister(ctx context.Context, payload *models.OAuthRegister) AuthResult {
	if err := schema.ValidateOAuthRegister(payload); err != nil {
		res := AuthResult{Message: "Campos inválidos"}
		if verr, ok := err.(*schema.ValidationError); ok {
			res.Fields = verr.Fields
		}
		return res
	}

	if s.Verifier == nil {
		return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
	}

	profile, err := s.Verifier.VerifyIDToken(ctx, payload.IDToken)
	if err != nil {
		s.Logger.LogSecurity("OAUTH", fmt.Sprintf("ID token rejected: %v", err))
		return AuthResult{Message: "Credenciais inválidas"}
	}

	if existing, err := s.DB.GetUserByEmail(ctx, profile.Email); err == nil && existing != nil {
		token, err := auth.IssueSessionToken(s.AuthCfg, existing)
		if err != nil {
			return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
		}
		return AuthResult{Success: true, Token: token, URL: auth.RedirectPath(existing.Role)}
	}

	user := models.User{
		ID:      profile.Subject,
		Email:   profile.Email,
		Name:    payload.Name,
		Image:   profile.Picture,
		CPFCNPJ: payload.CPFCNPJ,
		Phone:   payload.Phone,
		Role:    payload.Role,
	}

	created, err := s.DB.CreateUser(ctx, user)
	if err != nil || created == nil {
		s.Logger.Error("DATABASE", fmt.Sprintf("oauth user insert failed: %v", err))
		return AuthResult{Message: "Erro ao criar usuário"}
	}

	token, err := auth.IssueSessionToken(s.AuthCfg, created)
	if err != nil {
		return AuthResult{Message: "Erro interno no servidor. Tente novamente mais tarde."}
	}

	return AuthResult{
		Success: true,
		Message: "Usuário criado com sucesso",
		Token:   token,
		URL:     auth.RedirectPath(created.Role),
	}
}
