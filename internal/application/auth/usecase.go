package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
	"github.com/AniketRabade/Prjoect-Management-CRM/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ProfilePicture archivo subido en el registro; nil si no se envió.
type ProfilePicture struct {
	Filename    string
	ContentType string
	Content     []byte
}

// AuthUseCase casos de uso de autenticación: registro (solo admin), login y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	storage  ObjectStorage
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, storage ObjectStorage, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, storage: storage, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt, sube la foto de
// perfil si viene y persiste. El gate de rol (solo admin) está en la ruta.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest, picture *ProfilePicture) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.AccountType
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	var pictureURL string
	if picture != nil {
		url, err := uc.storage.Upload(ctx, "user-profiles", picture.Filename, picture.Content, picture.ContentType)
		if err != nil {
			return nil, domain.ErrUpstream
		}
		pictureURL = url
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Email:          in.Email,
		Phone:          strings.TrimSpace(in.Phone),
		PasswordHash:   string(hash),
		AccountType:    role,
		ProfilePicture: pictureURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Permissions != nil {
		user.Permissions = *in.Permissions
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.AccountType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// normalizeEmail limpia comillas sobrantes y normaliza a minúsculas.
// Algunos clientes envían el email citado dentro del multipart.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(email, `"`)))
}

// ToUserResponse mapea la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		AccountType:    u.AccountType,
		Permissions:    u.Permissions,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
