package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/auth"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// UserUseCase administración de usuarios (todas las operaciones son solo admin,
// el gate de rol vive en la ruta).
type UserUseCase struct {
	repo    repository.UserRepository
	storage auth.ObjectStorage
	log     zerolog.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, storage auth.ObjectStorage, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, storage: storage, log: log}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Get obtiene un usuario por id.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza perfil, rol y permisos. La foto de perfil nueva (si viene)
// se sube primero; la anterior se elimina best-effort.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest, picture *auth.ProfilePicture) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.AccountType != nil {
		if !entity.ValidRole(*in.AccountType) {
			return nil, domain.ErrInvalidInput
		}
		user.AccountType = *in.AccountType
	}
	if in.Permissions != nil {
		user.Permissions = *in.Permissions
	}
	if picture != nil {
		url, err := uc.storage.Upload(ctx, "user-profiles", picture.Filename, picture.Content, picture.ContentType)
		if err != nil {
			return nil, domain.ErrUpstream
		}
		if old := user.ProfilePicture; old != "" {
			if err := uc.storage.Delete(ctx, old); err != nil {
				uc.log.Warn().Err(err).Str("url", old).Msg("no se pudo eliminar la foto de perfil anterior")
			}
		}
		user.ProfilePicture = url
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina el usuario. No cascada: las entidades que lo referencian
// conservan ids colgantes que los lectores resuelven a null. La foto de
// perfil huérfana se elimina best-effort.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if user.ProfilePicture != "" {
		if err := uc.storage.Delete(ctx, user.ProfilePicture); err != nil {
			uc.log.Warn().Err(err).Str("url", user.ProfilePicture).Msg("no se pudo eliminar la foto de perfil huérfana")
		}
	}
	return nil
}
