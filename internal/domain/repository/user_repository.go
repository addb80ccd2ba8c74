package repository

import "github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (Identity Store).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	// Delete no cascada: las referencias colgantes en otras entidades se
	// toleran y los lectores las resuelven a null.
	Delete(id string) error
}
