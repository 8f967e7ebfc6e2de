package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleBolsista UserRole = "bolsista"
	RoleVisitor  UserRole = "visitor"
)

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string   `gorm:"size:200;not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}

// SetPassword guarda apenas o hash bcrypt; a senha em texto nunca é persistida.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
