package board

import "golang.org/x/crypto/bcrypt"

// User is a registered account. Only the bcrypt hash of the password is
// ever stored; the username is immutable after creation.
type User struct {
	Name         string
	PasswordHash string
	Online       bool
}

// NewUser creates an offline user with the given password hashed.
func NewUser(name, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{Name: name, PasswordHash: string(hash)}, nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Clone returns a copy safe to hand outside the directory lock.
func (u *User) Clone() *User {
	c := *u
	return &c
}
