package utils

import "golang.org/x/crypto/bcrypt"

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}

// Bcrypt 以接口形式把单向散列交给上层使用
type Bcrypt struct{}

func (Bcrypt) Hash(pw string) string        { return HashPassword(pw) }
func (Bcrypt) Check(pw, digest string) bool { return CheckPassword(pw, digest) }
