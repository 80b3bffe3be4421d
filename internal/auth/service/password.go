package service

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt cost used for user credentials. Higher than the
// library default because these hashes guard long-lived accounts.
const PasswordCost = 12

// HashPassword produces a self-describing bcrypt hash (cost and salt embedded).
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored hash. A mismatch is
// not an error, just false.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
