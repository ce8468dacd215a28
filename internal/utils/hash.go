package utils

import "golang.org/x/crypto/bcrypt"

// HashPasscode returns a bcrypt hash of the admin passcode, for
// generating ADMIN_PASSCODE_HASH values.
func HashPasscode(passcode string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasscode compares a bcrypt passcode hash with a login attempt.
func CheckPasscode(hashedPasscode, passcode string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPasscode), []byte(passcode)) == nil
}
