package subsonic

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"

	"github.com/m-mizutani/goerr/v2"
)

const (
	saltChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	saltLength = 10
)

// newSalt returns a random salt for token authentication
func newSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", goerr.Wrap(err, "failed to generate salt")
	}
	for i, b := range buf {
		buf[i] = saltChars[int(b)%len(saltChars)]
	}
	return string(buf), nil
}

// authToken derives the Subsonic authentication token: the lowercase hex
// MD5 digest of the password concatenated with the salt
func authToken(password, salt string) string {
	sum := md5.Sum([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
