package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/argon2"

	"github.com/artilluminati/pautina-hosting/internal/models"
)

// ErrInvalidToken covers every token failure: bad signature, wrong
// signing method, malformed payload, expiry. Callers must not be able
// to tell the cases apart.
var ErrInvalidToken = errors.New("invalid token")

// Argon2id parameters and the temporary-password alphabet.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16

	// TempPasswordLength is the default length for generated
	// temporary passwords.
	TempPasswordLength = 10

	tokenTTL = 24 * time.Hour

	tempPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Claims is the JWT payload: subject carries the decimal user id,
// Role the access tier at issuance time.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// Service handles authentication-related operations
type Service struct {
	jwtSecret string
}

// NewService creates a new authentication service
func NewService(jwtSecret string) *Service {
	return &Service{
		jwtSecret: jwtSecret,
	}
}

// HashPassword derives an Argon2id hash of the password and returns it
// in the standard PHC string form with a fresh random salt.
func (s *Service) HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// CheckPassword verifies a password against a PHC-encoded Argon2id
// hash. Any decode failure or mismatch yields false; no error escapes.
func (s *Service) CheckPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var (
		memory, timeCost uint32
		threads          uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

// GenerateTempPassword returns a random string of letters and digits
// drawn from crypto/rand.
func (s *Service) GenerateTempPassword(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordChars[n.Int64()]
	}
	return string(buf), nil
}

// GenerateToken creates a new JWT token for a user
func (s *Service) GenerateToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		Role: user.Role,
	})
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken validates a JWT token and returns the subject user id
// and role. Every failure mode collapses to ErrInvalidToken.
func (s *Service) VerifyToken(tokenString string) (int64, models.Role, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	return userID, claims.Role, nil
}
