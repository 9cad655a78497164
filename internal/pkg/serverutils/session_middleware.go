package serverutils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionIdLocal = "session_id"

var ErrInvalidSessionToken = errors.New("invalid session token")

type sessionClaims struct {
	SessionId string `json:"session_id"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a token naming the session. It carries no
// expiry: the session store's sliding TTL decides how long it stays valid.
func IssueSessionToken(secret string, sessionId uuid.UUID) (string, error) {
	claims := sessionClaims{
		SessionId: sessionId.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseSessionToken(secret, tokenStr string) (uuid.UUID, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidSessionToken
	}

	id, err := uuid.Parse(claims.SessionId)
	if err != nil {
		return uuid.Nil, ErrInvalidSessionToken
	}
	return id, nil
}

// BearerToken reads the token from the Authorization header, falling
// back to the `token` query parameter browsers use for WebSockets.
func BearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ctx.Query("token")
}

func SessionMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := BearerToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		sessionId, err := ParseSessionToken(secret, tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals(SessionIdLocal, sessionId.String())
		return ctx.Next()
	}
}

// SessionIdFrom returns the session id stored by SessionMiddleware.
func SessionIdFrom(ctx *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := ctx.Locals(SessionIdLocal).(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return id, nil
}
