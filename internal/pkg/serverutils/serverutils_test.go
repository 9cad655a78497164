package serverutils

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"lessonplan-review-be/pkg/review"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation rejected", fmt.Errorf("%w: empty note", review.ErrValidationRejected), 400},
		{"precondition", fmt.Errorf("%w: not rated", review.ErrPreconditionUnmet), 409},
		{"lookup miss", fmt.Errorf("%w: note", review.ErrLookupMiss), 404},
		{"fiber error", fiber.ErrUnprocessableEntity, 422},
		{"dto validation", &ValidationError{}, 400},
		{"anything else", io.ErrUnexpectedEOF, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type rateRequest struct {
		Value int `json:"value" validate:"min=1,max=5"`
	}

	assert.NoError(t, ValidateRequest(rateRequest{Value: 3}))

	err := ValidateRequest(rateRequest{Value: 9})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "Value failed on max=5")
}

func TestSessionToken_RoundTrip(t *testing.T) {
	id := uuid.New()
	token, err := IssueSessionToken("secret", id)
	require.NoError(t, err)

	got, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseSessionToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	old := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SessionId: id.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
		},
	})
	oldToken, err := old.SignedString([]byte("secret"))
	require.NoError(t, err)
	got, err = ParseSessionToken("secret", oldToken)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{SessionId: id.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseSessionToken("secret", none)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/whoami", SessionMiddleware("secret"), func(ctx *fiber.Ctx) error {
		id, err := SessionIdFrom(ctx)
		if err != nil {
			return err
		}
		return ctx.SendString(id.String())
	})

	id := uuid.New()
	token, err := IssueSessionToken("secret", id)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"missing", "", "", 401},
		{"garbage", "Bearer nope", "", 401},
		{"header", "Bearer " + token, "", 200},
		{"query", "", "?token=" + token, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			if tt.want == 200 {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, id.String(), string(body))
			}
		})
	}
}
