package payment

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartUsecases "github.com/lumen-edu/lumen/internal/application/cart/usecases"
)

func confirmation(token string) cartUsecases.PaymentConfirmation {
	return cartUsecases.PaymentConfirmation{
		Reference: "pay_001",
		UserID:    "user-1",
		Total:     decimal.RequireFromString("250"),
		Currency:  "USD",
		Token:     token,
	}
}

func TestConfirmationVerifier_AcceptsProviderToken(t *testing.T) {
	v := NewConfirmationVerifier("provider-secret", "paygate")

	token, err := v.Sign("pay_001", "user-1", decimal.RequireFromString("250.00"), "USD", time.Hour)
	require.NoError(t, err)

	assert.NoError(t, v.VerifyPayment(context.Background(), confirmation(token)))
}

func TestConfirmationVerifier_Rejects(t *testing.T) {
	v := NewConfirmationVerifier("provider-secret", "paygate")
	total := decimal.RequireFromString("250")

	sign := func(t *testing.T, signer *ConfirmationVerifier, ref, user string, amount decimal.Decimal, currency string, ttl time.Duration) string {
		t.Helper()
		tok, err := signer.Sign(ref, user, amount, currency, ttl)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing",
			token:   func(t *testing.T) string { return "" },
			wantErr: ErrInvalidConfirmation,
		},
		{
			name:    "not a token",
			token:   func(t *testing.T) string { return "made-up-by-client" },
			wantErr: ErrInvalidConfirmation,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, NewConfirmationVerifier("guessed", "paygate"), "pay_001", "user-1", total, "USD", time.Hour)
			},
			wantErr: ErrInvalidConfirmation,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				return sign(t, NewConfirmationVerifier("provider-secret", "elsewhere"), "pay_001", "user-1", total, "USD", time.Hour)
			},
			wantErr: ErrInvalidConfirmation,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return sign(t, v, "pay_001", "user-1", total, "USD", -time.Minute)
			},
			wantErr: ErrInvalidConfirmation,
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				claims := &ConfirmationClaims{
					Total:    "250.00",
					Currency: "USD",
					RegisteredClaims: jwt.RegisteredClaims{
						ID:        "pay_001",
						Subject:   "user-1",
						Issuer:    "paygate",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidConfirmation,
		},
		{
			name: "other reference",
			token: func(t *testing.T) string {
				return sign(t, v, "pay_002", "user-1", total, "USD", time.Hour)
			},
			wantErr: ErrConfirmationMismatch,
		},
		{
			name: "other user",
			token: func(t *testing.T) string {
				return sign(t, v, "pay_001", "user-2", total, "USD", time.Hour)
			},
			wantErr: ErrConfirmationMismatch,
		},
		{
			name: "smaller amount",
			token: func(t *testing.T) string {
				return sign(t, v, "pay_001", "user-1", decimal.RequireFromString("1"), "USD", time.Hour)
			},
			wantErr: ErrConfirmationMismatch,
		},
		{
			name: "other currency",
			token: func(t *testing.T) string {
				return sign(t, v, "pay_001", "user-1", total, "EUR", time.Hour)
			},
			wantErr: ErrConfirmationMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.VerifyPayment(context.Background(), confirmation(tt.token(t)))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
