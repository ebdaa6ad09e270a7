package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	cartUsecases "github.com/lumen-edu/lumen/internal/application/cart/usecases"
	"github.com/lumen-edu/lumen/internal/shared/biztime"
)

var (
	ErrInvalidConfirmation  = errors.New("invalid payment confirmation")
	ErrConfirmationMismatch = errors.New("payment confirmation does not match checkout")
)

// ConfirmationClaims is what the payment provider signs once a payment has settled.
// The user ID travels in "sub" and the payment reference in "jti".
type ConfirmationClaims struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
	jwt.RegisteredClaims
}

// ConfirmationVerifier checks HS256 confirmations against a shared provider secret.
type ConfirmationVerifier struct {
	secret []byte
	issuer string
}

var _ cartUsecases.PaymentVerifier = (*ConfirmationVerifier)(nil)

func NewConfirmationVerifier(secret, issuer string) *ConfirmationVerifier {
	return &ConfirmationVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Sign issues a confirmation the way the provider does. Used by tests and local tooling.
func (v *ConfirmationVerifier) Sign(reference, userID string, total decimal.Decimal, currency string, ttl time.Duration) (string, error) {
	now := biztime.NowUTC()
	claims := &ConfirmationClaims{
		Total:    total.StringFixed(2),
		Currency: currency,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        reference,
			Subject:   userID,
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign payment confirmation: %w", err)
	}
	return signed, nil
}

// VerifyPayment accepts the token only if it is signed with the provider secret, unexpired,
// and covers the same reference, user, total and currency as the checkout.
func (v *ConfirmationVerifier) VerifyPayment(ctx context.Context, c cartUsecases.PaymentConfirmation) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(c.Token, &ConfirmationClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfirmation, err)
	}
	claims, ok := token.Claims.(*ConfirmationClaims)
	if !ok || !token.Valid {
		return ErrInvalidConfirmation
	}

	if claims.ID != c.Reference || claims.Subject != c.UserID || claims.Currency != c.Currency {
		return ErrConfirmationMismatch
	}
	paid, err := decimal.NewFromString(claims.Total)
	if err != nil {
		return fmt.Errorf("%w: bad total %q", ErrInvalidConfirmation, claims.Total)
	}
	if !paid.Equal(c.Total) {
		return fmt.Errorf("%w: paid %s, due %s", ErrConfirmationMismatch, paid.StringFixed(2), c.Total.StringFixed(2))
	}
	return nil
}
