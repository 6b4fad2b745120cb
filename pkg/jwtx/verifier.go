package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Supported JWT signing algorithms for verification.
const (
	AlgorithmES256 = "ES256"
	AlgorithmEdDSA = "EdDSA"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Audience values the token must contain (claims.aud). Empty means "don't care".
	Audience []string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")

	ErrUnsupportedAlgorithm = errors.New("jwtx: unsupported algorithm")
)

// KeySetVerifier validates tokens signed with a single algorithm against the
// public keys held in a KeySet. The KeySet may be refreshed concurrently.
type KeySetVerifier struct {
	keys   *KeySet
	method jwt.SigningMethod
	opts   VerifyOptions
}

// NewVerifier returns a Verifier for alg ("EdDSA" or "ES256").
func NewVerifier(alg string, keys *KeySet, opts VerifyOptions) (*KeySetVerifier, error) {
	var method jwt.SigningMethod
	switch alg {
	case AlgorithmEdDSA:
		method = jwt.SigningMethodEdDSA
	case AlgorithmES256:
		method = jwt.SigningMethodES256
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	return &KeySetVerifier{keys: keys, method: method, opts: opts}, nil
}

// Alg returns the algorithm this verifier accepts.
func (v *KeySetVerifier) Alg() string { return v.method.Alg() }

// Verify validates the JWT string and returns its parsed Claims.
func (v *KeySetVerifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithLeeway(v.opts.Leeway),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, v.keyFunc)
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(v.opts.Leeway); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

func (v *KeySetVerifier) keyFunc(t *jwt.Token) (any, error) {
	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("%w: missing kid", ErrUnknownKID)
	}

	pub, err := v.keys.Get(kid)
	if err != nil {
		return nil, fmt.Errorf("jwtx: unknown kid %q: %w", kid, err)
	}

	// The key type has to line up with the algorithm we accept.
	switch v.method {
	case jwt.SigningMethodEdDSA:
		if k, ok := pub.(ed25519.PublicKey); ok {
			return k, nil
		}
	case jwt.SigningMethodES256:
		if k, ok := pub.(*ecdsa.PublicKey); ok {
			return k, nil
		}
	}
	return nil, ErrAlgMismatch
}
