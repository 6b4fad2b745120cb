package jwtx

// Signer is our interface for anything that can sign JWTs. The sharing
// service never mints tokens in production; signers exist for tests and
// local tooling that need tokens the verifier will accept.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
	Validate() error
}
