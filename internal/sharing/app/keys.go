package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notecards/pkg/jwtx"
)

const initialFetchTimeout = 10 * time.Second

// InitVerifier loads the auth service's public keys and builds the token
// verifier. A JWKS URL takes precedence over a file; when the first fetch
// fails the service still starts and reports not ready until a refresh
// succeeds.
func InitVerifier(ctx context.Context, cfg Config, client *http.Client, logger *slog.Logger) (*jwtx.KeySet, *jwtx.KeySetVerifier, error) {
	keys := jwtx.NewKeySet()

	switch {
	case cfg.JWKSURL != "":
		fetchCtx, cancel := context.WithTimeout(ctx, initialFetchTimeout)
		defer cancel()

		jwks, err := jwtx.FetchJWKS(fetchCtx, client, cfg.JWKSURL)
		if err == nil {
			err = keys.ResetFromJWKS(jwks)
		}
		if err != nil {
			logger.Warn("initial jwks fetch failed, will retry", "url", cfg.JWKSURL, "error", err)
		} else {
			logger.Info("verification keys loaded", "url", cfg.JWKSURL, "keys", len(jwks.Keys))
		}

	default:
		jwks, err := jwtx.LoadJWKSFile(cfg.JWKSFile)
		if err != nil {
			return nil, nil, err
		}
		if err := keys.ResetFromJWKS(jwks); err != nil {
			return nil, nil, err
		}
		logger.Info("verification keys loaded", "file", cfg.JWKSFile, "keys", len(jwks.Keys))
	}

	verifier, err := jwtx.NewVerifier(cfg.Algorithm, keys, jwtx.VerifyOptions{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Leeway:   jwtx.DefaultLeeway,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build verifier: %w", err)
	}
	return keys, verifier, nil
}
