package jwtx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/notecards/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestKeySetResetFromJWKS(t *testing.T) {
	a := newTestSigner(t, "a")
	b := newTestSigner(t, "b")

	ks := jwtx.NewKeySet()
	require.False(t, ks.IsReady())
	require.NoError(t, ks.AddSigner(a))
	require.True(t, ks.IsReady())

	require.NoError(t, ks.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{b.PublicJWK()}}))

	_, err := ks.Get("a")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
	_, err = ks.Get("b")
	require.NoError(t, err)

	t.Run("bad key leaves set untouched", func(t *testing.T) {
		err := ks.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{{Kty: "RSA", Kid: "r"}}})
		require.Error(t, err)
		_, err = ks.Get("b")
		require.NoError(t, err)
	})

	t.Run("empty set rejected", func(t *testing.T) {
		require.ErrorIs(t, ks.ResetFromJWKS(jwtx.JWKS{}), jwtx.ErrEmptyJWKS)
	})
}

func TestLoadJWKSFile(t *testing.T) {
	s := newTestSigner(t, "file-key")
	b, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{s.PublicJWK()}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwks.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))

	jwks, err := jwtx.LoadJWKSFile(path)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "file-key", jwks.Keys[0].Kid)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)

	_, err = jwtx.LoadJWKSFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestFetchJWKS(t *testing.T) {
	s := newTestSigner(t, "remote-key")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/jwks.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{s.PublicJWK()}})
	}))
	defer srv.Close()

	jwks, err := jwtx.FetchJWKS(context.Background(), srv.Client(), srv.URL+"/.well-known/jwks.json")
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "remote-key", jwks.Keys[0].Kid)

	_, err = jwtx.FetchJWKS(context.Background(), srv.Client(), srv.URL+"/nope")
	require.Error(t, err)
}
