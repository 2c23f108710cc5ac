/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"

	"github.com/trustbloc/statuslist-go/cwt"
	"github.com/trustbloc/statuslist-go/jwt"
	"github.com/trustbloc/statuslist-go/status/statuslist"
	"github.com/trustbloc/statuslist-go/util/zlib"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writePublicKey(t *testing.T, key *ecdsa.PrivateKey) string {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "issuer.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	return path
}

func writeJWK(t *testing.T, key *ecdsa.PrivateKey) string {
	t.Helper()

	data, err := jose.JSONWebKey{Key: &key.PublicKey, Algorithm: string(jose.ES256)}.MarshalJSON()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "issuer.jwk")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// statusListServer serves a status list token for the status values 1,0,0,1,1,1,0,1 at /statuslists/1.
func statusListServer(t *testing.T, key *ecdsa.PrivateKey) string {
	t.Helper()

	var uri string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := signStatusListToken(r.Header.Get("Accept"), uri, key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		_, _ = w.Write(token)
	}))
	t.Cleanup(server.Close)

	uri = server.URL + "/statuslists/1"

	return uri
}

func signStatusListToken(accept, uri string, key *ecdsa.PrivateKey) ([]byte, error) {
	list, err := statuslist.FromRawBytes(context.Background(), statuslist.BitsOne, []byte{0xB9}, zlib.New())
	if err != nil {
		return nil, err
	}

	claims := statuslist.TokenClaims{
		Subject:    uri,
		IssuedAt:   time.Now().Add(-time.Minute).Truncate(time.Second),
		StatusList: list,
	}

	if accept == statuslist.MediaTypeCWT {
		return cwt.Sign(claims, cwt.SignParameters{CWTAlg: cose.AlgorithmES256, Type: statuslist.MediaSubtypeCWT}, key)
	}

	token, err := jwt.Sign(claims, jwt.SignParameters{Algorithm: jose.ES256, Type: statuslist.MediaSubtypeJWT}, key)

	return []byte(token), err
}

func decodeView(t *testing.T, out string) statusView {
	t.Helper()

	var view statusView
	require.NoError(t, json.Unmarshal([]byte(out), &view))

	return view
}

func TestGetCommand(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	uri := statusListServer(t, key)
	pemKey := writePublicKey(t, key)

	t.Run("success - JWT", func(t *testing.T) {
		out, err := execute(t, "get", uri, "0", "--key", pemKey)
		require.NoError(t, err)
		require.Equal(t, statusView{URI: uri, Index: 0, Status: "invalid", Value: 1}, decodeView(t, out))
	})

	t.Run("success - JWK key restricted to algorithm", func(t *testing.T) {
		out, err := execute(t, "get", uri, "1", "--key", writeJWK(t, key), "--alg", "ES256")
		require.NoError(t, err)
		require.Equal(t, "valid", decodeView(t, out).Status)
	})

	t.Run("success - CWT", func(t *testing.T) {
		out, err := execute(t, "get", uri, "3", "--format", "cwt", "--key", pemKey)
		require.NoError(t, err)
		require.Equal(t, statusView{URI: uri, Index: 3, Status: "invalid", Value: 1}, decodeView(t, out))
	})

	t.Run("success - signature not verified", func(t *testing.T) {
		out, err := execute(t, "get", uri, "6", "--skipverify")
		require.NoError(t, err)
		require.Equal(t, "valid", decodeView(t, out).Status)
	})

	t.Run("success - reference from JWT", func(t *testing.T) {
		referenced, err := jwt.Sign(map[string]interface{}{
			"status": map[string]interface{}{
				"status_list": map[string]interface{}{"idx": 2, "uri": uri},
			},
		}, jwt.SignParameters{Algorithm: jose.ES256}, key)
		require.NoError(t, err)

		out, err := execute(t, "get", "--token", referenced+"~", "--key", pemKey)
		require.NoError(t, err)
		require.Equal(t, statusView{URI: uri, Index: 2, Status: "valid", Value: 0}, decodeView(t, out))
	})

	t.Run("success - reference from CWT", func(t *testing.T) {
		referenced, err := cwt.Sign(map[int]interface{}{
			statuslist.CWTClaimStatus: map[string]interface{}{
				"status_list": map[string]interface{}{"idx": 4, "uri": uri},
			},
		}, cwt.SignParameters{CWTAlg: cose.AlgorithmES256}, key)
		require.NoError(t, err)

		out, err := execute(t, "get", "--format", "cwt", "--token", hex.EncodeToString(referenced),
			"--key", pemKey)
		require.NoError(t, err)
		require.Equal(t, statusView{URI: uri, Index: 4, Status: "invalid", Value: 1}, decodeView(t, out))
	})

	t.Run("error - signed by another key", func(t *testing.T) {
		other, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		_, err = execute(t, "get", uri, "0", "--key", writePublicKey(t, other))
		require.ErrorIs(t, err, statuslist.ErrInvalidSignature)
	})

	t.Run("error - uri is not the subject", func(t *testing.T) {
		_, err := execute(t, "get", uri+"?other", "0", "--skipverify")
		require.ErrorIs(t, err, statuslist.ErrSubjectMismatch)
	})

	t.Run("error - index out of range", func(t *testing.T) {
		_, err := execute(t, "get", uri, "8", "--skipverify")
		require.ErrorIs(t, err, statuslist.ErrOutOfRange)
	})

	t.Run("error - key required", func(t *testing.T) {
		_, err := execute(t, "get", uri, "0")
		require.ErrorContains(t, err, "--key is required")
	})

	t.Run("error - missing arguments", func(t *testing.T) {
		_, err := execute(t, "get", uri, "--skipverify")
		require.ErrorContains(t, err, "uri and idx are required")

		_, err = execute(t, "get", "--skipverify", "--", uri, "-1")
		require.ErrorIs(t, err, statuslist.ErrInvalidArgument)
	})

	t.Run("error - unsupported format", func(t *testing.T) {
		_, err := execute(t, "get", uri, "0", "--format", "xml", "--skipverify")
		require.ErrorIs(t, err, statuslist.ErrInvalidArgument)
	})
}

func TestEncodeDecodeCommands(t *testing.T) {
	t.Run("success - round trip", func(t *testing.T) {
		out, err := execute(t, "encode", "--bits", "2", "0,1,2,3,0")
		require.NoError(t, err)

		var list struct {
			Bits int    `json:"bits"`
			List string `json:"lst"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &list))
		require.Equal(t, 2, list.Bits)

		out, err = execute(t, "decode", "--bits", "2", list.List)
		require.NoError(t, err)

		var views []statusView
		require.NoError(t, json.Unmarshal([]byte(out), &views))
		require.Len(t, views, 8)
		require.Equal(t, "valid", views[0].Status)
		require.Equal(t, "invalid", views[1].Status)
		require.Equal(t, "suspended", views[2].Status)
		require.Equal(t, "application_specific", views[3].Status)
		require.Equal(t, "valid", views[4].Status)
	})

	t.Run("success - aggregation uri", func(t *testing.T) {
		out, err := execute(t, "encode", "1,0", "--aggregation-uri", "https://example.com/statuslists")
		require.NoError(t, err)
		require.Contains(t, out, `"aggregation_uri": "https://example.com/statuslists"`)
	})

	t.Run("success - decode single index", func(t *testing.T) {
		out, err := execute(t, "decode", "eNrbuRgAAhcBXQ", "--index", "8")
		require.NoError(t, err)
		require.Equal(t, statusView{Index: 8, Status: "invalid", Value: 1}, decodeView(t, out))
	})

	t.Run("error - value does not fit", func(t *testing.T) {
		_, err := execute(t, "encode", "0,2")
		require.ErrorIs(t, err, statuslist.ErrInvalidArgument)

		_, err = execute(t, "encode", "0,x")
		require.ErrorContains(t, err, "invalid status value")
	})

	t.Run("error - invalid bits", func(t *testing.T) {
		_, err := execute(t, "encode", "--bits", "3", "0")
		require.ErrorIs(t, err, statuslist.ErrInvalidArgument)
	})

	t.Run("error - invalid list", func(t *testing.T) {
		_, err := execute(t, "decode", "not*base64")
		require.ErrorIs(t, err, statuslist.ErrDecode)

		_, err = execute(t, "decode", "AAAA")
		require.ErrorIs(t, err, statuslist.ErrDecompression)

		_, err = execute(t, "decode", "eNrbuRgAAhcBXQ", "--index", "16")
		require.ErrorIs(t, err, statuslist.ErrOutOfRange)
	})
}
