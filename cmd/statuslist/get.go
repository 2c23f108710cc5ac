/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-jose/go-jose/v3"
	"github.com/spf13/cobra"

	"github.com/trustbloc/statuslist-go/cwt"
	"github.com/trustbloc/statuslist-go/jwt"
	"github.com/trustbloc/statuslist-go/status"
	"github.com/trustbloc/statuslist-go/status/api"
	"github.com/trustbloc/statuslist-go/status/resolver"
	"github.com/trustbloc/statuslist-go/status/statuslist"
)

const tokenFlag = "token"

type statusView struct {
	URI    string `json:"uri,omitempty"`
	Index  int    `json:"idx"`
	Status string `json:"status"`
	Value  uint8  `json:"value"`
}

func newStatusView(uri string, idx int, s statuslist.Status) statusView {
	return statusView{URI: uri, Index: idx, Status: s.Kind().String(), Value: s.Value()}
}

func newGetCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [uri idx]",
		Short: "Resolves the status of a Referenced Token.",
		Long: "Resolves the status at index idx of the Status List Token at uri. Instead of uri and idx, the " +
			"Referenced Token can be given with --token: a compact JWT (or SD-JWT) for the jwt format, " +
			"a hex encoded CWT for the cwt format.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := statuslist.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			token, _ := cmd.Flags().GetString(tokenFlag)

			ref, err := statusReference(format, token, args)
			if err != nil {
				return err
			}

			at, err := cfg.validationTime()
			if err != nil {
				return err
			}

			getter, err := newTokenGetter(cfg, format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if cfg.Timeout > 0 {
				var cancel context.CancelFunc

				ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
				defer cancel()
			}

			client, err := status.NewClient(getter)
			if err != nil {
				return err
			}

			s, err := client.Status(ctx, ref, at)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), newStatusView(ref.URI(), ref.Index().Value(), s))
		},
	}

	cmd.Flags().String(tokenFlag, "", "Referenced Token carrying the status reference.")

	return cmd
}

func statusReference(format statuslist.Format, token string, args []string) (statuslist.StatusReference, error) {
	switch {
	case token != "" && len(args) > 0:
		return statuslist.StatusReference{}, errors.New("either uri and idx or --token must be given, not both")
	case token != "":
		return referenceFromToken(format, token)
	case len(args) != 2:
		return statuslist.StatusReference{}, errors.New("uri and idx are required")
	}

	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return statuslist.StatusReference{}, fmt.Errorf("invalid idx '%s': %w", args[1], err)
	}

	return statuslist.NewStatusReference(idx, args[0])
}

func referenceFromToken(format statuslist.Format, token string) (statuslist.StatusReference, error) {
	if format == statuslist.FormatCWT {
		raw, err := hex.DecodeString(strings.TrimSpace(token))
		if err != nil {
			return statuslist.StatusReference{}, fmt.Errorf("CWT must be hex encoded: %w", err)
		}

		var payload cbor.RawMessage

		if _, err = cwt.ParseHeaderAndPayload(raw, &payload); err != nil {
			return statuslist.StatusReference{}, err
		}

		return statuslist.ReferenceFromCBOR(payload)
	}

	// the issuer signed JWT of an SD-JWT precedes the first disclosure
	jws, _, _ := strings.Cut(strings.TrimSpace(token), "~")

	var payload json.RawMessage

	if _, err := jwt.ParseHeaderAndPayload(jws, &payload); err != nil {
		return statuslist.StatusReference{}, err
	}

	return statuslist.ReferenceFromJSON(payload)
}

func newTokenGetter(cfg *config, format statuslist.Format) (status.TokenGetter, error) {
	fetcher := resolver.New(resolver.WithRetry(cfg.Retries, resolver.DefaultRetryDelay))
	opts := []status.GetterOpt{status.WithAllowedClockSkew(cfg.ClockSkew)}

	if cfg.SkipVerify {
		if format == statuslist.FormatCWT {
			return status.NewCWTTokenGetter(fetcher, api.Ignore{}, opts...)
		}

		return status.NewJWTTokenGetter(fetcher, api.Ignore{}, opts...)
	}

	if cfg.Key == "" {
		return nil, fmt.Errorf("--%s is required unless --%s is set", keyFlag, skipVerifyFlag)
	}

	key, err := loadPublicKey(cfg.Key)
	if err != nil {
		return nil, err
	}

	if format == statuslist.FormatCWT {
		alg, err := coseAlgorithm(cfg.Alg, key)
		if err != nil {
			return nil, err
		}

		verifier, err := cwt.NewSignatureVerifier(alg, key)
		if err != nil {
			return nil, err
		}

		return status.NewCWTTokenGetter(fetcher, verifier, opts...)
	}

	var algs []jose.SignatureAlgorithm

	if cfg.Alg != "" {
		algs = append(algs, jose.SignatureAlgorithm(cfg.Alg))
	}

	return status.NewJWTTokenGetter(fetcher, jwt.NewSignatureVerifier(key, algs...), opts...)
}
