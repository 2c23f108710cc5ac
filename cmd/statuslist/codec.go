/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trustbloc/statuslist-go/status/statuslist"
	"github.com/trustbloc/statuslist-go/util/zlib"
)

const (
	bitsFlag           = "bits"
	aggregationURIFlag = "aggregation-uri"
	indexFlag          = "index"
)

func newEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <v0,v1,...>",
		Short: "Encodes comma separated status values into a status list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := bitsFromFlags(cmd)
			if err != nil {
				return err
			}

			statuses, err := parseStatuses(bits, args[0])
			if err != nil {
				return err
			}

			raw, err := statuslist.Pack(bits, statuses)
			if err != nil {
				return err
			}

			list, err := statuslist.FromRawBytes(cmd.Context(), bits, raw, zlib.New())
			if err != nil {
				return err
			}

			if uri, _ := cmd.Flags().GetString(aggregationURIFlag); uri != "" {
				list = list.WithAggregationURI(uri)
			}

			return printJSON(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().Int(bitsFlag, 1, "Bits per status, one of 1, 2, 4, 8.")
	cmd.Flags().String(aggregationURIFlag, "", "URI of the status list aggregation.")

	return cmd
}

func newDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <lst>",
		Short: "Decodes the lst value of a status list into status values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := bitsFromFlags(cmd)
			if err != nil {
				return err
			}

			list, err := statuslist.FromBase64URL(bits, args[0], "")
			if err != nil {
				return err
			}

			decompressed, err := list.Decompress(cmd.Context(), zlib.New())
			if err != nil {
				return err
			}

			if idx, _ := cmd.Flags().GetInt(indexFlag); idx >= 0 {
				return printStatus(cmd, bits, decompressed, idx)
			}

			n := len(decompressed) * bits.StatusesPerByte()
			views := make([]statusView, 0, n)

			for i := 0; i < n; i++ {
				s, err := readStatus(bits, decompressed, i)
				if err != nil {
					return err
				}

				views = append(views, newStatusView("", i, s))
			}

			return printJSON(cmd.OutOrStdout(), views)
		},
	}

	cmd.Flags().Int(bitsFlag, 1, "Bits per status, one of 1, 2, 4, 8.")
	cmd.Flags().Int(indexFlag, -1, "Only print the status at this index.")

	return cmd
}

func printStatus(cmd *cobra.Command, bits statuslist.BitsPerStatus, decompressed []byte, idx int) error {
	s, err := readStatus(bits, decompressed, idx)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), newStatusView("", idx, s))
}

func readStatus(bits statuslist.BitsPerStatus, decompressed []byte, i int) (statuslist.Status, error) {
	idx, err := statuslist.NewStatusIndex(i)
	if err != nil {
		return 0, err
	}

	return statuslist.ReadStatus(bits, decompressed, idx)
}

func bitsFromFlags(cmd *cobra.Command) (statuslist.BitsPerStatus, error) {
	n, err := cmd.Flags().GetInt(bitsFlag)
	if err != nil {
		return 0, err
	}

	return statuslist.ParseBitsPerStatus(n)
}

func parseStatuses(bits statuslist.BitsPerStatus, values string) ([]statuslist.Status, error) {
	fields := strings.Split(values, ",")
	statuses := make([]statuslist.Status, 0, len(fields))

	for _, field := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid status value '%s': %w", field, err)
		}

		s, err := statuslist.NewStatus(bits, uint8(v))
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, s)
	}

	return statuses, nil
}
