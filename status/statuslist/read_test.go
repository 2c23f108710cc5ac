/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func index(t *testing.T, i int) StatusIndex {
	t.Helper()

	idx, err := NewStatusIndex(i)
	require.NoError(t, err)

	return idx
}

func readAll(t *testing.T, bits BitsPerStatus, data []byte, n int) []uint8 {
	t.Helper()

	out := make([]uint8, 0, n)

	for i := 0; i < n; i++ {
		s, err := ReadStatus(bits, data, index(t, i))
		require.NoError(t, err)

		out = append(out, s.Value())
	}

	return out
}

func TestReadStatus(t *testing.T) {
	t.Run("success - one bit", func(t *testing.T) {
		require.Equal(t, []uint8{0, 1, 0, 1, 0, 1, 0, 1}, readAll(t, BitsOne, []byte{0xAA}, 8))
	})

	t.Run("success - two bits", func(t *testing.T) {
		require.Equal(t, []uint8{0, 1, 2, 3}, readAll(t, BitsTwo, []byte{0xE4}, 4))
	})

	t.Run("success - four bits", func(t *testing.T) {
		require.Equal(t, []uint8{0, 15}, readAll(t, BitsFour, []byte{0xF0}, 2))
	})

	t.Run("success - eight bits", func(t *testing.T) {
		require.Equal(t, []uint8{255, 0, 170}, readAll(t, BitsEight, []byte{0xFF, 0x00, 0xAA}, 3))
	})

	t.Run("success - classification", func(t *testing.T) {
		s, err := ReadStatus(BitsOne, []byte{0xAA}, index(t, 1))
		require.NoError(t, err)
		require.Equal(t, StatusInvalid, s)
		require.Equal(t, KindInvalid, s.Kind())

		s, err = ReadStatus(BitsTwo, []byte{0xE4}, index(t, 2))
		require.NoError(t, err)
		require.Equal(t, KindSuspended, s.Kind())
	})

	t.Run("error - out of range", func(t *testing.T) {
		_, err := ReadStatus(BitsOne, []byte{0xAA}, index(t, 8))
		require.ErrorIs(t, err, ErrOutOfRange)

		_, err = ReadStatus(BitsEight, nil, index(t, 0))
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("error - unsupported bits", func(t *testing.T) {
		_, err := ReadStatus(BitsPerStatus(3), []byte{0xAA}, index(t, 0))
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestPositionOf(t *testing.T) {
	b, off := PositionOf(BitsTwo, index(t, 5))
	require.Equal(t, 1, b)
	require.Equal(t, 2, off)

	b, off = PositionOf(BitsEight, index(t, 5))
	require.Equal(t, 5, b)
	require.Equal(t, 0, off)

	t.Run("zero bits per status", func(t *testing.T) {
		var bits BitsPerStatus

		require.NotPanics(t, func() {
			b, off := PositionOf(bits, index(t, 5))
			require.Zero(t, b)
			require.Zero(t, off)
		})
		require.Zero(t, bits.StatusesPerByte())
		require.Zero(t, StatusList{}.Bits().StatusesPerByte())

		_, err := ReadStatus(bits, []byte{0xFF}, index(t, 0))
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestReadStatusByte(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		v, err := ReadStatusByte(BitsFour, 0xF0, 4)
		require.NoError(t, err)
		require.Equal(t, uint8(15), v)
	})

	t.Run("error - bit offset out of range", func(t *testing.T) {
		for _, off := range []int{-1, 8, 100} {
			_, err := ReadStatusByte(BitsOne, 0xFF, off)
			require.ErrorIs(t, err, ErrInvalidArgument)
		}
	})
}

func TestNewStatusIndex(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		idx, err := NewStatusIndex(0)
		require.NoError(t, err)
		require.Equal(t, 0, idx.Value())
	})

	t.Run("error - negative", func(t *testing.T) {
		for _, v := range []int{-1, -1000} {
			_, err := NewStatusIndex(v)
			require.ErrorIs(t, err, ErrInvalidArgument)
		}
	})
}

func TestPack(t *testing.T) {
	for _, bits := range []BitsPerStatus{BitsOne, BitsTwo, BitsFour, BitsEight} {
		statuses := make([]Status, 0, 37)
		for i := 0; i < 37; i++ {
			statuses = append(statuses, Status((i*7)%(int(bits.MaxValue())+1)))
		}

		packed, err := Pack(bits, statuses)
		require.NoError(t, err)
		require.Len(t, packed, (37+bits.StatusesPerByte()-1)/bits.StatusesPerByte())

		for i, want := range statuses {
			got, err := ReadStatus(bits, packed, index(t, i))
			require.NoError(t, err)
			require.Equal(t, want, got, "bits=%d idx=%d", bits, i)
		}
	}

	t.Run("success - known bytes", func(t *testing.T) {
		packed, err := Pack(BitsTwo, []Status{0, 1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, []byte{0xE4}, packed)
	})

	t.Run("error - status too wide", func(t *testing.T) {
		_, err := Pack(BitsOne, []Status{StatusSuspended})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("error - unsupported bits", func(t *testing.T) {
		_, err := Pack(BitsPerStatus(5), nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}
