package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Int64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid negative", func(t *testing.T) {
		got, err := Int64ToInt(-42)
		assert.NoError(t, err)
		assert.Equal(t, -42, got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := Int64ToInt(math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})
}

func TestIntToUint64(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint64(123)
		assert.NoError(t, err)
		assert.Equal(t, uint64(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint64(-1)
		assert.Error(t, err)
	})
}

func TestInt64ToUint64(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Int64ToUint64(99)
		assert.NoError(t, err)
		assert.Equal(t, uint64(99), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Int64ToUint64(-5)
		assert.Error(t, err)
	})
}

func TestUint64ToInt64(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Uint64ToInt64(7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt64(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}
