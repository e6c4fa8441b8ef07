package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_SetGet(t *testing.T) {
	s := New(time.Minute, time.Minute)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", []byte("v"))
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)
	assert.Equal(t, 1, s.Len())

	s.Flush()
	assert.Equal(t, 0, s.Len())
}

func TestStore_Expiry(t *testing.T) {
	s := New(20*time.Millisecond, time.Hour)
	s.Set("k", []byte("v"))
	time.Sleep(40 * time.Millisecond)

	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestStore_NilIsNoop(t *testing.T) {
	var s *Store
	s.Set("k", []byte("v"))
	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("text", "hello"), Key("text", "hello"))
	assert.NotEqual(t, Key("text", "hello"), Key("essay", "hello"))
	assert.Contains(t, Key("essay", "x"), "logicheck:v1:essay:")
}
