package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumeReturnsEmailOnce(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@b.c", time.Minute)

	assert.Equal(t, "a@b.c", store.Consume("tok"))
	assert.Equal(t, "", store.Consume("tok"))
}

func TestConsumeExpired(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@b.c", -time.Second)

	assert.Equal(t, "", store.Consume("tok"))
}

func TestConsumeUnknown(t *testing.T) {
	store := NewResetTokens()

	assert.Equal(t, "", store.Consume("nope"))
}
