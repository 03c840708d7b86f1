package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "text", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "text", "must be provided")
	v.Check(false, "text", "must not be more than 10 characters long")
	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"text": "must be provided"}, v.Errors)
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("redis", "none", "memory", "redis"))
	assert.False(t, PermittedValue("memcached", "none", "memory", "redis"))
}

func TestValidUTF8(t *testing.T) {
	assert.True(t, ValidUTF8("邊度有櫃員機呀"))
	assert.False(t, ValidUTF8("ab\xffcd"))
}

func TestMaxRunes(t *testing.T) {
	assert.True(t, MaxRunes("你好", 2))
	assert.False(t, MaxRunes("你好嗎", 2))
	assert.True(t, MaxRunes("", 0))
}
