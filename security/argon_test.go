package security

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	a := New()

	hash, err := a.GenerateFromPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "correct horse")

	ok, err := a.VerifyPasswd("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFreshSaltPerHash(t *testing.T) {
	a := New()

	h1, err := a.GenerateFromPassword("samepassword")
	require.NoError(t, err)

	h2, err := a.GenerateFromPassword("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestWorkFactorsFromConfig(t *testing.T) {
	viper.Set("security.argon.memory_kib", 32*1024)
	viper.Set("security.argon.iterations", 4)
	viper.Set("security.argon.parallelism", 1)

	t.Cleanup(func() {
		viper.Set("security.argon.memory_kib", 0)
		viper.Set("security.argon.iterations", 0)
		viper.Set("security.argon.parallelism", 0)
	})

	a := New()
	assert.EqualValues(t, 32*1024, a.Memory)
	assert.EqualValues(t, 4, a.Iterations)
	assert.EqualValues(t, 1, a.Parallelism)

	hash, err := a.GenerateFromPassword("secret123")
	require.NoError(t, err)
	assert.Contains(t, hash, "m=32768,t=4,p=1")

	// Hashes made with older parameters keep verifying
	old := New()
	old.Memory = 16 * 1024
	oldHash, err := old.GenerateFromPassword("secret123")
	require.NoError(t, err)

	ok, err := a.VerifyPasswd("secret123", oldHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	a := New()

	_, err := a.VerifyPasswd("anything", "not-a-phc-hash")
	assert.Error(t, err)

	_, err = a.VerifyPasswd("anything", "$argon2id$v=19$m=x,t=y,p=z$salt$hash")
	assert.Error(t, err)
}
