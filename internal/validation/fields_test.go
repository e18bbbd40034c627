package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "jan.kowalski@gmail.com", "x+tag@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, IsEmailValid(email), "expected %q to be valid", email)
	}

	invalid := []string{"a@b", "a.com", "", "a b@c.co", "a@b c.co", "@b.co"}
	for _, email := range invalid {
		assert.False(t, IsEmailValid(email), "expected %q to be invalid", email)
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	t.Run("no uppercase or special fails", func(t *testing.T) {
		t.Parallel()
		c := CheckPassword("abc123")
		assert.True(t, c.MinLength)
		assert.False(t, c.Uppercase)
		assert.True(t, c.Digit)
		assert.False(t, c.Special)
		assert.False(t, c.OK())
	})

	t.Run("all conditions pass", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsPasswordValid("Abc123!"))
	})

	t.Run("no lowercase still passes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsPasswordValid("ABC123!"))
	})

	t.Run("too short fails on length only", func(t *testing.T) {
		t.Parallel()
		c := CheckPassword("Ab1!")
		assert.False(t, c.MinLength)
		assert.True(t, c.Uppercase)
		assert.True(t, c.Digit)
		assert.True(t, c.Special)
		assert.False(t, c.OK())
	})

	t.Run("empty fails everything", func(t *testing.T) {
		t.Parallel()
		c := CheckPassword("")
		assert.Equal(t, PasswordChecklist{}, c)
	})
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("Abc123!"))
	assert.Error(t, ValidatePassword("abc123"))
	assert.Error(t, ValidatePassword("Ab1!"))
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateUsername("anna_b"))
	assert.NoError(t, ValidateUsername("jan-kowalski"))
	assert.Error(t, ValidateUsername("ab"), "too short")
	assert.Error(t, ValidateUsername("_anna"), "leading underscore")
	assert.Error(t, ValidateUsername("anna-"), "trailing hyphen")
	assert.Error(t, ValidateUsername("anna b"), "whitespace")
}
