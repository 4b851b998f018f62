package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"s3cret!pass", true},
		{"longenoughpass", false},
		{"sh0rt!", false},
		{"", false},
		{"12345678", false},
		{"12345678!", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPassword(tt.password), tt.password)
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{"consumer", "shipper", "business", "verifier"} {
		assert.True(t, ValidRole(role), role)
	}
	// Admin accounts come from the seed tool, never from registration.
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
