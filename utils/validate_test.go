package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "alice", NormalizeIdentifier(" Alice "))
	assert.Equal(t, "my-page_1", NormalizeIdentifier("My-Page_1"))
	assert.Equal(t, "", NormalizeIdentifier("   "))
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		wantErr bool
	}{
		{"simple user", "alice", false},
		{"digits allowed", "user123", false},
		{"max length", strings.Repeat("a", 10), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 11), true},
		{"underscore rejected", "abc_def", true},
		{"hyphen rejected", "abc-def", true},
		{"space rejected", "ab cd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePageID(t *testing.T) {
	tests := []struct {
		name    string
		pageID  string
		wantErr bool
	}{
		{"simple page", "home", false},
		{"hyphen and underscore", "my-page_1", false},
		{"mixed case", "My-Page_1", false},
		{"max length", strings.Repeat("p", 50), false},
		{"empty", "", true},
		{"too long", strings.Repeat("p", 51), true},
		{"space rejected", "my page", true},
		{"slash rejected", "a/b", true},
		{"dot rejected", "page.html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageID(tt.pageID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
