package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{"valid", "wifi station", nil},
		{"empty", "", ErrInvalidInput},
		{"whitespace only", "   ", ErrInvalidInput},
		{"too long", strings.Repeat("a", 101), ErrQueryTooLong},
		{"at the limit", strings.Repeat("a", 100), nil},
		{"path traversal", "../../etc/passwd", ErrUnsafeInput},
		{"windows traversal", "..\\secrets", ErrUnsafeInput},
		{"script tag", "<SCRIPT>alert(1)</script>", ErrUnsafeInput},
		{"javascript scheme", "javascript:alert(1)", ErrUnsafeInput},
		{"file scheme", "file:///etc/shadow", ErrUnsafeInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query, 100)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	allowed := []string{".rst", ".md", ".txt"}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"valid rst", "api-reference/wifi.rst", nil},
		{"valid uppercase extension", "README.MD", nil},
		{"empty", "", ErrInvalidInput},
		{"traversal", "../outside.rst", ErrUnsafeInput},
		{"absolute", "/etc/hosts.txt", ErrUnsafeInput},
		{"bad extension", "firmware.bin", ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.path, allowed)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSanitizeComponent(t *testing.T) {
	assert.Equal(t, "esp_wifi", SanitizeComponent("esp_wifi"))
	assert.Equal(t, "esp_wifi_", SanitizeComponent("esp_wifi*"))
	assert.Equal(t, "a_b_c", SanitizeComponent(`a/b\c`))
	assert.Equal(t, "name", SanitizeComponent("name\x00\x1f"))
	assert.Len(t, SanitizeComponent(strings.Repeat("x", 300)), 255)
}

func TestDocTypeForPath(t *testing.T) {
	assert.Equal(t, DocTypeRST, DocTypeForPath("guide/index.rst"))
	assert.Equal(t, DocTypeMarkdown, DocTypeForPath("README.md"))
	assert.Equal(t, DocTypeMarkdown, DocTypeForPath("notes.markdown"))
	assert.Equal(t, DocTypeHTML, DocTypeForPath("page.HTML"))
	assert.Equal(t, DocTypeText, DocTypeForPath("LICENSE"))
}
