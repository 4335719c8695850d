package services

import (
	"errors"
	"testing"
)

func TestGetExtensionFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
		wantErr     bool
	}{
		{"image/jpeg", ".jpg", false},
		{"image/jpg", ".jpg", false},
		{"image/png", ".png", false},
		{"image/gif", ".gif", false},
		{"image/webp", ".webp", false},
		{"image/svg+xml", ".svg", false},
		{"application/pdf", "", true},
		{"text/plain", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := GetExtensionFromContentType(tt.contentType)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GetExtensionFromContentType(%q): expected error, got %q", tt.contentType, got)
			} else if !errors.Is(err, ErrUnsupportedImageType) {
				t.Errorf("GetExtensionFromContentType(%q): error %v is not ErrUnsupportedImageType", tt.contentType, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetExtensionFromContentType(%q): unexpected error %v", tt.contentType, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GetExtensionFromContentType(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}
