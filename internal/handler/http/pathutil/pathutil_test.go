package pathutil

import (
	"errors"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    string
		wantErr bool
	}{
		{
			name:   "article id",
			path:   "/articles/665f1c2ab7e1d80012345678",
			prefix: "/articles/",
			want:   "665f1c2ab7e1d80012345678",
		},
		{
			name:   "category value",
			path:   "/articles/category/Health",
			prefix: "/articles/category/",
			want:   "Health",
		},
		{
			name:    "empty segment",
			path:    "/articles/",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "nested segment",
			path:    "/articles/abc/def",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "prefix missing",
			path:    "/sources/1",
			prefix:  "/articles/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.path, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Fatalf("Segment() error = %v, want ErrInvalidPath", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Segment() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Segment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/articles/665f1c2ab7e1d80012345678", "/articles/:id"},
		{"/articles/665F1C2AB7E1D80012345678", "/articles/:id"},
		{"/articles/not-a-real-id", "/articles/:id"},
		{"/articles/category/Technology", "/articles/category/:category"},
		{"/articles/category/Saúde", "/articles/category/:category"},
		{"/articles", "/articles"},
		{"/articles/665f1c2ab7e1d80012345678/", "/articles/:id"},
		{"/articles/665f1c2ab7e1d80012345678?full=1", "/articles/:id"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/unknown/deep/path", "/unknown/deep/path"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
