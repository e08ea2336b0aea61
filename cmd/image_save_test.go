package cmd

import "testing"

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "png", want: "png"},
		{in: "PNG", want: "png"},
		{in: "jpeg", want: "jpeg"},
		{in: "jpg", want: "jpeg"},
		{in: "JPG", want: "jpeg"},
		{in: "bmp", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := normalizeFormat(tt.in); got != tt.want {
			t.Errorf("normalizeFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "shot.png", want: "png"},
		{target: "/tmp/pic.JPG", want: "jpg"},
		{target: "archive.tar.jpeg", want: "jpeg"},
		{target: "noext", want: ""},
	}

	for _, tt := range tests {
		if got := formatFromExtension(tt.target); got != tt.want {
			t.Errorf("formatFromExtension(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}
