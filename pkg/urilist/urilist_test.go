package urilist

import (
	"reflect"
	"runtime"
	"testing"
)

// skipOnWindows guards tests whose fixtures are POSIX absolute paths.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path fixtures")
	}
}

func TestRoundTrip(t *testing.T) {
	skipOnWindows(t)
	paths := []string{"/tmp/a.txt", "/tmp/b b.txt", "/home/user/äöü.pdf"}

	uris, skipped := ConvertPaths(paths)
	if len(skipped) != 0 {
		t.Fatalf("ConvertPaths skipped %v, want none", skipped)
	}

	got := Parse(Serialize(uris))
	if !reflect.DeepEqual(got, paths) {
		t.Errorf("round trip = %v, want %v", got, paths)
	}
}

func TestSerialize_CRLFTerminators(t *testing.T) {
	got := Serialize([]string{"file:///tmp/a.txt", "file:///tmp/b.txt"})
	want := "file:///tmp/a.txt\r\nfile:///tmp/b.txt\r\n"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}

	if Serialize(nil) != "" {
		t.Errorf("Serialize(nil) = %q, want empty", Serialize(nil))
	}
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	skipOnWindows(t)
	data := "# comment line\r\nfile:///tmp/a.txt\r\n\r\n\rfile:///tmp/b.txt\r\n#file:///tmp/c.txt\r\n"
	got := Parse(data)
	want := []string{"/tmp/a.txt", "/tmp/b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_DropsUnconvertibleEntries(t *testing.T) {
	skipOnWindows(t)
	data := "https://example.com/x\r\nfile:///tmp/a.txt\r\nnot a uri at all :\r\n"
	got := Parse(data)
	want := []string{"/tmp/a.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_PlainPathFallback(t *testing.T) {
	skipOnWindows(t)

	// A paste may negotiate the plain-text target and hand back raw paths
	// instead of the URI list; those must survive the read.
	paths := []string{"/tmp/a.txt", "/tmp/b b.txt"}
	got := Parse(PlainText(paths))
	if !reflect.DeepEqual(got, paths) {
		t.Errorf("Parse(PlainText()) = %v, want %v", got, paths)
	}

	// Relative lines are still dropped.
	got = Parse("relative.txt\n/tmp/a.txt")
	if !reflect.DeepEqual(got, []string{"/tmp/a.txt"}) {
		t.Errorf("Parse() = %v, want [/tmp/a.txt]", got)
	}
}

func TestParse_Empty(t *testing.T) {
	if got := Parse(""); got != nil {
		t.Errorf("Parse(\"\") = %v, want nil", got)
	}
}

func TestToURI_PercentEncoding(t *testing.T) {
	skipOnWindows(t)
	uri, err := ToURI("/tmp/b b.txt")
	if err != nil {
		t.Fatalf("ToURI() returned error: %v", err)
	}
	if uri != "file:///tmp/b%20b.txt" {
		t.Errorf("ToURI() = %q, want %q", uri, "file:///tmp/b%20b.txt")
	}
}

func TestToURI_RejectsRelativePath(t *testing.T) {
	if _, err := ToURI("relative/path.txt"); err == nil {
		t.Error("ToURI() accepted a relative path")
	}
}

func TestToPath(t *testing.T) {
	skipOnWindows(t)
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{name: "plain", uri: "file:///tmp/a.txt", want: "/tmp/a.txt"},
		{name: "percent encoded", uri: "file:///tmp/b%20b.txt", want: "/tmp/b b.txt"},
		{name: "localhost host", uri: "file://localhost/tmp/a.txt", want: "/tmp/a.txt"},
		{name: "remote host", uri: "file://otherhost/tmp/a.txt", wantErr: true},
		{name: "http scheme", uri: "https://example.com/a.txt", wantErr: true},
		{name: "no path", uri: "file://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPath(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ToPath(%q) = %q, want error", tt.uri, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToPath(%q) returned error: %v", tt.uri, err)
			}
			if got != tt.want {
				t.Errorf("ToPath(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}

func TestConvertPaths_ReportsSkipped(t *testing.T) {
	skipOnWindows(t)
	uris, skipped := ConvertPaths([]string{"/tmp/a.txt", "relative.txt", "/tmp/b.txt"})
	if len(uris) != 2 {
		t.Errorf("ConvertPaths uris = %v, want 2 entries", uris)
	}
	if !reflect.DeepEqual(skipped, []string{"relative.txt"}) {
		t.Errorf("ConvertPaths skipped = %v, want [relative.txt]", skipped)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText([]string{"/tmp/a.txt", "/tmp/b.txt"})
	want := "/tmp/a.txt\n/tmp/b.txt"
	if got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}
