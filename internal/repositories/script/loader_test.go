package script

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestNewFileLoader_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewFileLoader did not panic with nil filesystem")
		}
	}()
	_ = NewFileLoader(nil)
}

func TestFileLoader_Lines(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/home/u/.kshrc", []byte("alias g git\r\n\nexport A=1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := afero.WriteFile(fsys, "/empty", nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loader := NewFileLoader(fsys)

	tests := []struct {
		name       string
		path       string
		want       []string
		wantErrIs  error
		wantAnyErr bool
	}{
		{name: "lines without terminators", path: "/home/u/.kshrc", want: []string{"alias g git", "", "export A=1"}},
		{name: "empty file", path: "/empty", want: nil},
		{name: "missing file", path: "/nope", wantErrIs: ErrNotFound, wantAnyErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.Lines(tt.path)
			if (err != nil) != tt.wantAnyErr {
				t.Fatalf("Lines() error = %v, wantErr %v", err, tt.wantAnyErr)
			}
			if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
				t.Errorf("Lines() error = %v, want %v", err, tt.wantErrIs)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRCPath(t *testing.T) {
	tests := []struct {
		home, name, want string
	}{
		{home: "/home/u", name: ".kshrc", want: "/home/u/.kshrc"},
		{home: "", name: ".kshrc", want: ""},
		{home: "/home/u", name: "/etc/kshrc", want: "/etc/kshrc"},
	}
	for _, tt := range tests {
		if got := RCPath(tt.home, tt.name); got != tt.want {
			t.Errorf("RCPath(%q, %q) = %q, want %q", tt.home, tt.name, got, tt.want)
		}
	}
}

func TestFileLoader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	fsys := afero.NewMemMapFs()
	content := "export A=1\n" + long + "\nexport B=2"
	if err := afero.WriteFile(fsys, "/rc", []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := NewFileLoader(fsys).Lines("/rc")
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}
	want := []string{"export A=1", long, "export B=2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() returned %d lines, want %d around a %d byte line", len(got), len(want), len(long))
	}
}
