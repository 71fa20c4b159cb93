package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"cxlint/internal/source"
)

func TestAddVirtual(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cpp", []byte("int x;\n"))
	f := fs.Get(id)

	if f.Path != "test.cpp" {
		t.Errorf("Path = %q", f.Path)
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Error("FileVirtual flag not set")
	}
	if string(f.Content) != "int x;\n" {
		t.Errorf("Content = %q", f.Content)
	}

	got, ok := fs.GetByPath("test.cpp")
	if !ok || got.ID != id {
		t.Errorf("GetByPath: ok=%v id=%v", ok, got)
	}
}

func TestLoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.cpp")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFint x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int x;\n" {
		t.Errorf("Content = %q, BOM not stripped", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
}

func TestLoadKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dos.cpp")
	const content = "int a;\r\nint b;\r\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(fs.Get(id).Content) != content {
		t.Error("CRLF content was normalized")
	}
}

func TestResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("pos.cpp", []byte("abc\ndef\nghi\n"))

	tests := []struct {
		off  uint32
		want source.LineCol
	}{
		{0, source.LineCol{Line: 1, Col: 1}},
		{2, source.LineCol{Line: 1, Col: 3}},
		{4, source.LineCol{Line: 2, Col: 1}},
		{9, source.LineCol{Line: 3, Col: 2}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("lines.cpp", []byte("first\nsecond\nlast"))
	f := fs.Get(id)

	tests := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "last"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.num); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 2, End: 5}
	b := source.Span{File: 0, Start: 4, End: 9}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 9 {
		t.Errorf("Cover = [%d,%d), want [2,9)", c.Start, c.End)
	}
}

func TestHashChangesWithContent(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a.cpp", []byte("int x;")))
	b := fs.Get(fs.AddVirtual("b.cpp", []byte("int y;")))
	if a.Hash == b.Hash {
		t.Error("different contents produced the same hash")
	}
}
