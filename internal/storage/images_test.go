package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// uploadedFile builds a multipart file header the way the HTTP layer hands
// it to the store.
func uploadedFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() unexpected error: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm() unexpected error: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	header := form.File["image"][0]
	file, err := header.Open()
	if err != nil {
		t.Fatalf("opening form file: %v", err)
	}
	t.Cleanup(func() { file.Close() })

	return file, header
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir)

	content := []byte("fake image bytes")
	file, header := uploadedFile(t, "choco-dream.jpg", content)

	url, err := store.Save(file, header)
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if !strings.HasPrefix(url, "uploads/") {
		t.Errorf("Save() url = %q, want uploads/ prefix", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("Save() url = %q, want .jpg suffix", url)
	}

	written, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "uploads/")))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !bytes.Equal(written, content) {
		t.Error("saved file content differs from upload")
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := NewImageStore(t.TempDir())

	file1, header1 := uploadedFile(t, "cake.png", []byte("one"))
	file2, header2 := uploadedFile(t, "cake.png", []byte("two"))

	url1, err := store.Save(file1, header1)
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	url2, err := store.Save(file2, header2)
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if url1 == url2 {
		t.Errorf("Save() reused name %q for two uploads", url1)
	}
}

func TestSaveUnsupportedType(t *testing.T) {
	store := NewImageStore(t.TempDir())

	for _, name := range []string{"malware.exe", "notes.txt", "noextension", "cake.jpg.svg"} {
		file, header := uploadedFile(t, name, []byte("payload"))
		if _, err := store.Save(file, header); !errors.Is(err, ErrUnsupportedImageType) {
			t.Errorf("Save(%q) error = %v, want ErrUnsupportedImageType", name, err)
		}
	}
}
