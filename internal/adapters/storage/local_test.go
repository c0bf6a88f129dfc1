package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalServiceStoreAndRemove(t *testing.T) {
	svc, err := NewLocalService(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	ctx := context.Background()
	if err := svc.EnsureBucketExists(ctx, "label-uploads"); err != nil {
		t.Fatalf("failed to ensure bucket: %v", err)
	}

	key, err := svc.StoreUpload(ctx, "label-uploads", "photo.jpg", "image/jpeg", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("failed to store upload: %v", err)
	}
	if filepath.Ext(key) != ".jpg" {
		t.Fatalf("expected key to keep the extension, got %q", key)
	}

	stored := filepath.Join(svc.dir, "label-uploads", key)
	if _, err := os.Stat(stored); err != nil {
		t.Fatalf("staged file missing: %v", err)
	}

	if err := svc.Remove(ctx, "label-uploads", key); err != nil {
		t.Fatalf("failed to remove upload: %v", err)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Fatalf("staged file should be gone, stat said: %v", err)
	}
}

func TestLocalServiceUniqueKeysPerUpload(t *testing.T) {
	svc, err := NewLocalService(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	ctx := context.Background()
	first, err := svc.StoreUpload(ctx, "b", "same.png", "image/png", []byte{1})
	if err != nil {
		t.Fatalf("first store failed: %v", err)
	}
	second, err := svc.StoreUpload(ctx, "b", "same.png", "image/png", []byte{2})
	if err != nil {
		t.Fatalf("second store failed: %v", err)
	}

	if first == second {
		t.Fatalf("identical filenames must not collide, both got %q", first)
	}
}

func TestValidateContentType(t *testing.T) {
	cases := []struct {
		contentType string
		wantErr     bool
	}{
		{contentType: "image/jpeg", wantErr: false},
		{contentType: "IMAGE/PNG", wantErr: false},
		{contentType: "image/webp; charset=binary", wantErr: false},
		{contentType: "application/pdf", wantErr: true},
		{contentType: "text/html", wantErr: true},
		{contentType: "", wantErr: true},
	}

	for _, tc := range cases {
		err := validateContentType(tc.contentType)
		if tc.wantErr && err == nil {
			t.Fatalf("%q: expected rejection", tc.contentType)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%q: unexpected rejection: %v", tc.contentType, err)
		}
	}
}

func TestValidateFileSize(t *testing.T) {
	const limit = 1024

	if err := validateFileSize(512, limit); err != nil {
		t.Fatalf("size within limit rejected: %v", err)
	}
	if err := validateFileSize(limit, limit); err != nil {
		t.Fatalf("size at limit rejected: %v", err)
	}
	if err := validateFileSize(limit+1, limit); err == nil {
		t.Fatalf("oversized upload accepted")
	}
	if err := validateFileSize(0, limit); err == nil {
		t.Fatalf("empty upload accepted")
	}
}
