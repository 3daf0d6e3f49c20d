package mdsections_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-mdsections"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := mdsections.DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestConfigValidateDatabaseRequiresDSN(t *testing.T) {
	cfg := mdsections.DefaultConfig()
	cfg.Storage.Provider = mdsections.StoragePostgres

	if err := cfg.Validate(); !errors.Is(err, mdsections.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestConfigValidateRenderExtensionUnknown(t *testing.T) {
	cfg := mdsections.DefaultConfig()
	cfg.Render.Extensions = []string{"mermaid"}

	if err := cfg.Validate(); !errors.Is(err, mdsections.ErrRenderExtensionUnknown) {
		t.Fatalf("expected ErrRenderExtensionUnknown, got %v", err)
	}
}
