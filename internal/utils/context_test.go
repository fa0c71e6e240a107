// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAdminIDCtxKey(t *testing.T) {
	if AdminIDCtxKey.String() != "adminID" {
		t.Errorf("expected 'adminID', got '%s'", AdminIDCtxKey.String())
	}
}

func TestGetAdminIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminIDCtxKey, int64(42))

	adminID, ok := GetAdminIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if adminID != 42 {
		t.Errorf("expected adminID=42, got %d", adminID)
	}
}

func TestGetAdminIDFromContext_Missing(t *testing.T) {
	adminID, ok := GetAdminIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if adminID != 0 {
		t.Errorf("expected adminID=0, got %d", adminID)
	}
}

func TestGetAdminIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminIDCtxKey, "not-an-int")

	_, ok := GetAdminIDFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for mismatched value type")
	}
}
