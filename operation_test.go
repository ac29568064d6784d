package diffbot

import "testing"

func TestOperationPath(t *testing.T) {
	tests := []struct {
		op   Operation
		path string
	}{
		{Analyze, "analyze"},
		{Article, "article"},
		{Frontpage, "frontpage"},
		{Image, "image"},
		{Product, "product"},
		{Discussion, "discussion"},
		{Video, "video"},
		{Search, "search"},
	}
	for _, tt := range tests {
		if got := tt.op.Path(); got != tt.path {
			t.Errorf("Path(%q) = %q, want %q", tt.op, got, tt.path)
		}
	}
}

func TestOperationPathUnmappedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unmapped operation")
		}
	}()
	Operation("frobnicate").Path()
}

func TestOperationIsValid(t *testing.T) {
	if !Article.IsValid() {
		t.Error("expected Article to be valid")
	}
	if Operation("frobnicate").IsValid() {
		t.Error("expected unknown operation to be invalid")
	}
	if Operation("").IsValid() {
		t.Error("expected empty operation to be invalid")
	}
}
