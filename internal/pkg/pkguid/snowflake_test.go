package pkguid

import (
	"strconv"
	"testing"
)

func TestGenerateRandomNodeIDRange(t *testing.T) {
	id, err := generateRandomNodeID()
	if err != nil {
		t.Fatalf("generateRandomNodeID: %v", err)
	}
	if id < 0 || id > 1023 {
		t.Fatalf("expected id within 0..1023, got %d", id)
	}
}

func TestSnowflakeGenerateIsNumericAndOrdered(t *testing.T) {
	gen, err := NewSnowflake()
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	first, err := strconv.ParseInt(gen.Generate(), 10, 64)
	if err != nil {
		t.Fatalf("expected numeric id: %v", err)
	}
	second, err := strconv.ParseInt(gen.Generate(), 10, 64)
	if err != nil {
		t.Fatalf("expected numeric id: %v", err)
	}
	if second <= first {
		t.Fatalf("expected increasing ids, got %d then %d", first, second)
	}
}

func TestGeneratorsSatisfyStringID(t *testing.T) {
	gen, err := NewSnowflake()
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	for _, g := range []StringID{gen, NewUUID()} {
		if g.Generate() == "" {
			t.Fatalf("expected non-empty id from %T", g)
		}
	}
}
