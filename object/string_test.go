package object

import "testing"

func TestMakeStringEmbStrThreshold(t *testing.T) {
	cases := []struct {
		n       int
		wantEnc Encoding
	}{
		{0, EncEmbStr},
		{EmbStrLimit, EncEmbStr},
		{EmbStrLimit + 1, EncRaw},
		{100, EncRaw},
	}
	for _, c := range cases {
		b := make([]byte, c.n)
		v := MakeString(b)
		if v.Encoding() != c.wantEnc {
			t.Errorf("MakeString(len=%d): got encoding %s, want %s", c.n, v.Encoding().WireName(), c.wantEnc.WireName())
		}
	}
}

func TestMakeStringScenarioS1(t *testing.T) {
	v := MakeString([]byte("hello"))
	if v.Encoding() != EncEmbStr {
		t.Fatalf("expected EmbStr, got %s", v.Encoding().WireName())
	}
	if Length(v) != 5 {
		t.Fatalf("expected length 5, got %d", Length(v))
	}
}

func TestMakeStringScenarioS2(t *testing.T) {
	b := make([]byte, 45)
	for i := range b {
		b[i] = 'a'
	}
	v := MakeString(b)
	if v.Encoding() != EncRaw {
		t.Fatalf("expected Raw, got %s", v.Encoding().WireName())
	}
	v2 := TryEncode(v)
	if v2.Encoding() != EncRaw {
		t.Fatalf("tryEncode of 45-byte non-numeric string should stay Raw, got %s", v2.Encoding().WireName())
	}
}

func TestTryEncodeSharedPromotionScenarioS3(t *testing.T) {
	v := MakeString([]byte("1234"))
	if v.Encoding() != EncEmbStr {
		t.Fatalf("expected EmbStr before tryEncode, got %s", v.Encoding().WireName())
	}
	got := TryEncode(v)
	want, ok := SharedInt(1234)
	if !ok {
		t.Fatal("expected 1234 to be within the shared integer range")
	}
	if got != want {
		t.Fatalf("expected tryEncode to return the shared singleton for 1234 by identity")
	}
	if got.Refcount() != Shared {
		t.Fatalf("expected shared singleton refcount, got %d", got.Refcount())
	}
}

func TestMakeFromIntSharedDedupScenarioS4(t *testing.T) {
	v := MakeFromInt(7)
	w := MakeFromInt(7)
	if v != w {
		t.Fatal("expected identity-equal shared singletons for the same small integer")
	}
	if v.Refcount() != Shared {
		t.Fatalf("expected refcount Shared, got %d", v.Refcount())
	}
	Decr(v) // must be a no-op
	if v.Refcount() != Shared {
		t.Fatalf("Decr on shared value must not change refcount, got %d", v.Refcount())
	}
}

func TestAsIntStrictParsingScenarioS5(t *testing.T) {
	if _, err := AsInt(MakeString([]byte("   42"))); err == nil {
		t.Error("expected error for leading whitespace")
	}
	n, err := AsInt(MakeString([]byte("42")))
	if err != nil || n != 42 {
		t.Errorf("expected 42, got n=%d err=%v", n, err)
	}
	if _, err := AsInt(MakeString([]byte("42x"))); err == nil {
		t.Error("expected error for partial parse")
	}
}

func TestRoundTripMakeFromIntAsInt(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 9999, 10000, -9999999, 1 << 40} {
		v := MakeFromInt(n)
		got, err := AsInt(v)
		if err != nil {
			t.Fatalf("AsInt(%d) returned error: %v", n, err)
		}
		if got != n {
			t.Errorf("round trip mismatch: put %d, got %d", n, got)
		}
	}
}

func TestTryEncodeIdempotence(t *testing.T) {
	inputs := [][]byte{[]byte("hello"), []byte("12345"), make([]byte, 45)}
	for _, in := range inputs {
		v := MakeString(in)
		once := TryEncode(v)
		twice := TryEncode(once)
		if once.Encoding() != twice.Encoding() {
			t.Errorf("tryEncode not idempotent for input %q: %s vs %s", in, once.Encoding().WireName(), twice.Encoding().WireName())
		}
	}
}

func TestEncodingClosure(t *testing.T) {
	values := []*Value{
		MakeString([]byte("x")),
		MakeRaw(make([]byte, 100)),
		MakeFromInt(42),
		CreateList(),
		CreateSet(),
		CreateIntSet(),
		CreateHash(),
		CreateSortedSet(),
		CreateSkipListSortedSet(),
	}
	for _, v := range values {
		assertValid(v.Kind(), v.Encoding()) // panics if invalid
	}
}
