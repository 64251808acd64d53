package object

import "testing"

func TestCompareTotalOrderAndEquality(t *testing.T) {
	a := MakeString([]byte("apple"))
	b := MakeString([]byte("banana"))
	c := MakeString([]byte("cherry"))

	if Compare(a, b, CompareBinary) >= 0 {
		t.Error("expected a < b")
	}
	if Compare(b, c, CompareBinary) >= 0 {
		t.Error("expected b < c")
	}
	if Compare(a, c, CompareBinary) >= 0 {
		t.Error("expected transitivity: a < c")
	}

	same := MakeString([]byte("apple"))
	if Compare(a, same, CompareBinary) != 0 {
		t.Error("expected byte-equal strings to compare equal")
	}
	if !Equals(a, same) {
		t.Error("expected Equals to agree with Compare==0")
	}
	if Equals(a, b) {
		t.Error("expected distinct strings to not be equal")
	}
}

func TestEqualsAcrossEncodings(t *testing.T) {
	intForm := MakeFromInt(7)
	stringForm := MakeEmbedded([]byte("7"))
	if !Equals(intForm, stringForm) {
		t.Error("expected logically-equal int and string encodings to compare equal")
	}
}

func TestCheckKindWrongType(t *testing.T) {
	v := CreateList()
	if err := CheckKind(v, KindString); err != ErrWrongType {
		t.Errorf("expected ErrWrongType, got %v", err)
	}
	if err := CheckKind(v, KindList); err != nil {
		t.Errorf("expected nil error for matching kind, got %v", err)
	}
}

func TestSingleElementSetEncodingScenarioS6(t *testing.T) {
	intSet := CreateIntSet()
	intSet.payload.(interface{ Add(int64) bool }).Add(3)
	if Length(intSet) != 1 {
		t.Errorf("expected length 1, got %d", Length(intSet))
	}

	htSet := CreateSet()
	htSet.payload.(interface{ Set(string, []byte) }).Set("not-an-int", nil)
	if Length(htSet) != 1 {
		t.Errorf("expected length 1, got %d", Length(htSet))
	}
}
