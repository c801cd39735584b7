package errcode

import "testing"

func TestExplain_KnownCode(t *testing.T) {
	exp, ok := Explain("SH-4021")
	if !ok {
		t.Fatal("Explain(SH-4021) ok = false, want true")
	}
	if exp.Summary == "" || exp.Hint == "" {
		t.Fatalf("Explain(SH-4021) = %+v, want summary and hint", exp)
	}
}

func TestExplain_Normalizes(t *testing.T) {
	exp, ok := Explain("  sh-4021 ")
	if !ok {
		t.Fatal("Explain should match case-insensitively with surrounding space")
	}
	want, _ := Explain("SH-4021")
	if exp != want {
		t.Fatalf("normalized lookup = %+v, want %+v", exp, want)
	}
}

func TestExplain_UnknownCode(t *testing.T) {
	if _, ok := Explain("SH-9999"); ok {
		t.Fatal("Explain(SH-9999) ok = true, want false")
	}
	if _, ok := Explain(""); ok {
		t.Fatal("Explain(\"\") ok = true, want false")
	}
}

func TestKnown(t *testing.T) {
	if got := Known(); got < 10 {
		t.Fatalf("Known() = %d, want the full embedded table", got)
	}
}
