package wdf

import "testing"

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsText(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii with\ttabs\nand newlines\r\n",
		"unicode héllo wörld ‸",
	}
	for _, input := range inputs {
		if err := ValidateInput([]byte(input)); err != nil {
			t.Fatalf("ValidateInput(%q) = %v, want nil", input, err)
		}
	}
}
