package charset

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, id := range []string{"UNOA", "UNOB", "UNOC", "unoc", " UNOD ", "UNOW", "UNOY"} {
		t.Run(id, func(t *testing.T) {
			if _, err := Lookup(id); err != nil {
				t.Errorf("Lookup(%q) error = %v", id, err)
			}
		})
	}

	if _, err := Lookup("UNOX"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Lookup(UNOX) error = %v, want ErrUnsupported", err)
	}
	if _, err := Lookup(""); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Lookup(\"\") error = %v, want ErrUnsupported", err)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		id   string
		data []byte
		want string
	}{
		{"ascii", "UNOA", []byte("UNB+UNOA:3'"), "UNB+UNOA:3'"},
		{"latin1 umlaut", "UNOC", []byte{'M', 0xFC, 'l', 'l', 'e', 'r'}, "Müller"},
		{"latin1 sharp s", "UNOC", []byte{'S', 't', 'r', 'a', 0xDF, 'e'}, "Straße"},
		{"latin2", "UNOD", []byte{0xB3, 0xF3, 'd', 0xBC}, "łódź"},
		{"utf8", "UNOW", []byte("Müller"), "Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.id, tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := Decode("XXXX", []byte("a")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Decode(XXXX) error = %v, want ErrUnsupported", err)
	}
}

func TestEncode(t *testing.T) {
	got, err := Encode("UNOC", "Müller")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{'M', 0xFC, 'l', 'l', 'e', 'r'}
	if string(got) != string(want) {
		t.Errorf("Encode() = %v, want %v", got, want)
	}

	if _, err := Encode("UNOC", "日本"); err == nil {
		t.Error("Encode() of characters outside ISO 8859-1 should fail")
	}
}

func TestLatin1(t *testing.T) {
	if got := Latin1([]byte{'U', 'N', 'B', 0xE4}); got != "UNBä" {
		t.Errorf("Latin1() = %q, want %q", got, "UNBä")
	}
}
