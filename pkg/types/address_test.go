package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// EIP-55 reference checksums.
var checksumVectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestAddress_Checksum(t *testing.T) {
	for _, want := range checksumVectors {
		addr, err := ParseAddress(strings.ToLower(want))
		if err != nil {
			t.Fatalf("ParseAddress error: %v", err)
		}
		if got := addr.String(); got != want {
			t.Errorf("String() = %s, want %s", got, want)
		}
	}
}

func TestParseAddress(t *testing.T) {
	const hexAddr = "9858effd232b4033e47d90003d41ec34ecaeda94"

	withPrefix, err := ParseAddress("0x" + hexAddr)
	if err != nil {
		t.Fatalf("ParseAddress(0x..) error: %v", err)
	}
	bare, err := ParseAddress(hexAddr)
	if err != nil {
		t.Fatalf("ParseAddress error: %v", err)
	}
	if withPrefix != bare {
		t.Error("prefixed and bare forms should parse equal")
	}
	if bare.Hex() != hexAddr {
		t.Errorf("Hex() = %s, want %s", bare.Hex(), hexAddr)
	}

	for _, in := range []string{"", "0x12", "zz58effd232b4033e47d90003d41ec34ecaeda94"} {
		if _, err := ParseAddress(in); err == nil {
			t.Errorf("ParseAddress(%q) should fail", in)
		}
	}
}

func TestAddressFromBytes(t *testing.T) {
	b := bytes.Repeat([]byte{0xab}, AddressSize)
	addr, err := AddressFromBytes(b)
	if err != nil {
		t.Fatalf("AddressFromBytes error: %v", err)
	}
	if !bytes.Equal(addr.Bytes(), b) {
		t.Errorf("Bytes() = %x", addr.Bytes())
	}

	if _, err := AddressFromBytes(b[:19]); err == nil {
		t.Error("expected error for short input")
	}
}

func TestAddress_IsZero(t *testing.T) {
	var zero Address
	if !zero.IsZero() {
		t.Error("zero value should be zero")
	}
	zero[0] = 1
	if zero.IsZero() {
		t.Error("non-zero address reported as zero")
	}
}

func TestAddress_JSON(t *testing.T) {
	addr, err := ParseAddress(strings.ToLower(checksumVectors[0]))
	if err != nil {
		t.Fatalf("ParseAddress error: %v", err)
	}

	data, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"`+checksumVectors[0]+`"` {
		t.Errorf("Marshal = %s", data)
	}

	var back Address
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back != addr {
		t.Error("JSON round trip mismatch")
	}

	if err := json.Unmarshal([]byte(`"0x12"`), &back); err == nil {
		t.Error("expected error for short JSON address")
	}
}
