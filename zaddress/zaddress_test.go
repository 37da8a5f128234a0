package zaddress_test

import (
	"errors"
	"testing"

	"github.com/tranvictor/zilname/zaddress"
)

// Vectors generated with the Zilliqa reference implementation. The first one
// is the ZNS registry contract itself.
var addressVectors = []struct {
	hex      string
	checksum string
	bech32   string
}{
	{
		hex:      "0x9611c53be6d1b32058b2747bdececed7e1216793",
		checksum: "0x9611c53BE6d1b32058b2747bdeCECed7e1216793",
		bech32:   "zil1jcgu2wlx6xejqk9jw3aaankw6lsjzeunx2j0jz",
	},
	{
		hex:      "0x2d418649c2b7a1f17e8fa873bf0066a1598eedf6",
		checksum: "0x2d418649c2B7a1F17e8fa873BF0066A1598eEdf6",
		bech32:   "zil194qcvjwzk7slzl504pem7qrx59vcam0kkdj9q3",
	},
	{
		hex:      "0xdac22230adfe4601f00631eae92df6d77f054891",
		checksum: "0xdAC22230ADfE4601F00631eaE92Df6D77f054891",
		bech32:   "zil1mtpzyv9dlerqruqxx84wjt0k6als2jy34k0qtk",
	},
}

func TestToBech32(t *testing.T) {
	for _, v := range addressVectors {
		got, err := zaddress.ToBech32(v.hex)
		if err != nil {
			t.Fatalf("ToBech32(%s): unexpected error: %s", v.hex, err)
		}
		if got != v.bech32 {
			t.Errorf("ToBech32(%s): want %s, got %s", v.hex, v.bech32, got)
		}

		// checksummed input encodes the same bytes
		got, err = zaddress.ToBech32(v.checksum)
		if err != nil {
			t.Fatalf("ToBech32(%s): unexpected error: %s", v.checksum, err)
		}
		if got != v.bech32 {
			t.Errorf("ToBech32(%s): want %s, got %s", v.checksum, v.bech32, got)
		}
	}
}

func TestFromBech32(t *testing.T) {
	for _, v := range addressVectors {
		got, err := zaddress.FromBech32(v.bech32)
		if err != nil {
			t.Fatalf("FromBech32(%s): unexpected error: %s", v.bech32, err)
		}
		if got != v.hex {
			t.Errorf("FromBech32(%s): want %s, got %s", v.bech32, v.hex, got)
		}
	}
}

func TestToChecksum(t *testing.T) {
	for _, v := range addressVectors {
		got, err := zaddress.ToChecksum(v.hex)
		if err != nil {
			t.Fatalf("ToChecksum(%s): unexpected error: %s", v.hex, err)
		}
		if got != v.checksum {
			t.Errorf("ToChecksum(%s): want %s, got %s", v.hex, v.checksum, got)
		}
	}
}

func TestToCanonical(t *testing.T) {
	want := "9611c53be6d1b32058b2747bdececed7e1216793"
	inputs := []string{
		"0x9611c53be6d1b32058b2747bdececed7e1216793",
		"0x9611c53BE6d1b32058b2747bdeCECed7e1216793",
		"9611c53BE6d1b32058b2747bdeCECed7e1216793",
		"zil1jcgu2wlx6xejqk9jw3aaankw6lsjzeunx2j0jz",
	}
	for _, input := range inputs {
		got, err := zaddress.ToCanonical(input)
		if err != nil {
			t.Fatalf("ToCanonical(%s): unexpected error: %s", input, err)
		}
		if got != want {
			t.Errorf("ToCanonical(%s): want %s, got %s", input, want, got)
		}
	}
}

func TestMalformedAddresses(t *testing.T) {
	malformed := []string{
		"",
		"0x1234",
		"0x9611c53be6d1b32058b2747bdececed7e12167",     // 38 digits
		"0x9611c53be6d1b32058b2747bdececed7e12167zz",   // non-hex
		"zil1jcgu2wlx6xejqk9jw3aaankw6lsjzeunx2j0jq",   // corrupted bech32 checksum
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",   // wrong prefix
		"zil1pleasepayattentiontothisaddress00000000", // invalid charset
	}
	for _, input := range malformed {
		if _, err := zaddress.ToCanonical(input); !errors.Is(err, zaddress.ErrMalformedAddress) {
			t.Errorf("ToCanonical(%q): want ErrMalformedAddress, got %v", input, err)
		}
	}

	if _, err := zaddress.ToBech32("0xzz"); !errors.Is(err, zaddress.ErrMalformedAddress) {
		t.Errorf("ToBech32(0xzz): want ErrMalformedAddress, got %v", err)
	}
	if _, err := zaddress.ToChecksum("12345"); !errors.Is(err, zaddress.ErrMalformedAddress) {
		t.Errorf("ToChecksum(12345): want ErrMalformedAddress, got %v", err)
	}
	if _, err := zaddress.FromBech32("zil1"); !errors.Is(err, zaddress.ErrMalformedAddress) {
		t.Errorf("FromBech32(zil1): want ErrMalformedAddress, got %v", err)
	}
}

func TestPredicates(t *testing.T) {
	if !zaddress.IsHex("0x9611c53be6d1b32058b2747bdececed7e1216793") {
		t.Errorf("IsHex must accept a 0x hex address")
	}
	if !zaddress.IsHex("9611c53be6d1b32058b2747bdececed7e1216793") {
		t.Errorf("IsHex must accept a bare hex address")
	}
	if zaddress.IsHex("zil1jcgu2wlx6xejqk9jw3aaankw6lsjzeunx2j0jz") {
		t.Errorf("IsHex must reject a bech32 address")
	}
	if !zaddress.IsBech32("zil1jcgu2wlx6xejqk9jw3aaankw6lsjzeunx2j0jz") {
		t.Errorf("IsBech32 must accept a valid zil1 address")
	}
	if zaddress.IsBech32("0x9611c53be6d1b32058b2747bdececed7e1216793") {
		t.Errorf("IsBech32 must reject a hex address")
	}
}

func TestIsZero(t *testing.T) {
	if !zaddress.IsZero("0x0000000000000000000000000000000000000000") {
		t.Errorf("the null address must be zero")
	}
	if !zaddress.IsZero(zaddress.ZeroAddress) {
		t.Errorf("ZeroAddress must be zero")
	}
	if !zaddress.IsZero("") {
		t.Errorf("the empty string stands for an absent address")
	}
	if zaddress.IsZero("0x9611c53be6d1b32058b2747bdececed7e1216793") {
		t.Errorf("a real address must not be zero")
	}
}
