package backend_test

import (
	"encoding/hex"
	"slices"
	"testing"

	"github.com/porifera/sponge"
	"github.com/porifera/sponge/abi"
	"github.com/porifera/sponge/backend"
)

func TestBackends_KnownAnswers(t *testing.T) {
	for _, tt := range []struct {
		name  string
		f     backend.Func
		input string
		want  string
	}{
		{
			"sha256 empty",
			backend.SHA256,
			"",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			"sha256 abc",
			backend.SHA256,
			"abc",
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			"keccak256 empty",
			backend.Keccak256,
			"",
			"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			"sha3-256 empty",
			backend.SHA3,
			"",
			"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var out [backend.Size]byte
			if s := tt.f(&out, []byte(tt.input)); s != abi.StatusOK {
				t.Fatalf("status = %v", s)
			}
			if got := hex.EncodeToString(out[:]); got != tt.want {
				t.Errorf("digest = %s, want = %s", got, tt.want)
			}
		})
	}
}

func TestBackends_SwapAtCallSite(t *testing.T) {
	// All backends satisfy the same convention: same input handling, same
	// output size, distinct digests.
	input := []byte("one call site, many backends")
	digests := make(map[[backend.Size]byte]string)

	for _, name := range backend.Names() {
		f, ok := backend.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) missing", name)
		}

		var out [backend.Size]byte
		if s := f(&out, input); s != abi.StatusOK {
			t.Fatalf("%s: status = %v", name, s)
		}
		if prev, collided := digests[out]; collided {
			t.Errorf("backends %q and %q produced identical digests", prev, name)
		}
		digests[out] = name

		if s := f(nil, input); s != abi.StatusNullPointer {
			t.Errorf("%s: nil out status = %v, want = %v", name, s, abi.StatusNullPointer)
		}
	}
}

func TestBackends_AgreeWithLibrary(t *testing.T) {
	input := []byte("backend and library agree")

	var out [backend.Size]byte
	if s := backend.Keccak256(&out, input); s != abi.StatusOK {
		t.Fatal(s)
	}
	if want := sponge.Keccak256(input); out != want {
		t.Errorf("Keccak256 backend = %x, want = %x", out, want)
	}

	if s := backend.SHA3(&out, input); s != abi.StatusOK {
		t.Fatal(s)
	}
	if want := sponge.Sum256(input); out != want {
		t.Errorf("SHA3 backend = %x, want = %x", out, want)
	}
}

func TestBackends_Determinism(t *testing.T) {
	input := []byte("same input, same digest")
	for _, name := range backend.Names() {
		f, _ := backend.Lookup(name)
		var a, b [backend.Size]byte
		f(&a, input)
		f(&b, input)
		if a != b {
			t.Errorf("%s: not deterministic", name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := backend.Lookup("md5"); ok {
		t.Error("Lookup(md5) should not resolve")
	}
}

func TestNames(t *testing.T) {
	want := []string{"blake3-256", "keccak256", "sha256", "sha3-256"}
	if got := backend.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want = %v", got, want)
	}
}
