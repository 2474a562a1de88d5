package stringutils

import (
	"sync"
	"testing"
)

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Pikachu", "CHU") {
		t.Error("expected match")
	}
	if ContainsFold("bulbasaur", "chu") {
		t.Error("unexpected match")
	}
	if !ContainsFold("anything", "") {
		t.Error("empty substring always matches")
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold("Fire", "fire") {
		t.Error("expected equal")
	}
	if EqualFold("fire", "fir") {
		t.Error("expected different")
	}
}

func TestReplaceFirstHyphen(t *testing.T) {
	tests := map[string]string{
		"special-attack":   "special attack",
		"hp":               "hp",
		"as-one-glastrier": "as one-glastrier",
	}
	for in, want := range tests {
		if got := ReplaceFirstHyphen(in); got != want {
			t.Errorf("ReplaceFirstHyphen(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLastPathSegmentInt(t *testing.T) {
	tests := []struct {
		url string
		id  int
		ok  bool
	}{
		{"https://pokeapi.co/api/v2/pokemon-species/25/", 25, true},
		{"https://pokeapi.co/api/v2/pokemon-species/172", 172, true},
		{"https://pokeapi.co/api/v2/pokemon-species/pichu/", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		id, ok := LastPathSegmentInt(tt.url)
		if id != tt.id || ok != tt.ok {
			t.Errorf("LastPathSegmentInt(%q) = (%d, %v), want (%d, %v)", tt.url, id, ok, tt.id, tt.ok)
		}
	}
}

func TestFoldingIsSafeAcrossGoroutines(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := []string{"Pikachu", "MR-MIME", "Flabébé", "PORYGON-Z"}[i%4]
			if !ContainsFold(name, name[1:3]) || !EqualFold(name, name) {
				errs <- name
			}
		}()
	}
	wg.Wait()
	close(errs)
	for name := range errs {
		t.Errorf("fold mismatch for %q", name)
	}
}
