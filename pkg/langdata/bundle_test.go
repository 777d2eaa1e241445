package langdata

import "testing"

func TestRegistryHasCoreLanguages(t *testing.T) {
	for _, state := range []int{200, 202, 212, 220} { // Cpp, Js, Python, Go
		if _, ok := Registry[state]; !ok {
			t.Errorf("Registry[%d] missing", state)
		}
	}
}

func TestGoBundleHasFuncKeyword(t *testing.T) {
	b := Registry[220]
	words := b.Keywords['f']
	found := false
	for _, w := range words {
		if w == "func" {
			found = true
		}
	}
	if !found {
		t.Errorf("Go bundle keywords[%q] = %v, want \"func\"", 'f', words)
	}
}
