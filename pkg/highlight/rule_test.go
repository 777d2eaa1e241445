package highlight

import "testing"

func TestRuleFastReject(t *testing.T) {
	always := Rule{}
	if !always.fastReject("anything") {
		t.Error("zero-value ShouldContain should always attempt")
	}

	r := Rule{ShouldContain: [3]string{"- ", "* ", "+ "}}
	if !r.fastReject("- item") {
		t.Error("expected fast-reject to pass on a matching substring")
	}
	if r.fastReject("1. item") {
		t.Error("expected fast-reject to fail without a matching substring")
	}
}
