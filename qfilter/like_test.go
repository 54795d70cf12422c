/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qfilter

import "testing"

func TestLikeMatchesEveryStringWithBarePercent(t *testing.T) {
	// "%" matches every non-null string
	var plan, err = compileLike("%", 0, false, false)
	if err != nil {
		t.Fatalf("compileLike: %v", err)
	}
	for _, s := range []string{"", "a", "anything at all"} {
		if !plan.match(s) {
			t.Errorf("pattern %% must match %q", s)
		}
	}
}

func TestLikeUnderscoreMatchesExactlyOneChar(t *testing.T) {
	// Da_iD against David/DaviD/dave/Davis, case-sensitive.
	var plan, err = compileLike("Da_iD", 0, false, false)
	if err != nil {
		t.Fatalf("compileLike: %v", err)
	}
	var cases = map[string]bool{
		"David": false, // final 'd' fails to match literal 'D'
		"DaviD": true,  // '_' matches 'v', final 'D' matches
		"dave":  false, // wrong length
		"Davis": false, // final 's' fails to match literal 'D'
	}
	for s, want := range cases {
		if got := plan.match(s); got != want {
			t.Errorf("match(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestLikeLeadingAndTrailingWildcard(t *testing.T) {
	var plan, err = compileLike("%lar%", 0, false, false)
	if err != nil {
		t.Fatalf("compileLike: %v", err)
	}
	if plan.match("Larry") {
		t.Error("case-sensitive %lar% must not match Larry (capital L)")
	}
	if !plan.match("polarity") {
		t.Error("%lar% must match polarity (contains lar)")
	}
}

func TestLikeIgnoreCaseFoldsBothSides(t *testing.T) {
	var plan, err = compileLike("DAVID", 0, false, true)
	if err != nil {
		t.Fatalf("compileLike: %v", err)
	}
	if !plan.match("david") || !plan.match("David") {
		t.Error("ignore_case must fold both pattern and candidate")
	}
}

func TestLikeEscapeLiteralizesWildcard(t *testing.T) {
	var plan, err = compileLike(`100\%`, '\\', true, false)
	if err != nil {
		t.Fatalf("compileLike: %v", err)
	}
	if !plan.match("100%") {
		t.Error(`100\%% must match the literal string "100%"`)
	}
	if plan.match("100x") {
		t.Error(`escaped %% must not behave as a wildcard`)
	}
	if !plan.isLiteral || plan.literal != "100%" {
		t.Errorf("fully-escaped pattern must be detected literal, got isLiteral=%v literal=%q", plan.isLiteral, plan.literal)
	}
}

func TestLikeDanglingEscapeIsInvalid(t *testing.T) {
	if _, err := compileLike(`abc\`, '\\', true, false); err == nil {
		t.Error("a pattern ending in a dangling escape must fail to compile")
	}
}
