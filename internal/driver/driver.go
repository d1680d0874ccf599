// Package driver implements the bounded fix-point orchestration loop that
// runs the text transform catalogue against a strict JSON parse attempt
// until the text validates or a pass budget is exhausted.
package driver

import (
	"fmt"
	"strings"

	"jsonmend/internal/jsonstrict"
	"jsonmend/internal/transform"
)

// DefaultMaxPasses is the pass budget used when a caller doesn't override it.
const DefaultMaxPasses = 6

// Result is the driver's raw outcome, converted by the public jsonmend
// package into its Outcome sum type.
type Result struct {
	Repaired    string
	Parsed      bool
	Canonical   string
	Err         string
	Diagnostics []string
}

// Run executes the full repair pipeline over text: line-ending
// normalization, a pre-pass, up to maxPasses main passes each followed by
// a strict parse attempt, and — on failure — the error-guided recovery
// ladder (T18, then T17, then T19) before moving to the next pass. When
// the text parses, Repaired is its canonical encoding, so running Run
// again over Repaired returns the same Repaired text.
func Run(text string, maxPasses int) Result {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	var diagnostics []string
	record := func(tag string, diags []string) {
		for _, d := range diags {
			diagnostics = append(diagnostics, tag+": "+d)
		}
	}

	var diags []string
	text, diags = transform.LineEndings(text)
	record("pre", diags)

	for _, d := range transform.PrePassCatalogue {
		text, diags = d.Apply(text)
		record("pre", diags)
	}

	for pass := 1; pass <= maxPasses; pass++ {
		tag := fmt.Sprintf("pass%d", pass)

		for _, d := range transform.MainPassCatalogue {
			text, diags = d.Apply(text)
			record(tag, diags)
		}

		v, perr := jsonstrict.Parse(text)
		if perr == nil {
			diagnostics = append(diagnostics, tag+": parsed successfully")
			canonical := jsonstrict.Encode(v)
			return Result{Repaired: canonical, Parsed: true, Canonical: canonical, Diagnostics: diagnostics}
		}
		diagnostics = append(diagnostics, tag+": parse failed: "+perr.Error())

		if recovered, ok := recoverPass(text, perr); ok {
			record(tag, recovered.diags)
			if v, perr := jsonstrict.Parse(recovered.text); perr == nil {
				diagnostics = append(diagnostics, tag+": parsed successfully after recovery")
				canonical := jsonstrict.Encode(v)
				return Result{Repaired: canonical, Parsed: true, Canonical: canonical, Diagnostics: diagnostics}
			}
			text = recovered.text
		}
	}

	v, perr := jsonstrict.Parse(text)
	if perr == nil {
		diagnostics = append(diagnostics, "final: parsed successfully")
		canonical := jsonstrict.Encode(v)
		return Result{Repaired: canonical, Parsed: true, Canonical: canonical, Diagnostics: diagnostics}
	}
	return Result{Repaired: text, Parsed: false, Err: perr.Error(), Diagnostics: append(diagnostics, "final: parse failed: "+perr.Error())}
}

type recovery struct {
	text  string
	diags []string
}

// recoverPass runs the T18 -> T17 -> T19 ladder in order, stopping at the
// first step that changes the text. Every step that fires reruns T5 and
// T13 (falling back to T14 when T13 is a no-op) before the caller's
// reparse attempt, per the driver's recovery contract. ok is false only
// when none of the three steps changed anything, in which case the next
// pass runs against the unmodified text.
func recoverPass(text string, perr *jsonstrict.ParseError) (recovery, bool) {
	if truncated, diags := transform.TruncateAtErrorPosition(text, perr); truncated != text {
		return finishRecoveryStep(truncated, diags)
	}
	if truncated, diags := transform.TruncateGarbageTail(text); truncated != text {
		return finishRecoveryStep(truncated, diags)
	}
	if strings.Contains(perr.Msg, "Expecting ','") || strings.Contains(perr.Msg, "Expecting ':'") {
		if guided, diags := transform.InsertErrorGuidedFix(text, perr); guided != text {
			return finishRecoveryStep(guided, diags)
		}
	}
	return recovery{}, false
}

func finishRecoveryStep(text string, diags []string) (recovery, bool) {
	text, d1 := transform.RemoveTrailingCommas(text)
	diags = append(diags, d1...)
	text, d2 := transform.BalanceBrackets(text)
	diags = append(diags, d2...)
	return recovery{text: text, diags: diags}, true
}
