package analytics

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// defaultRemediationHint is returned for rules without a mapped hint;
// leaderboard entries never carry an empty hint field
const defaultRemediationHint = "Review the affected elements against the rule documentation and apply the suggested fix."

// remediationHints maps rule identifiers to fix guidance. The table is
// static configuration; unmapped lookups fall back to the generic hint.
var remediationHints = map[types.RuleID]string{
	"image-alt":                   "Add descriptive alt text to images, or alt=\"\" for purely decorative ones.",
	"color-contrast":              "Increase the contrast ratio between text and background to at least 4.5:1.",
	"link-name":                   "Give links discernible text; avoid bare icons or \"click here\".",
	"button-name":                 "Ensure every button has an accessible name via text content or aria-label.",
	"label":                       "Associate every form control with a label element or aria-labelledby.",
	"html-has-lang":               "Declare the page language with a lang attribute on the html element.",
	"document-title":              "Provide a concise, unique title element for the page.",
	"heading-order":               "Use heading levels in a strictly descending outline without skips.",
	"landmark-one-main":           "Wrap primary content in a single main landmark.",
	"region":                      "Place all content inside labelled landmark regions.",
	"duplicate-id":                "Make id attributes unique within the page.",
	"aria-required-attr":          "Add the ARIA attributes required by the element's role.",
	"aria-valid-attr-value":       "Correct ARIA attribute values to ones valid for the attribute.",
	"frame-title":                 "Give every iframe a title attribute describing its content.",
	"meta-viewport":               "Remove user-scalable=no and maximum-scale limits from the viewport meta tag.",
	"tabindex":                    "Avoid positive tabindex values; rely on natural DOM order.",
	"list":                        "Ensure ul and ol elements contain only li children.",
	"scrollable-region-focusable": "Make scrollable regions keyboard reachable with tabindex=\"0\".",
}

// RemediationHint returns the fix guidance for a rule, or the generic
// hint when the rule is unmapped
func RemediationHint(ruleID types.RuleID) string {
	if hint, ok := remediationHints[ruleID]; ok {
		return hint
	}
	return defaultRemediationHint
}
