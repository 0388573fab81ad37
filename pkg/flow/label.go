package flow

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// labelContext carries everything a single labeling rule may inspect.
type labelContext struct {
	nodeType FlowNodeType
	current  string
	data     gjson.Result
}

// labelRule pairs a predicate with a formatter. Rules are evaluated in
// priority order and the first match wins.
type labelRule struct {
	match  func(labelContext) bool
	format func(labelContext) string
}

// labelRules is the fixed priority order for deriving a node's display label
// from its saved dialog payload. When no rule matches the label is unchanged.
var labelRules = []labelRule{
	{
		match: func(c labelContext) bool { return c.data.Get("source").String() != "" },
		format: func(c labelContext) string {
			return "Input: " + strings.ToUpper(c.data.Get("source").String())
		},
	},
	{
		match: func(c labelContext) bool { return c.data.Get("destination").String() != "" },
		format: func(c labelContext) string {
			return "Output: " + strings.ToUpper(c.data.Get("destination").String())
		},
	},
	{
		match: func(c labelContext) bool {
			return c.nodeType == NodeApproval && hasElements(c.data.Get("approvers"))
		},
		format: func(c labelContext) string {
			return "Approval: " + clip(joinStrings(c.data.Get("approvers")), 40)
		},
	},
	{
		match: func(c labelContext) bool {
			return c.nodeType == NodeEmail && c.data.Get("label").String() != ""
		},
		format: func(c labelContext) string {
			return "Email: " + prefix(c.data.Get("label").String(), 20) + "..."
		},
	},
	{
		match: func(c labelContext) bool {
			return c.nodeType == NodeSign && c.data.Get("signer").String() != ""
		},
		format: func(c labelContext) string {
			return "Sign: " + prefix(c.data.Get("signer").String(), 20) + "..."
		},
	},
	{
		match: func(c labelContext) bool {
			return c.nodeType == NodeTeamApproval && hasElements(c.data.Get("teamMembers"))
		},
		format: func(c labelContext) string {
			return "Team Approval: " + clip(joinStrings(c.data.Get("teamMembers")), 40)
		},
	},
	{
		match: func(c labelContext) bool { return c.data.Get("description").String() != "" },
		format: func(c labelContext) string {
			return capitalize(string(c.nodeType)) + ": " + prefix(c.data.Get("description").String(), 20) + "..."
		},
	},
}

// DeriveLabel recomputes a node's display label from a saved dialog payload.
// The payload is opaque beyond the fields the rules inspect; current is
// returned unchanged when nothing matches.
func DeriveLabel(nodeType FlowNodeType, current string, modalData json.RawMessage) string {
	ctx := labelContext{
		nodeType: nodeType,
		current:  current,
		data:     gjson.ParseBytes(modalData),
	}
	for _, rule := range labelRules {
		if rule.match(ctx) {
			return rule.format(ctx)
		}
	}
	return current
}

// hasElements reports whether a payload field is a non-empty array.
func hasElements(v gjson.Result) bool {
	return v.IsArray() && len(v.Array()) > 0
}

// joinStrings joins an array payload field with ", ".
func joinStrings(v gjson.Result) string {
	items := v.Array()
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, ", ")
}

// clip truncates s to max bytes, appending an ellipsis only when something
// was cut. A string of exactly max length passes through untouched.
func clip(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// prefix returns at most the first max bytes of s.
func prefix(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// capitalize upper-cases the first character, leaving the rest as-is, so
// "teamApproval" becomes "TeamApproval".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
