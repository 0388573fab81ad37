package flow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeConfig is the registry entry for one node type: display metadata plus
// behavioral flags. Style fields are hints consumed by the presentation layer;
// the core never renders anything.
type NodeConfig struct {
	Type         FlowNodeType `yaml:"type"`
	Label        string       `yaml:"label"`
	Description  string       `yaml:"description"`
	BgColor      string       `yaml:"bg_color"`
	TextColor    string       `yaml:"text_color"`
	HoverBgColor string       `yaml:"hover_bg_color"`
	Icon         string       `yaml:"icon"`
	IconColor    string       `yaml:"icon_color"`
	HasModal     bool         `yaml:"has_modal"`
}

// Registry is the static catalog of node type metadata. Lookup is total over
// the closed enumeration; callers validate raw strings with ValidateNodeType
// before reaching it.
type Registry struct {
	configs map[FlowNodeType]NodeConfig
}

// NewRegistry creates a registry seeded with the default catalog.
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[FlowNodeType]NodeConfig, len(nodeTypeOrder))}
	for _, cfg := range defaultConfigs() {
		r.configs[cfg.Type] = cfg
	}
	return r
}

func defaultConfigs() []NodeConfig {
	return []NodeConfig{
		{
			Type:         NodeInput,
			Label:        "API Endpoint",
			Description:  "Receive data from an external source",
			BgColor:      "#dcfce7",
			TextColor:    "#166534",
			HoverBgColor: "#bbf7d0",
			Icon:         "download",
			IconColor:    "#16a34a",
			HasModal:     true,
		},
		{
			Type:         NodeDefault,
			Label:        "Process",
			Description:  "Transform and process data",
			BgColor:      "#fce7f3",
			TextColor:    "#9d174d",
			HoverBgColor: "#fbcfe8",
			Icon:         "cpu",
			IconColor:    "#db2777",
			HasModal:     true,
		},
		{
			Type:         NodeOutput,
			Label:        "Webhook",
			Description:  "Send data to an external destination",
			BgColor:      "#f3e8ff",
			TextColor:    "#6b21a8",
			HoverBgColor: "#e9d5ff",
			Icon:         "upload",
			IconColor:    "#9333ea",
			HasModal:     true,
		},
		{
			Type:         NodeApproval,
			Label:        "Approval",
			Description:  "Request sign-off from designated approvers",
			BgColor:      "#ffe4e6",
			TextColor:    "#9f1239",
			HoverBgColor: "#fecdd3",
			Icon:         "check-circle",
			IconColor:    "#ba2a5c",
			HasModal:     true,
		},
		{
			Type:         NodeEmail,
			Label:        "Email",
			Description:  "Compose an email notification",
			BgColor:      "#ede9fe",
			TextColor:    "#5b21b6",
			HoverBgColor: "#ddd6fe",
			Icon:         "mail",
			IconColor:    "#9333ea",
			HasModal:     true,
		},
		{
			Type:         NodeSign,
			Label:        "Signature",
			Description:  "Collect an electronic signature",
			BgColor:      "#e0e7ff",
			TextColor:    "#3730a3",
			HoverBgColor: "#c7d2fe",
			Icon:         "pen-tool",
			IconColor:    "#4f46e5",
			HasModal:     true,
		},
		{
			Type:         NodeTeamApproval,
			Label:        "Team Approval",
			Description:  "Route to a team for approval or denial",
			BgColor:      "#ccfbf1",
			TextColor:    "#115e59",
			HoverBgColor: "#99f6e4",
			Icon:         "users",
			IconColor:    "#14b8a6",
			HasModal:     true,
		},
		{
			Type:         NodeCondition,
			Label:        "Condition",
			Description:  "Branch the flow on a condition",
			BgColor:      "#fef9c3",
			TextColor:    "#854d0e",
			HoverBgColor: "#fef08a",
			Icon:         "help-circle",
			IconColor:    "#ca8a04",
			HasModal:     true,
		},
		{
			Type:         NodeBranch,
			Label:        "Branch",
			Description:  "Split the flow into named branches",
			BgColor:      "#ede9fe",
			TextColor:    "#5b21b6",
			HoverBgColor: "#ddd6fe",
			Icon:         "git-branch",
			IconColor:    "#8b5cf6",
			HasModal:     true,
		},
		{
			Type:         NodePDF,
			Label:        "Generate PDF",
			Description:  "Export a flow summary document",
			BgColor:      "#fee2e2",
			TextColor:    "#991b1b",
			HoverBgColor: "#fecaca",
			Icon:         "file-text",
			IconColor:    "#dc2626",
			HasModal:     true,
		},
	}
}

// Lookup returns the config for a node type. Total over the closed
// enumeration; an unvalidated type yields the zero config.
func (r *Registry) Lookup(t FlowNodeType) NodeConfig {
	return r.configs[t]
}

// HasModal reports whether clicking a node of this type opens a
// configuration dialog.
func (r *Registry) HasModal(t FlowNodeType) bool {
	return r.configs[t].HasModal
}

// Configs returns the catalog in palette display order.
func (r *Registry) Configs() []NodeConfig {
	out := make([]NodeConfig, 0, len(nodeTypeOrder))
	for _, t := range nodeTypeOrder {
		out = append(out, r.configs[t])
	}
	return out
}

// displayOverride is one entry of a registry override file. Only display
// text may be overridden; types and behavioral flags are fixed.
type displayOverride struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// ApplyOverrideFile merges a YAML file of per-type display overrides into the
// catalog. Unknown type keys are rejected.
func (r *Registry) ApplyOverrideFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read registry overrides: %w", err)
	}
	return r.applyOverrides(data)
}

func (r *Registry) applyOverrides(data []byte) error {
	overrides := make(map[string]displayOverride)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse registry overrides: %w", err)
	}

	for key, o := range overrides {
		if !ValidateNodeType(key) {
			return fmt.Errorf("registry override for unknown node type: %s", key)
		}
		cfg := r.configs[FlowNodeType(key)]
		if o.Label != "" {
			cfg.Label = o.Label
		}
		if o.Description != "" {
			cfg.Description = o.Description
		}
		r.configs[FlowNodeType(key)] = cfg
	}
	return nil
}

// TypeColor returns the display color associated with a node type, used by
// the minimap and canvas renderer.
func TypeColor(t FlowNodeType) string {
	switch t {
	case NodeInput:
		return "#6ede87"
	case NodeOutput:
		return "#d1a4e8"
	case NodeDefault:
		return "#ff0072"
	case NodeApproval:
		return "#ba2a5c"
	case NodeBranch:
		return "#8b5cf6"
	case NodeEmail:
		return "#9333ea"
	case NodeSign:
		return "#4f46e5"
	case NodeTeamApproval:
		return "#14b8a6"
	default:
		return "#d3d3d3"
	}
}
