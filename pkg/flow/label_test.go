package flow

import (
	"strings"
	"testing"
)

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		name     string
		nodeType FlowNodeType
		current  string
		payload  string
		want     string
	}{
		{
			name:     "source field wins regardless of type",
			nodeType: NodeInput,
			current:  "API Endpoint",
			payload:  `{"source":"orders api"}`,
			want:     "Input: ORDERS API",
		},
		{
			name:     "destination field",
			nodeType: NodeOutput,
			current:  "Webhook",
			payload:  `{"destination":"billing"}`,
			want:     "Output: BILLING",
		},
		{
			name:     "approvers joined with comma",
			nodeType: NodeApproval,
			current:  "Approval",
			payload:  `{"approvers":["alice@co.com","bob@co.com"]}`,
			want:     "Approval: alice@co.com, bob@co.com",
		},
		{
			name:     "approvers at exactly forty chars not clipped",
			nodeType: NodeApproval,
			current:  "Approval",
			payload:  `{"approvers":["` + strings.Repeat("a", 40) + `"]}`,
			want:     "Approval: " + strings.Repeat("a", 40),
		},
		{
			name:     "approvers over forty chars clipped with ellipsis",
			nodeType: NodeApproval,
			current:  "Approval",
			payload:  `{"approvers":["` + strings.Repeat("a", 41) + `"]}`,
			want:     "Approval: " + strings.Repeat("a", 40) + "...",
		},
		{
			name:     "approvers ignored on other types",
			nodeType: NodeInput,
			current:  "API Endpoint",
			payload:  `{"approvers":["alice@co.com"]}`,
			want:     "API Endpoint",
		},
		{
			name:     "empty approvers array no match",
			nodeType: NodeApproval,
			current:  "Approval",
			payload:  `{"approvers":[]}`,
			want:     "Approval",
		},
		{
			name:     "email label short still gets ellipsis",
			nodeType: NodeEmail,
			current:  "Email",
			payload:  `{"label":"Weekly digest"}`,
			want:     "Email: Weekly digest...",
		},
		{
			name:     "email label truncated to twenty",
			nodeType: NodeEmail,
			current:  "Email",
			payload:  `{"label":"` + strings.Repeat("x", 25) + `"}`,
			want:     "Email: " + strings.Repeat("x", 20) + "...",
		},
		{
			name:     "signer prefix",
			nodeType: NodeSign,
			current:  "Signature",
			payload:  `{"signer":"Dana Smith"}`,
			want:     "Sign: Dana Smith...",
		},
		{
			name:     "team members joined",
			nodeType: NodeTeamApproval,
			current:  "Team Approval",
			payload:  `{"teamMembers":["ann","ben"]}`,
			want:     "Team Approval: ann, ben",
		},
		{
			name:     "description fallback capitalizes type",
			nodeType: NodeTeamApproval,
			current:  "Team Approval",
			payload:  `{"description":"route to finance"}`,
			want:     "TeamApproval: route to finance...",
		},
		{
			name:     "description truncated to twenty",
			nodeType: NodeDefault,
			current:  "Process",
			payload:  `{"description":"` + strings.Repeat("d", 30) + `"}`,
			want:     "Default: " + strings.Repeat("d", 20) + "...",
		},
		{
			name:     "source outranks description",
			nodeType: NodeInput,
			current:  "API Endpoint",
			payload:  `{"source":"s3","description":"bucket sync"}`,
			want:     "Input: S3",
		},
		{
			name:     "email label outranks description",
			nodeType: NodeEmail,
			current:  "Email",
			payload:  `{"label":"Invoice","description":"send invoice"}`,
			want:     "Email: Invoice...",
		},
		{
			name:     "no matching field leaves label unchanged",
			nodeType: NodeBranch,
			current:  "Branch",
			payload:  `{"branches":[{"id":"1","label":"Branch 1"}]}`,
			want:     "Branch",
		},
		{
			name:     "empty payload unchanged",
			nodeType: NodeInput,
			current:  "API Endpoint",
			payload:  `{}`,
			want:     "API Endpoint",
		},
		{
			name:     "nil payload unchanged",
			nodeType: NodeInput,
			current:  "API Endpoint",
			payload:  "",
			want:     "API Endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveLabel(tt.nodeType, tt.current, []byte(tt.payload))
			if got != tt.want {
				t.Errorf("DeriveLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"teamApproval", "TeamApproval"},
		{"input", "Input"},
		{"", ""},
		{"X", "X"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
