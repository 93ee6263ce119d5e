package generate

import (
	"encoding/json"
	"fmt"

	"commitsync.dev/commitsync/internal/commitconfig"
)

// commitlintConfig mirrors the .commitlintrc.json document. Structs rather
// than maps keep the key order stable across renders.
type commitlintConfig struct {
	Extends []string        `json:"extends"`
	Rules   commitlintRules `json:"rules"`
}

type commitlintRules struct {
	// [severity, applicability, allowed values] per the commitlint rule format
	TypeEnum []interface{} `json:"type-enum"`
}

// CommitlintGenerator renders the commitlint configuration. Every commit
// type participates in the type-enum rule, grouped or not.
type CommitlintGenerator struct{}

// Name implements Generator.
func (CommitlintGenerator) Name() string { return "commitlint" }

// TargetFile implements Generator.
func (CommitlintGenerator) TargetFile() string { return ".commitlintrc.json" }

// Render produces .commitlintrc.json with the conventional-commit preset and
// a type-enum rule listing every type name in source order.
func (CommitlintGenerator) Render(cfg *commitconfig.Config) (string, error) {
	doc := commitlintConfig{
		Extends: []string{"@commitlint/config-conventional"},
		Rules: commitlintRules{
			TypeEnum: []interface{}{2, "always", cfg.TypeNames()},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render .commitlintrc.json: %w", err)
	}

	return string(data) + "\n", nil
}
