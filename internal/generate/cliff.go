package generate

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"commitsync.dev/commitsync/internal/commitconfig"
)

//go:embed templates/cliff.toml.tmpl
var cliffTemplateText string

// The body template inside cliff.toml uses Tera's {{ }} syntax, so our own
// delimiters have to stay out of its way.
var cliffTemplate = template.Must(
	template.New("cliff").Delims("[[", "]]").Parse(cliffTemplateText))

// CliffGenerator renders the git-cliff changelog configuration.
type CliffGenerator struct{}

// Name implements Generator.
func (CliffGenerator) Name() string { return "cliff" }

// TargetFile implements Generator.
func (CliffGenerator) TargetFile() string { return "cliff.toml" }

// Render produces cliff.toml: fixed changelog boilerplate plus one commit
// parser rule per grouped type, in source order, terminated by a catch-all
// rule that files everything else under _ignored.
func (CliffGenerator) Render(cfg *commitconfig.Config) (string, error) {
	var rules strings.Builder
	for _, name := range cfg.Types.Keys() {
		tc, _ := cfg.Types.Get(name)
		if !tc.InChangelog() {
			continue
		}
		fmt.Fprintf(&rules, "    { message = %q, group = %q },\n", "^"+name, *tc.ChangelogGroup)
	}
	rules.WriteString(`    { message = ".*", group = "_ignored" },`)

	var buf bytes.Buffer
	err := cliffTemplate.Execute(&buf, map[string]string{
		"Project":       cfg.Project,
		"TagPattern":    cfg.ResolvedTagPattern(),
		"CommitParsers": rules.String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render cliff.toml: %w", err)
	}

	return buf.String(), nil
}
