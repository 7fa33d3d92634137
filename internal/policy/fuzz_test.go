//go:build go1.18

package policy

import (
	"testing"

	"github.com/waki285/agent-hooks/internal/hook"
	"github.com/waki285/agent-hooks/internal/types"
)

// FuzzEvaluate drives both decision flows with arbitrary events. The policy
// must never panic and must stay deterministic, whatever the agent sends.
func FuzzEvaluate(f *testing.F) {
	f.Add("Bash", "rm -rf /", "", "")
	f.Add("Bash", "find . -delete", "", "")
	f.Add("Edit", "", "src/main.rs", "#[allow(dead_code)]")
	f.Add("Write", "", "lib.rs", `let s = "#[allow(x)]";`)
	f.Add("", "", "", "")
	f.Add("NotebookEdit", "rm -rf /", "nb.ipynb", "#[allow(x)]")
	f.Add("Bash", "ｒｍ -rf /", "", "")
	f.Add("Edit", "", "a.RS", "r#\"#[allow(\"")

	p, err := New(Config{
		BlockRemove:            true,
		ConfirmDestructiveFind: true,
		DenySuppressions:       true,
		ExemptPaths:            []string{"**/vendor/**"},
	})
	if err != nil {
		f.Fatalf("New: %v", err)
	}

	f.Fuzz(func(t *testing.T, tool, cmd, path, content string) {
		in := &hook.Input{
			ToolName: types.ToolName(tool),
			ToolInput: &hook.ToolInput{
				Command:   cmd,
				FilePath:  path,
				NewString: content,
			},
		}

		v1 := p.CheckCommand(in)
		v2 := p.CheckCommand(in)
		if v1 != v2 {
			t.Errorf("CheckCommand not deterministic for %+v", in)
		}

		c1 := p.CheckContent(in)
		c2 := p.CheckContent(in)
		if c1 != c2 {
			t.Errorf("CheckContent not deterministic for %+v", in)
		}

		if v1.Kind == NoOpinion && v1.Message != "" {
			t.Error("NoOpinion verdict carries a message")
		}
	})
}
