package verify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cinderworks/solgen/internal/registry"
	"github.com/cinderworks/solgen/internal/scaffold"
)

// writeProject lays out a project directory containing exactly the named
// artifacts.
func writeProject(t *testing.T, base, name string, artifacts map[Artifact]bool) {
	t.Helper()
	dir := filepath.Join(base, name)

	files := map[Artifact]string{
		ArtifactContract:      filepath.Join("contracts", "Example.sol"),
		ArtifactTest:          filepath.Join("test", "Example.test.ts"),
		ArtifactReadme:        "README.md",
		ArtifactPackageJSON:   "package.json",
		ArtifactHardhatConfig: "hardhat.config.ts",
		ArtifactTSConfig:      "tsconfig.json",
		ArtifactDeployScript:  filepath.Join("scripts", "deploy.ts"),
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for artifact, rel := range files {
		if !artifacts[artifact] {
			continue
		}
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// fullSet returns an artifact map with every artifact present.
func fullSet() map[Artifact]bool {
	m := make(map[Artifact]bool, len(AllArtifacts))
	for _, a := range AllArtifacts {
		m[a] = true
	}
	return m
}

func TestRunCompleteAndIncomplete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProject(t, dir, "good", fullSet())

	partial := fullSet()
	partial[ArtifactTest] = false
	partial[ArtifactTSConfig] = false
	writeProject(t, dir, "bad", partial)

	runner := &Runner{Dir: dir}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(summary.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(summary.Records))
	}
	// Lexicographic: bad before good.
	if summary.Records[0].Name != "bad" || summary.Records[0].Complete {
		t.Errorf("record[0] = %+v, want incomplete bad", summary.Records[0])
	}
	if summary.Records[1].Name != "good" || !summary.Records[1].Complete {
		t.Errorf("record[1] = %+v, want complete good", summary.Records[1])
	}
	if summary.CompleteCount != 1 || summary.AllComplete {
		t.Errorf("summary = %+v, want 1 complete, not all", summary)
	}
	if summary.ArtifactTally[ArtifactTest] != 1 {
		t.Errorf("test tally = %d, want 1", summary.ArtifactTally[ArtifactTest])
	}
	if summary.ArtifactTally[ArtifactContract] != 2 {
		t.Errorf("contract tally = %d, want 2", summary.ArtifactTally[ArtifactContract])
	}
}

func TestRunDeployOptionalByDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	noDeploy := fullSet()
	noDeploy[ArtifactDeployScript] = false
	writeProject(t, dir, "nodep", noDeploy)

	summary, err := (&Runner{Dir: dir}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !summary.Records[0].Complete {
		t.Error("project without deploy script should be complete when deploy is optional")
	}

	strict, err := (&Runner{Dir: dir, RequireDeploy: true}).Run(context.Background())
	if err != nil {
		t.Fatalf("strict run: %v", err)
	}
	if strict.Records[0].Complete {
		t.Error("project without deploy script should be incomplete when deploy is required")
	}
}

func TestRunDiscoversNestedCategoryLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProject(t, filepath.Join(dir, "basic"), "counter", fullSet())
	writeProject(t, filepath.Join(dir, "basic"), "arithmetic", fullSet())
	// Root-level index file must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "EXAMPLES_INDEX.md"), []byte("#"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	summary, err := (&Runner{Dir: dir}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(summary.Records) != 2 {
		t.Fatalf("records = %+v, want 2 nested projects", summary.Records)
	}
	if summary.Records[0].Name != "basic/arithmetic" || summary.Records[1].Name != "basic/counter" {
		t.Errorf("names = %s, %s", summary.Records[0].Name, summary.Records[1].Name)
	}
}

func TestRunEmptyDirNotAllComplete(t *testing.T) {
	t.Parallel()

	summary, err := (&Runner{Dir: t.TempDir()}).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.AllComplete {
		t.Error("empty directory must not report all complete")
	}
}

func TestRunMissingDir(t *testing.T) {
	t.Parallel()

	if _, err := (&Runner{Dir: filepath.Join(t.TempDir(), "absent")}).Run(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

// sequentialTool records invocation order and fails for configured projects.
type sequentialTool struct {
	calls    []string
	failFor  map[string]bool
	parallel bool
	inFlight int
}

func (s *sequentialTool) Compile(_ context.Context, dir string) error {
	return s.record("compile", dir)
}

func (s *sequentialTool) Test(_ context.Context, dir string) error {
	return s.record("test", dir)
}

func (s *sequentialTool) record(phase, dir string) error {
	s.inFlight++
	if s.inFlight > 1 {
		s.parallel = true
	}
	s.calls = append(s.calls, phase+":"+filepath.Base(dir))
	s.inFlight--
	if s.failFor[filepath.Base(dir)] {
		return errors.New("boom")
	}
	return nil
}

func TestRunCompileAndTestSequential(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProject(t, dir, "alpha", fullSet())
	writeProject(t, dir, "beta", fullSet())

	tool := &sequentialTool{failFor: map[string]bool{"beta": true}}
	runner := &Runner{Dir: dir, Build: tool, Compile: true, Test: true}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{"compile:alpha", "test:alpha", "compile:beta", "test:beta"}
	if len(tool.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", tool.calls, want)
	}
	for i := range want {
		if tool.calls[i] != want[i] {
			t.Errorf("call[%d] = %s, want %s", i, tool.calls[i], want[i])
		}
	}
	if tool.parallel {
		t.Error("build tool invoked concurrently")
	}

	alpha, beta := summary.Records[0], summary.Records[1]
	if alpha.CompileOK == nil || !*alpha.CompileOK || alpha.TestOK == nil || !*alpha.TestOK {
		t.Errorf("alpha phases = %+v, want pass", alpha)
	}
	if beta.CompileOK == nil || *beta.CompileOK {
		t.Errorf("beta compile = %+v, want fail recorded", beta.CompileOK)
	}
}

func TestGenerateThenVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	engine := scaffold.New(registry.Default(), out)
	if _, err := engine.GenerateAll(); err != nil {
		t.Fatalf("generate all: %v", err)
	}

	summary, err := (&Runner{Dir: out, RequireDeploy: true}).Run(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !summary.AllComplete {
		for _, r := range summary.Records {
			if !r.Complete {
				t.Errorf("incomplete project %s: %+v", r.Name, r.Artifacts)
			}
		}
		t.Fatal("generated projects failed verification")
	}
	if len(summary.Records) == 0 {
		t.Fatal("no projects discovered after GenerateAll")
	}
}
