package verify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Runner verifies the generated projects under Dir. Each discovered project
// yields one Record; compile/test phases, when enabled, run strictly
// sequentially so failures attribute cleanly and external tool caches are
// never contended.
type Runner struct {
	Dir           string
	RequireDeploy bool

	// Build drives the optional compile/test phases. Nil disables both.
	Build BuildTool

	Compile bool
	Test    bool
}

// Run walks Dir, verifies every project, and returns the aggregate summary.
// Only an unreadable Dir is an error; an individual project missing files is
// ordinary data in the summary, not a failure of the run.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	projects, err := r.discoverProjects()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ArtifactTally: make(map[Artifact]int),
		AllComplete:   true,
	}

	for _, p := range projects {
		record := r.verifyProject(p)

		if record.Complete && r.Build != nil {
			if r.Compile {
				ok := r.Build.Compile(ctx, p.dir) == nil
				record.CompileOK = &ok
			}
			if r.Test {
				ok := r.Build.Test(ctx, p.dir) == nil
				record.TestOK = &ok
			}
		}

		summary.Records = append(summary.Records, record)
		for artifact, present := range record.Artifacts {
			if present {
				summary.ArtifactTally[artifact]++
			}
		}
		if record.Complete {
			summary.CompleteCount++
		} else {
			summary.AllComplete = false
		}
	}

	if len(summary.Records) == 0 {
		summary.AllComplete = false
	}
	return summary, nil
}

// project is one discovered project directory.
type project struct {
	name string // display name, category-qualified when nested
	dir  string
}

// discoverProjects returns project directories under Dir in lexicographic
// order. An immediate subdirectory holding a package.json is a project; one
// that instead holds project subdirectories (the generateAll layout, where
// projects nest under category directories) contributes those, one level
// deep.
func (r *Runner) discoverProjects() ([]project, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.Dir, err)
	}

	var projects []project
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(r.Dir, e.Name())
		if fileExists(filepath.Join(dir, "package.json")) {
			projects = append(projects, project{name: e.Name(), dir: dir})
			continue
		}

		nested, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}
		for _, n := range nested {
			if !n.IsDir() {
				continue
			}
			projects = append(projects, project{
				name: e.Name() + "/" + n.Name(),
				dir:  filepath.Join(dir, n.Name()),
			})
		}
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].name < projects[j].name })
	return projects, nil
}

// verifyProject checks one project directory against the artifact checklist.
func (r *Runner) verifyProject(p project) Record {
	record := Record{
		Name: p.name,
		Artifacts: map[Artifact]bool{
			ArtifactContract:      hasFileWithSuffix(filepath.Join(p.dir, "contracts"), ".sol"),
			ArtifactTest:          hasFileWithSuffix(filepath.Join(p.dir, "test"), ".test.ts"),
			ArtifactReadme:        fileExists(filepath.Join(p.dir, "README.md")),
			ArtifactPackageJSON:   fileExists(filepath.Join(p.dir, "package.json")),
			ArtifactHardhatConfig: fileExists(filepath.Join(p.dir, "hardhat.config.ts")),
			ArtifactTSConfig:      fileExists(filepath.Join(p.dir, "tsconfig.json")),
			ArtifactDeployScript:  fileExists(filepath.Join(p.dir, "scripts", "deploy.ts")),
		},
	}

	record.Complete = true
	for _, artifact := range AllArtifacts {
		if artifact == ArtifactDeployScript && !r.RequireDeploy {
			continue
		}
		if !record.Artifacts[artifact] {
			record.Complete = false
		}
	}
	return record
}

// hasFileWithSuffix reports whether dir holds at least one regular file with
// the given suffix.
func hasFileWithSuffix(dir, suffix string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
