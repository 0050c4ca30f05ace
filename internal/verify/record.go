// Package verify checks generated example projects against the required
// artifact checklist and optionally drives an external build tool over them.
package verify

// Artifact identifies one required (or optional) member of a generated
// project.
type Artifact string

const (
	ArtifactContract      Artifact = "contract"
	ArtifactTest          Artifact = "test"
	ArtifactReadme        Artifact = "readme"
	ArtifactPackageJSON   Artifact = "package.json"
	ArtifactHardhatConfig Artifact = "hardhat.config"
	ArtifactTSConfig      Artifact = "tsconfig"
	ArtifactDeployScript  Artifact = "deploy-script"
)

// AllArtifacts lists every checked artifact in report order.
var AllArtifacts = []Artifact{
	ArtifactContract,
	ArtifactTest,
	ArtifactReadme,
	ArtifactPackageJSON,
	ArtifactHardhatConfig,
	ArtifactTSConfig,
	ArtifactDeployScript,
}

// Record is the verification result for one project. It is computed fresh on
// each run and never mutated afterwards.
type Record struct {
	Name      string            `json:"name"`
	Artifacts map[Artifact]bool `json:"artifacts"`

	// Complete is true when every required artifact is present. Whether the
	// deploy script counts as required is the runner's RequireDeploy setting.
	Complete bool `json:"complete"`

	// CompileOK and TestOK are set only when the corresponding phase ran.
	CompileOK *bool `json:"compile_ok,omitempty"`
	TestOK    *bool `json:"test_ok,omitempty"`
}

// Summary aggregates the records of one verification run. ArtifactTally
// counts how many projects carry each artifact, which is what lets a caller
// see "9/10 have tests but only 7/10 have deploy scripts".
type Summary struct {
	Records       []Record         `json:"records"`
	CompleteCount int              `json:"complete_count"`
	ArtifactTally map[Artifact]int `json:"artifact_tally"`
	AllComplete   bool             `json:"all_complete"`
}
