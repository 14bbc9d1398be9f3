package model

import "strings"

// SourceKind discriminates how a workload gets its image.
type SourceKind string

const (
	// SourceGitHub means the image is built from a linked repository.
	SourceGitHub SourceKind = "github"
	// SourceImage means the image is pulled directly from a registry.
	SourceImage SourceKind = "image"
)

// Workload is the deployed unit as returned by the API. Run-state is not
// part of this record; it changes far more often and is fetched separately.
type Workload struct {
	ID                   int               `json:"id"`
	Name                 string            `json:"name"`
	Owner                string            `json:"owner"`
	Source               SourceKind        `json:"source"`
	SourceURL            string            `json:"source_url"`
	SourceBranch         string            `json:"source_branch,omitempty"`
	SourceRootDir        string            `json:"source_root_dir,omitempty"`
	DeployedImageTag     string            `json:"deployed_image_tag"`
	PersistentVolumePath string            `json:"persistent_volume_path,omitempty"`
	EnvVars              map[string]string `json:"env_vars,omitempty"`
	CreatedAt            string            `json:"created_at"`
}

// CreatedDate returns the date part of the creation timestamp.
func (w *Workload) CreatedDate() string {
	date, _, _ := strings.Cut(w.CreatedAt, "T")
	return date
}

// WorkloadDetails is the aggregate fetched on every dashboard reload.
type WorkloadDetails struct {
	Workload     Workload  `json:"project"`
	Participants []string  `json:"participants"`
	Database     *Database `json:"database,omitempty"`
}

// Metrics is an instantaneous resource sample. It is never persisted; each
// sample supersedes the previous one.
type Metrics struct {
	CPUUsage    float64 `json:"cpu_usage"`
	MemoryUsage float64 `json:"memory_usage"`
	MemoryLimit float64 `json:"memory_limit"`
}
