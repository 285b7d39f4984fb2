package version

// Build information set by ldflags
var (
	Version = "dev"     // -ldflags "-X github.com/arthur-debert/graft/internal/version.Version={{.Version}}"
	Commit  = "unknown" // -ldflags "-X github.com/arthur-debert/graft/internal/version.Commit={{.Commit}}"
	Date    = "unknown" // -ldflags "-X github.com/arthur-debert/graft/internal/version.Date={{.Date}}"
)
