package version

var (
	// Set at build time with -ldflags "-X github.com/redjax/hexify/internal/version.Version=..."
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	RepoUser = "redjax"
	RepoName = "hexify"
	RepoUrl  = "https://github.com/redjax/hexify"
	Package  = "hexify"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// String formats the version line printed by 'hexify version'.
func (p PackageInfo) String() string {
	return "version:" + p.PackageVersion + " commit:" + p.PackageCommit + " date:" + p.PackageReleaseDate
}
