package model

// Environment names accepted in config.
const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

// IsKnownEnvironment reports whether name is one of the environments above.
func IsKnownEnvironment(name string) bool {
	switch name {
	case EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction:
		return true
	}
	return false
}
