package flow

// Source tells where the effective environment name came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceOption  Source = "option"
	SourceSystem  Source = "system"
	SourceDefault Source = "default"
)

// DefaultEnvVar is the conventional variable holding the environment name.
const DefaultEnvVar = "NODE_ENV"

// EffectiveEnvironment picks the environment name by precedence: explicit
// name, then the envVar entry of system, then fallback. An empty result
// means "no environment" mode.
func EffectiveEnvironment(explicit, envVar string, system map[string]string, fallback string) (string, Source) {
	if explicit != "" {
		return explicit, SourceOption
	}

	if envVar == "" {
		envVar = DefaultEnvVar
	}
	if v := system[envVar]; v != "" {
		return v, SourceSystem
	}

	if fallback != "" {
		return fallback, SourceDefault
	}

	return "", SourceNone
}
