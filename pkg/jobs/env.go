package jobs

import (
	"fmt"
	"os"
	"strings"
)

// inheritedEnv lists the only variables copied from the parent environment.
var inheritedEnv = [...]string{
	"PATH",
	"USER",
	"SHELL",

	// Internationalization
	"LC_ALL",
	"LANG",
}

// InheritedEnv returns the names of the variables a hook inherits from Fisher.
func InheritedEnv() []string {
	return append([]string(nil), inheritedEnv[:]...)
}

// buildEnv constructs the hook environment from scratch.
func (e *Executor) buildEnv(job *Job, workdir, bodyPath string) []string {
	env := make([]string, 0, len(inheritedEnv)+4)

	for _, key := range inheritedEnv {
		if value, ok := e.lookupEnv(key); ok {
			env = append(env, key+"="+value)
		}
	}

	env = append(env,
		"HOME="+workdir,
		"FISHER_REQUEST_BODY="+bodyPath,
	)

	if provider := job.Provider(); provider != nil {
		prefix := fmt.Sprintf("FISHER_%s_", strings.ToUpper(provider.Name()))
		for _, v := range provider.Env(job.Request()) {
			env = append(env, prefix+v.Key+"="+v.Value)
		}
	}

	return env
}

func defaultLookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
