package shell

import "os"

// Environment satisfies contracts.Environment with the real process
// environment.
type Environment struct{}

func NewEnvironment() *Environment {
	return &Environment{}
}

func (this *Environment) LookupEnv(key string) (value string, set bool) {
	return os.LookupEnv(key)
}
