package ports

// Environment defines the contract for reading and writing the process
// environment seen by the shell and inherited by its children.
type Environment interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
	// Environ returns NAME=value pairs.
	Environ() []string
}
