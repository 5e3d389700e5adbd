/*
Package alias defines the core domain entity for an alias.
*/
package alias

/*
Alias is a user-defined substitution for the first word of a command line.
Expansion replaces that word verbatim; it is never split into further words.
*/
type Alias struct {
	Name      string `yaml:"alias"`
	Expansion string `yaml:"expansion"`
}
