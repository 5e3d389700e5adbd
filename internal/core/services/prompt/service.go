package prompt

import (
	"os"
	"os/user"
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/AntonioJCosta/kzsh/internal/fsutil"
	"github.com/AntonioJCosta/kzsh/internal/handlers/ui"
)

const (
	// EnvPrompt overrides the configured template when set.
	EnvPrompt = "KSH_PROMPT"
	// DefaultTemplate mirrors a classic user@host:cwd$ prompt.
	DefaultTemplate = "%user%@%host%:%cwd%$ "

	fallbackUser = "user"
)

type service struct {
	env      ports.Environment
	template string
	palette  ui.Palette

	username func() string
	hostname func() (string, error)
	getwd    func() (string, error)
}

// NewService creates a prompt renderer. template is used when KSH_PROMPT is
// unset and may be empty to select DefaultTemplate.
// It panics if env is nil.
func NewService(env ports.Environment, template string, colored bool) ports.PromptRenderer {
	if env == nil {
		panic("environment cannot be nil")
	}
	s := &service{
		env:      env,
		template: template,
		palette:  ui.NewPalette(colored),
		hostname: os.Hostname,
		getwd:    os.Getwd,
	}
	s.username = s.lookupUser
	return s
}

// Render expands the active template.
func (s *service) Render() string {
	tmpl := s.env.Getenv(EnvPrompt)
	if tmpl == "" {
		tmpl = s.template
	}
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	if !strings.Contains(tmpl, "%") {
		return tmpl
	}

	home := s.env.Getenv("HOME")
	cwd, err := s.getwd()
	if err != nil {
		cwd = s.env.Getenv("PWD")
	}
	host, err := s.hostname()
	if err != nil {
		host = "localhost"
	}

	return strings.NewReplacer(
		"%user%", s.palette.User(s.username()),
		"%host%", s.palette.Host(host),
		"%cwd%", s.palette.Path(fsutil.TildeAbbr(cwd, home)),
		"%dir%", s.palette.Path(baseName(cwd, home)),
		"%$%", "$",
		"%n%", "\n",
		"%e%", "\x1b",
	).Replace(tmpl)
}

func (s *service) lookupUser() string {
	if name := s.env.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return fallbackUser
}
