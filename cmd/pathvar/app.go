package pathvar

import (
	"os"

	"github.com/arthur-debert/pathvar/pkg/config"
	"github.com/arthur-debert/pathvar/pkg/logging"
	"github.com/arthur-debert/pathvar/pkg/paths"
	"github.com/arthur-debert/pathvar/pkg/pathvar"
	"github.com/arthur-debert/pathvar/pkg/scope"
	"github.com/arthur-debert/pathvar/pkg/session"
	"github.com/rs/zerolog/log"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	verbosity  int
	sessionID  string
	configFile string
}

// runtime is everything a command needs once flags are parsed
type runtime struct {
	cfg     *config.Config
	session *session.Session
	engine  *pathvar.Engine
}

// load resolves paths and configuration, opens the session of the calling
// shell and builds an engine over it
func (o *rootOptions) load() (*runtime, error) {
	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]interface{})
	if o.sessionID != "" {
		overrides["session.id"] = o.sessionID
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile:  o.configFile,
		SearchFiles: p.ConfigFiles(),
		Overrides:   overrides,
	})
	if err != nil {
		return nil, err
	}

	id := session.ResolveID(cfg.Session.ID)
	sessionPath := p.SessionPath(id)
	if cfg.Session.Dir != "" {
		sessionPath = paths.SessionFile(cfg.Session.Dir, id)
	}

	sess, err := session.Open(sessionPath, id, scope.FromEnviron(os.Environ()))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("session", id).
		Str("variable", cfg.Pathvar.Variable).
		Str("compare", cfg.Pathvar.Compare).
		Msg("runtime ready")

	return &runtime{
		cfg:     cfg,
		session: sess,
		engine: pathvar.New(sess,
			pathvar.WithDefaultVariable(cfg.Pathvar.Variable),
			pathvar.WithCompareMode(cfg.CompareMode()),
			pathvar.WithLogger(logging.GetLogger("pathvar")),
		),
	}, nil
}
