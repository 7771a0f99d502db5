// config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable, e.g. GREENHASH_DB_DSN.
const Prefix = "GREENHASH"

// Config holds everything the service needs at process start.
type Config struct {
	conf.Version
	Web struct {
		Host            string        `conf:"default:0.0.0.0:5000"`
		ReadTimeout     time.Duration `conf:"default:5s"`
		IdleTimeout     time.Duration `conf:"default:120s"`
		ShutdownTimeout time.Duration `conf:"default:20s"`
		StaticDir       string        `conf:"default:./static"`
	}
	DB struct {
		// Driver is either "sqlite" or "postgres".
		Driver          string        `conf:"default:sqlite"`
		DSN             string        `conf:"default:greenhash.db,mask"`
		MaxOpenConns    int           `conf:"default:10"`
		MaxIdleConns    int           `conf:"default:5"`
		ConnMaxLifetime time.Duration `conf:"default:30m"`
	}
	Session struct {
		CookieName string        `conf:"default:greenhash_session"`
		Expiration time.Duration `conf:"default:24h"`
		Secure     bool          `conf:"default:false"`
	}
	CORS struct {
		AllowOrigins string `conf:"default:*"`
	}
	Log struct {
		Level    string `conf:"default:info"`
		Encoding string `conf:"default:json"`
	}
	Pool struct {
		Address string `conf:"default:stratum.greenhash.ma:3333"`
	}
	Stream struct {
		Interval time.Duration `conf:"default:5s"`
	}
	Snapshot struct {
		// Interval of 0 leaves the stats table at its seeded rows.
		Interval time.Duration `conf:"default:0s"`
	}
	Archive struct {
		Bucket    string
		Name      string        `conf:"default:Green Hash Mining Stats"`
		Endpoint  string
		Region    string        `conf:"default:auto"`
		AccessKey string        `conf:"mask"`
		SecretKey string        `conf:"mask"`
		Interval  time.Duration `conf:"default:24h"`
	}
}

// ErrHelpWanted is returned by Load when --help or --version was requested.
var ErrHelpWanted = conf.ErrHelpWanted

// EnvFile is the dotenv file read before parsing.
const EnvFile = ".env"

// LoadEnv copies the variables of a dotenv file into the environment
// without overriding those already set. It reports false when the file
// does not exist; a file that cannot be parsed is an error.
func LoadEnv(path string) (bool, error) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("loading %s: %w", path, err)
	}
	return true, nil
}

// Load parses defaults, environment variables and command line flags into
// a Config. Call LoadEnv first so a dotenv file can feed the environment.
// When help is requested the usage text is returned alongside ErrHelpWanted.
func Load(build string) (Config, string, error) {
	cfg := Config{
		Version: conf.Version{
			Build: build,
			Desc:  "Green Hash Maroc mining pool API",
		},
	}

	help, err := conf.Parse(Prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return cfg, help, err
		}
		return cfg, "", fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, "", err
	}

	return cfg, "", nil
}

// String renders the configuration for startup logs with secrets masked.
func (c Config) String() (string, error) {
	return conf.String(&c)
}

// ArchiveEnabled reports whether stats snapshots should be exported.
func (c Config) ArchiveEnabled() bool {
	return c.Archive.Bucket != "" && c.Archive.Interval > 0
}

func (c Config) validate() error {
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return errors.New("db dsn is required")
	}
	if c.Stream.Interval <= 0 {
		return errors.New("stream interval must be positive")
	}
	return nil
}
