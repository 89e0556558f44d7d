package mysql

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"time"

	"forum-provider/core/database"
	"forum-provider/core/provider"

	driver "github.com/go-sql-driver/mysql"
)

// Connection-string keys understood by BuildConnectionString.
const (
	KeyPassword        = "Password"
	KeyServer          = "Server"
	KeyDatabase        = "Database"
	KeyUserID          = "User ID"
	KeyPort            = "Port"
	KeyMultiStatements = "Allow Multiple Statements"
	KeyCharset         = "Charset"
	KeyTimeout         = "Timeout"
)

const defaultPort = 3306

var dbParameters = []provider.ConnectionParam{
	provider.NewConnectionParam(0, KeyPassword, ""),
	provider.NewConnectionParam(1, KeyServer, "localhost"),
	provider.NewConnectionParam(2, KeyDatabase, ""),
	provider.NewConnectionParam(3, KeyUserID, "root"),
	provider.NewConnectionParam(4, KeyPort, strconv.Itoa(defaultPort)),
	provider.NewConnectionParam(5, KeyMultiStatements, "true"),
}

var azureScripts = []string{
	"mysql/install/azure/InstallCommon.sql",
	"mysql/install/azure/InstallMembership.sql",
	"mysql/install/azure/InstallProfile.sql",
	"mysql/install/azure/InstallRoles.sql",
}

var installScripts = []string{
	"mysql/install/tables.sql",
	"mysql/install/indexes.sql",
	"mysql/install/views.sql",
	"mysql/install/constraints.sql",
	"mysql/install/functions.sql",
	"mysql/install/procedures.sql",
	"mysql/install/forum_ns.sql",
}

var upgradeScripts = []string{
	"mysql/upgrade/tables.sql",
	"mysql/upgrade/indexes.sql",
	"mysql/upgrade/views.sql",
	"mysql/upgrade/constraints.sql",
	"mysql/upgrade/triggers.sql",
	"mysql/upgrade/functions.sql",
	"mysql/upgrade/procedures.sql",
	"mysql/upgrade/forum_ns.sql",
}

var providerScripts = []string{
	"mysql/install/providers/tables.sql",
	"mysql/install/providers/indexes.sql",
	"mysql/install/providers/procedures.sql",
}

const fullTextScript = "mysql/fulltext.sql"

// Information is the MySQL engine metadata.
type Information struct {
	cfg *database.Config
}

var _ provider.Information = (*Information)(nil)

// NewInformation creates the MySQL metadata reading connection settings from cfg.
func NewInformation(cfg *database.Config) *Information {
	return &Information{cfg: cfg}
}

func (i *Information) ProviderName() string { return ProviderName }

func (i *Information) ConnectionParameters() []provider.ConnectionParam {
	return slices.Clone(dbParameters)
}

func (i *Information) InstallScripts() []string  { return slices.Clone(installScripts) }
func (i *Information) UpgradeScripts() []string  { return slices.Clone(upgradeScripts) }
func (i *Information) AzureScripts() []string    { return slices.Clone(azureScripts) }
func (i *Information) ProviderScripts() []string { return slices.Clone(providerScripts) }
func (i *Information) FullTextScript() string    { return fullTextScript }

// ConnectionString returns the configured connection string, building it from the typed
// settings unless a raw connection string is configured.
func (i *Information) ConnectionString() (string, error) {
	if i.cfg == nil {
		return "", fmt.Errorf("mysql: no database configuration")
	}
	if i.cfg.ConnectionString != "" {
		return i.cfg.ConnectionString, nil
	}
	return i.BuildConnectionString(ConnectionParams(*i.cfg))
}

// ConnectionParams maps the typed configuration onto MySQL connection-string keys.
func ConnectionParams(cfg database.Config) []provider.Param {
	port := cfg.Port
	if port <= 0 {
		port = defaultPort
	}
	params := []provider.Param{
		{Name: KeyPassword, Value: cfg.Password},
		{Name: KeyServer, Value: cfg.Host},
		{Name: KeyDatabase, Value: cfg.Name},
		{Name: KeyUserID, Value: cfg.User},
		{Name: KeyPort, Value: strconv.Itoa(port)},
		{Name: KeyMultiStatements, Value: "true"},
		{Name: KeyCharset, Value: "utf8mb4"},
	}
	if cfg.TimeoutSeconds > 0 {
		params = append(params, provider.Param{Name: KeyTimeout, Value: strconv.Itoa(cfg.TimeoutSeconds)})
	}
	return params
}

// BuildConnectionString assembles a go-sql-driver DSN. Keys are case-sensitive.
func (i *Information) BuildConnectionString(params []provider.Param) (string, error) {
	cfg := driver.NewConfig()
	cfg.Net = "tcp"
	cfg.ParseTime = true

	host := "localhost"
	port := strconv.Itoa(defaultPort)

	for _, p := range params {
		switch p.Name {
		case KeyPassword:
			cfg.Passwd = p.Value
		case KeyServer:
			if p.Value != "" {
				host = p.Value
			}
		case KeyDatabase:
			cfg.DBName = p.Value
		case KeyUserID:
			cfg.User = p.Value
		case KeyPort:
			if _, err := strconv.Atoi(p.Value); err != nil {
				return "", fmt.Errorf("invalid %s %q: %w", KeyPort, p.Value, err)
			}
			port = p.Value
		case KeyMultiStatements:
			b, err := strconv.ParseBool(p.Value)
			if err != nil {
				return "", fmt.Errorf("invalid %s %q: %w", KeyMultiStatements, p.Value, err)
			}
			cfg.MultiStatements = b
		case KeyCharset:
			if cfg.Params == nil {
				cfg.Params = map[string]string{}
			}
			cfg.Params["charset"] = p.Value
		case KeyTimeout:
			secs, err := strconv.Atoi(p.Value)
			if err != nil {
				return "", fmt.Errorf("invalid %s %q: %w", KeyTimeout, p.Value, err)
			}
			cfg.Timeout = time.Duration(secs) * time.Second
			cfg.ReadTimeout = cfg.Timeout
			cfg.WriteTimeout = cfg.Timeout
		default:
			return "", fmt.Errorf("%w: %q", provider.ErrUnknownParameter, p.Name)
		}
	}

	cfg.Addr = net.JoinHostPort(host, port)
	return cfg.FormatDSN(), nil
}
