package mssql

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"forum-provider/core/database"
	"forum-provider/core/provider"

	"github.com/microsoft/go-mssqldb/msdsn"
)

// Connection-string keys understood by BuildConnectionString.
const (
	KeyPassword           = "Password"
	KeyDataSource         = "Data Source"
	KeyInitialCatalog     = "Initial Catalog"
	KeyUserID             = "User ID"
	KeyIntegratedSecurity = "Integrated Security"
	KeyEncrypt            = "Encrypt"
	KeyConnectTimeout     = "Connect Timeout"
)

var dbParameters = []provider.ConnectionParam{
	provider.NewConnectionParam(0, KeyPassword, ""),
	provider.NewConnectionParam(1, KeyDataSource, "(local)"),
	provider.NewConnectionParam(2, KeyInitialCatalog, ""),
	provider.NewConnectionParam(3, KeyUserID, ""),
	provider.NewConnectionParam(11, KeyIntegratedSecurity, "true"),
}

var azureScripts = []string{
	"mssql/install/azure/InstallCommon.sql",
	"mssql/install/azure/InstallMembership.sql",
	"mssql/install/azure/InstallProfile.sql",
	"mssql/install/azure/InstallRoles.sql",
}

var installScripts = []string{
	"mssql/install/tables.sql",
	"mssql/install/indexes.sql",
	"mssql/install/views.sql",
	"mssql/install/constraints.sql",
	"mssql/install/triggers.sql",
	"mssql/install/functions.sql",
	"mssql/install/procedures.sql",
	"mssql/install/forum_ns.sql",
}

var upgradeScripts = []string{
	"mssql/upgrade/tables.sql",
	"mssql/upgrade/indexes.sql",
	"mssql/upgrade/views.sql",
	"mssql/upgrade/constraints.sql",
	"mssql/upgrade/triggers.sql",
	"mssql/upgrade/functions.sql",
	"mssql/upgrade/procedures.sql",
	"mssql/upgrade/forum_ns.sql",
}

var providerScripts = []string{
	"mssql/install/providers/tables.sql",
	"mssql/install/providers/indexes.sql",
	"mssql/install/providers/procedures.sql",
}

const fullTextScript = "mssql/fulltext.sql"

// Information is the SQL Server engine metadata.
type Information struct {
	cfg *database.Config
}

var _ provider.Information = (*Information)(nil)

// NewInformation creates the SQL Server metadata reading connection settings from cfg.
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
		return "", fmt.Errorf("mssql: no database configuration")
	}
	if i.cfg.ConnectionString != "" {
		return i.cfg.ConnectionString, nil
	}
	return i.BuildConnectionString(ConnectionParams(*i.cfg))
}

// ConnectionParams maps the typed configuration onto SQL Server connection-string keys.
// SQL authentication is used whenever a user is configured.
func ConnectionParams(cfg database.Config) []provider.Param {
	source := cfg.Host
	if cfg.Port > 0 {
		source = source + "," + strconv.Itoa(cfg.Port)
	}
	params := []provider.Param{
		{Name: KeyPassword, Value: cfg.Password},
		{Name: KeyDataSource, Value: source},
		{Name: KeyInitialCatalog, Value: cfg.Name},
		{Name: KeyUserID, Value: cfg.User},
		{Name: KeyIntegratedSecurity, Value: strconv.FormatBool(cfg.User == "")},
	}
	if cfg.TimeoutSeconds > 0 {
		params = append(params, provider.Param{Name: KeyConnectTimeout, Value: strconv.Itoa(cfg.TimeoutSeconds)})
	}
	return params
}

// BuildConnectionString assembles a sqlserver:// URL accepted by go-mssqldb. Data Source
// follows the ADO form host[\instance][,port]; "(local)" and "." mean localhost.
func (i *Information) BuildConnectionString(params []provider.Param) (string, error) {
	var (
		source     = "(local)"
		user, pass string
		integrated = true
		query      = url.Values{}
	)

	for _, p := range params {
		switch p.Name {
		case KeyPassword:
			pass = p.Value
		case KeyDataSource:
			if p.Value != "" {
				source = p.Value
			}
		case KeyInitialCatalog:
			if p.Value != "" {
				query.Set("database", p.Value)
			}
		case KeyUserID:
			user = p.Value
		case KeyIntegratedSecurity:
			b, err := parseBool(p.Value)
			if err != nil {
				return "", fmt.Errorf("invalid %s %q: %w", KeyIntegratedSecurity, p.Value, err)
			}
			integrated = b
		case KeyEncrypt:
			query.Set("encrypt", p.Value)
		case KeyConnectTimeout:
			if _, err := strconv.Atoi(p.Value); err != nil {
				return "", fmt.Errorf("invalid %s %q: %w", KeyConnectTimeout, p.Value, err)
			}
			query.Set("connection timeout", p.Value)
		default:
			return "", fmt.Errorf("%w: %q", provider.ErrUnknownParameter, p.Name)
		}
	}

	host, instance, port := splitDataSource(source)
	u := &url.URL{Scheme: "sqlserver", Host: host}
	if port != "" {
		u.Host = net.JoinHostPort(host, port)
	}
	if instance != "" {
		u.Path = "/" + instance
	}
	if !integrated && user != "" {
		u.User = url.UserPassword(user, pass)
	}
	u.RawQuery = query.Encode()

	dsn := u.String()
	if _, err := msdsn.Parse(dsn); err != nil {
		return "", fmt.Errorf("invalid connection string: %w", err)
	}
	return dsn, nil
}

func splitDataSource(source string) (host, instance, port string) {
	host = strings.TrimPrefix(strings.TrimSpace(source), "tcp:")
	if i := strings.LastIndex(host, ","); i >= 0 {
		host, port = host[:i], strings.TrimSpace(host[i+1:])
	}
	if i := strings.Index(host, `\`); i >= 0 {
		host, instance = host[:i], host[i+1:]
	}
	if host == "(local)" || host == "." || host == "" {
		host = "localhost"
	}
	return host, instance, port
}

// parseBool also accepts the SSPI spelling of Integrated Security.
func parseBool(v string) (bool, error) {
	if strings.EqualFold(v, "sspi") || strings.EqualFold(v, "yes") {
		return true, nil
	}
	if strings.EqualFold(v, "no") {
		return false, nil
	}
	return strconv.ParseBool(v)
}
