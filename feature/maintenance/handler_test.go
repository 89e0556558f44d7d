package maintenance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"forum-provider/core/data"
	"forum-provider/core/database"
	"forum-provider/core/registry"
	"forum-provider/feature/mssql"
	"forum-provider/feature/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupMySQLApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	p := mysql.New(&database.Config{Qualifier: "yaf_"})

	reg := registry.New[data.Access]()
	require.NoError(t, p.Register(reg, db))

	app := fiber.New()
	require.NoError(t, NewFeature(p, reg, zap.NewNop()).Load(app))
	return app, mock
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleInfo(t *testing.T) {
	app, _ := setupMySQLApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/provider", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "mysql", body["name"])
	assert.Equal(t, "mysql", body["dialect"])
	assert.Equal(t, "yaf_", body["qualifier"])
	assert.Equal(t, true, body["functions"])
	assert.Len(t, body["parameters"], 6)
}

func TestHandleScripts(t *testing.T) {
	app, _ := setupMySQLApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/provider/scripts/upgrade", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	scripts := body["scripts"].([]any)
	assert.Len(t, scripts, 8)
	assert.Equal(t, "mysql/upgrade/tables.sql", scripts[0])

	resp, err = app.Test(httptest.NewRequest("GET", "/provider/scripts/everything", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleConnectionString(t *testing.T) {
	app, _ := setupMySQLApp(t)

	req := httptest.NewRequest("POST", "/provider/connection-string",
		strings.NewReader(`[{"name":"Server","value":"db1"},{"name":"User ID","value":"forum"},{"name":"Database","value":"yaf"}]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, decode(t, resp)["connection_string"], "forum@tcp(db1:3306)/yaf")

	req = httptest.NewRequest("POST", "/provider/connection-string", strings.NewReader(`[{"name":"Data Source","value":"db1"}]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, decode(t, resp)["error"], "unknown connection parameter")
}

func TestHandleFunction_DBSize(t *testing.T) {
	app, mock := setupMySQLApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(data_length + index_length), 0) / 1048576")).
		WillReturnRows(sqlmock.NewRows([]string{"size"}).AddRow(3.25))
	mock.ExpectQuery("SHOW WARNINGS").WillReturnRows(sqlmock.NewRows([]string{"Level", "Code", "Message"}))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("POST", "/provider/functions/DBSize?type=scalar", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, true, body["ran"])
	assert.Equal(t, 3.25, body["result"])
	assert.Empty(t, body["messages"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleFunction_Unsupported(t *testing.T) {
	app, mock := setupMySQLApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/provider/functions/DBShrink", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, false, decode(t, resp)["ran"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleFunction_BadType(t *testing.T) {
	app, _ := setupMySQLApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/provider/functions/DBSize?type=table", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleFunction_Failure(t *testing.T) {
	app, mock := setupMySQLApp(t)

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	req := httptest.NewRequest("POST", "/provider/functions/RunSQL?type=query", strings.NewReader(`{"script":"DROP TABLE nope"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleFunction_NoRunner(t *testing.T) {
	p := mssql.New(&database.Config{})
	app := fiber.New()
	require.NoError(t, NewFeature(p, registry.New[data.Access](), nil).Load(app))

	resp, err := app.Test(httptest.NewRequest("POST", "/provider/functions/DBSize", nil))
	require.NoError(t, err)
	assert.Equal(t, 501, resp.StatusCode)
}

func TestHandleInstalled(t *testing.T) {
	app, mock := setupMySQLApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `yaf_Registry`")).
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("Name", "varchar(50)", "NO", "PRI", nil, ""))

	resp, err := app.Test(httptest.NewRequest("GET", "/provider/installed", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp)["installed"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleInstalled_NoDatabase(t *testing.T) {
	p := mysql.New(&database.Config{})
	app := fiber.New()
	require.NoError(t, NewFeature(p, registry.New[data.Access](), nil).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/provider/installed", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	f := NewFeature(mysql.New(&database.Config{}), registry.New[data.Access](), nil)
	assert.Equal(t, "maintenance", f.Name())
	assert.True(t, f.IsEnabled())
}

func TestHandleSchema(t *testing.T) {
	app, mock := setupMySQLApp(t)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `yaf_Registry`")).
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `yaf_Board`")).
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/provider/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, false, body["matched"])
	assert.Contains(t, body["tables"], "yaf_Registry")
	assert.NoError(t, mock.ExpectationsWereMet())
}
