package mysql

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"forum-provider/core/functions"
	"forum-provider/core/naming"
)

// Operation names supported by Functions.
const (
	OpDBSize            = "DBSize"
	OpReIndex           = "ReIndex"
	OpRunSQL            = "RunSQL"
	OpFullTextSupported = "FullTextSupported"
)

// ScriptParam is the RunSQL parameter holding the SQL text.
const ScriptParam = "script"

// ErrMissingScript is returned by RunSQL without a string "script" parameter.
var ErrMissingScript = errors.New("missing script parameter")

type operation func(ctx context.Context, s *functions.Session, params functions.Params) (bool, any, error)

// Functions is the MySQL specific-function runner.
type Functions struct {
	naming *naming.Strategy
	ops    map[string]operation
}

var _ functions.Runner = (*Functions)(nil)

// NewFunctions creates the runner. strategy supplies the qualifier used by ReIndex.
func NewFunctions(strategy *naming.Strategy) *Functions {
	f := &Functions{naming: strategy}
	f.ops = map[string]operation{
		strings.ToLower(OpDBSize):            f.dbSize,
		strings.ToLower(OpReIndex):           f.reIndex,
		strings.ToLower(OpRunSQL):            f.runSQL,
		strings.ToLower(OpFullTextSupported): f.fullTextSupported,
	}
	return f
}

func (f *Functions) ProviderName() string { return ProviderName }
func (f *Functions) DialectName() string  { return DialectName }

// IsSupportedOperation matches operation names case-insensitively.
func (f *Functions) IsSupportedOperation(name string) bool {
	_, ok := f.ops[strings.ToLower(name)]
	return ok
}

// RunOperation dispatches to the named operation.
func (f *Functions) RunOperation(ctx context.Context, s *functions.Session, fnType functions.FunctionType, name string, params functions.Params) (bool, any, error) {
	op, ok := f.ops[strings.ToLower(name)]
	if !ok {
		return false, nil, nil
	}
	return op(ctx, s, params)
}

func (f *Functions) dbSize(ctx context.Context, s *functions.Session, _ functions.Params) (bool, any, error) {
	var size float64
	err := s.Conn().WithContext(ctx).
		Raw("SELECT COALESCE(SUM(data_length + index_length), 0) / 1048576 FROM information_schema.TABLES WHERE table_schema = DATABASE()").
		Scan(&size).Error
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", OpDBSize, err)
	}
	if err := collectWarnings(ctx, s); err != nil {
		return false, nil, err
	}
	return true, size, nil
}

func (f *Functions) reIndex(ctx context.Context, s *functions.Session, _ functions.Params) (bool, any, error) {
	conn := s.Conn().WithContext(ctx)

	var tables []string
	err := conn.Raw("SELECT table_name FROM information_schema.TABLES WHERE table_schema = DATABASE() AND table_name LIKE ? ORDER BY table_name",
		likePrefix(f.naming.Qualifier())).Scan(&tables).Error
	if err != nil {
		return false, nil, fmt.Errorf("%s: list tables: %w", OpReIndex, err)
	}

	for _, table := range tables {
		rows, err := conn.Raw("OPTIMIZE TABLE " + quoteIdent(table)).Rows()
		if err != nil {
			return false, nil, fmt.Errorf("%s: %s: %w", OpReIndex, table, err)
		}
		for rows.Next() {
			var tbl, op, msgType, msgText string
			if err := rows.Scan(&tbl, &op, &msgType, &msgText); err != nil {
				rows.Close()
				return false, nil, fmt.Errorf("%s: %s: %w", OpReIndex, table, err)
			}
			s.Notify(functions.Message{Level: msgType, Text: tbl + ": " + msgText})
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return false, nil, fmt.Errorf("%s: %s: %w", OpReIndex, table, err)
		}
	}

	return true, len(tables), nil
}

func (f *Functions) runSQL(ctx context.Context, s *functions.Session, params functions.Params) (bool, any, error) {
	script, ok := params.String(ScriptParam)
	if !ok {
		return false, nil, fmt.Errorf("%s: %w", OpRunSQL, ErrMissingScript)
	}

	batches := SplitBatches(script)
	conn := s.Conn().WithContext(ctx)
	for n, batch := range batches {
		if err := conn.Exec(batch).Error; err != nil {
			return false, nil, fmt.Errorf("%s: batch %d: %w", OpRunSQL, n+1, err)
		}
		if err := collectWarnings(ctx, s); err != nil {
			return false, nil, err
		}
	}
	return true, len(batches), nil
}

func (f *Functions) fullTextSupported(ctx context.Context, s *functions.Session, _ functions.Params) (bool, any, error) {
	var version string
	if err := s.Conn().WithContext(ctx).Raw("SELECT VERSION()").Scan(&version).Error; err != nil {
		return false, nil, fmt.Errorf("%s: %w", OpFullTextSupported, err)
	}
	return true, SupportsFullText(version), nil
}

// collectWarnings forwards the rows of SHOW WARNINGS for the last statement.
func collectWarnings(ctx context.Context, s *functions.Session) error {
	rows, err := s.Conn().WithContext(ctx).Raw("SHOW WARNINGS").Rows()
	if err != nil {
		return fmt.Errorf("show warnings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m functions.Message
		if err := rows.Scan(&m.Level, &m.Code, &m.Text); err != nil {
			return fmt.Errorf("show warnings: %w", err)
		}
		s.Notify(m)
	}
	return rows.Err()
}

// SplitBatches splits a script on lines containing only GO. Blank batches are dropped.
func SplitBatches(script string) []string {
	var (
		batches []string
		current strings.Builder
	)
	flush := func() {
		if b := strings.TrimSpace(current.String()); b != "" {
			batches = append(batches, b)
		}
		current.Reset()
	}

	sc := bufio.NewScanner(strings.NewReader(script))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.EqualFold(strings.TrimSpace(line), "GO") {
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	flush()
	return batches
}

// SupportsFullText reports whether a VERSION() string supports InnoDB full-text indexes:
// MySQL 5.6 and later, and every MariaDB release.
func SupportsFullText(version string) bool {
	if strings.Contains(strings.ToLower(version), "mariadb") {
		return true
	}
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	minor, err := strconv.Atoi(strings.TrimFunc(parts[1], func(r rune) bool { return r < '0' || r > '9' }))
	if err != nil {
		return false
	}
	return major > 5 || (major == 5 && minor >= 6)
}

func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
