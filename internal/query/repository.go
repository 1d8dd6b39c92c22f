package query

import (
	"context"
	"encoding/base64"
	"time"
	"unicode/utf8"

	"query-gateway/pkg/db"
)

type Repository struct {
	Db *db.Db
}

func NewRepository(db *db.Db) *Repository {
	return &Repository{Db: db}
}

// Query runs a SELECT-classified statement on a dedicated connection and
// materializes the full result set. The connection is released on every path.
func (r *Repository) Query(ctx context.Context, q string) ([]string, [][]any, error) {
	conn, err := r.Db.Conn(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	data := make([][]any, 0, 64)
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}

		row := make([]any, len(cols))
		for i := range raw {
			row[i] = normalizeValue(raw[i])
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return cols, data, nil
}

// Exec runs any non-SELECT statement. Rows affected are not reported.
func (r *Repository) Exec(ctx context.Context, q string) error {
	conn, err := r.Db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, q)
	return err
}

// normalizeValue maps every scalar the driver can produce to a value that
// serializes cleanly to JSON.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		if utf8.Valid(x) {
			return string(x)
		}
		return map[string]any{
			"type":   "bytes",
			"base64": base64.StdEncoding.EncodeToString(x),
		}
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return x
	}
}
