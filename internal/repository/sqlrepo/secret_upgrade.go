package sqlrepo

import (
	"context"
	"fmt"

	"go-vacancy-backend/pkg/database"
	"go-vacancy-backend/pkg/security"
)

// UpgradePlaintextSecrets replaces every usuarios.contrasena that is not yet
// a bcrypt hash with its hash and returns how many rows changed. Rows already
// hashed are left alone, so running it twice is harmless.
func UpgradePlaintextSecrets(ctx context.Context, db *database.DB) (int, error) {
	type pending struct {
		id     int64
		secret string
	}

	rows, err := db.QueryContext(ctx, `SELECT id, contrasena FROM usuarios ORDER BY id`)
	if err != nil {
		return 0, fmt.Errorf("select usuarios: %w", err)
	}
	// collected first: the SQLite pool has a single connection
	var todo []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.secret); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan usuario: %w", err)
		}
		if !security.IsSecretHash(p.secret) {
			todo = append(todo, p)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("iterate usuarios: %w", err)
	}
	rows.Close()

	update := db.Rebind(`UPDATE usuarios SET contrasena = ? WHERE id = ?`)
	for i, p := range todo {
		hash, err := security.HashSecret(p.secret)
		if err != nil {
			return i, fmt.Errorf("hash usuario %d: %w", p.id, err)
		}
		if _, err := db.ExecContext(ctx, update, hash, p.id); err != nil {
			return i, fmt.Errorf("update usuario %d: %w", p.id, err)
		}
	}
	return len(todo), nil
}
