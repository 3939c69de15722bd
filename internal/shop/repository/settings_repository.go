package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"laundrypos/internal/domain"
	"laundrypos/internal/infrastructure/database"
)

const (
	keyBusinessName = "businessName"
	keyContact      = "contact"
	keyOwnerName    = "ownerName"
	keyWeightUnit   = "weightUnit"
	keyShopAddress  = "shopAddress"
	keyMessage      = "message"
)

var profileKeys = []string{keyBusinessName, keyContact, keyOwnerName, keyWeightUnit, keyShopAddress, keyMessage}

// SQLSettingsRepository stores the shop profile as rows of the settings
// key-value table.
type SQLSettingsRepository struct {
	db *sql.DB
}

func NewSQLSettingsRepository(db *sql.DB) *SQLSettingsRepository {
	return &SQLSettingsRepository{db: db}
}

// Load returns the stored profile. Missing keys are left blank.
func (r *SQLSettingsRepository) Load(ctx context.Context) (domain.ShopProfile, error) {
	query := `SELECT settingKey, settingValue FROM settings WHERE settingKey IN (` + placeholders(len(profileKeys)) + `)`

	rows, err := r.db.QueryContext(ctx, query, keyArgs()...)
	if err != nil {
		return domain.ShopProfile{}, fmt.Errorf("querying shop settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, len(profileKeys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return domain.ShopProfile{}, fmt.Errorf("scanning shop setting: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return domain.ShopProfile{}, fmt.Errorf("iterating shop settings: %w", err)
	}

	return domain.ShopProfile{
		BusinessName: values[keyBusinessName],
		Contact:      values[keyContact],
		OwnerName:    values[keyOwnerName],
		WeightUnit:   values[keyWeightUnit],
		ShopAddress:  values[keyShopAddress],
		Message:      values[keyMessage],
	}, nil
}

// Save replaces every profile key in one transaction.
func (r *SQLSettingsRepository) Save(ctx context.Context, p domain.ShopProfile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteProfileKeys(ctx, tx); err != nil {
		return err
	}

	values := map[string]string{
		keyBusinessName: p.BusinessName,
		keyContact:      p.Contact,
		keyOwnerName:    p.OwnerName,
		keyWeightUnit:   p.WeightUnit,
		keyShopAddress:  p.ShopAddress,
		keyMessage:      p.Message,
	}
	for _, key := range profileKeys {
		_, err := tx.ExecContext(ctx, `INSERT INTO settings (settingKey, settingValue) VALUES (?, ?)`, key, values[key])
		if err != nil {
			return fmt.Errorf("inserting shop setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing shop settings: %w", err)
	}
	return nil
}

func (r *SQLSettingsRepository) Clear(ctx context.Context) error {
	return deleteProfileKeys(ctx, r.db)
}

func deleteProfileKeys(ctx context.Context, q database.DBTX) error {
	query := `DELETE FROM settings WHERE settingKey IN (` + placeholders(len(profileKeys)) + `)`
	if _, err := q.ExecContext(ctx, query, keyArgs()...); err != nil {
		return fmt.Errorf("deleting shop settings: %w", err)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func keyArgs() []any {
	args := make([]any, len(profileKeys))
	for i, k := range profileKeys {
		args[i] = k
	}
	return args
}
