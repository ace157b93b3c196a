package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"ticketeiro/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailOrCPF powers the duplicate check at sign-up.
func (d *DB) FindByEmailOrCPF(ctx context.Context, email, cpfCNPJ string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("email = ?", email).
		WhereOr("cpf_cnpj = ?", cpfCNPJ).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DB) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	res, err := d.Bun.NewInsert().Model(&user).Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, nil
	}
	return &user, nil
}
