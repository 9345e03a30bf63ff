package postgres

import (
	"context"
	"time"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, COALESCE(store_name, ''), COALESCE(store_address, ''), COALESCE(store_contact, ''), COALESCE(store_country_code, ''), COALESCE(profile_photo, ''), profile_complete, email_verified, phone_verified, created_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, store_name, store_address, store_contact, store_country_code, profile_photo, profile_complete, email_verified, phone_verified, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	// Imported legacy users keep their original creation date.
	if u.CreatedOn == "" {
		u.CreatedOn = time.Now().Format("2006-01-02")
	}
	return r.db.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.StoreName, u.StoreAddress, u.StoreContact,
		u.StoreCountryCode, u.ProfilePhoto, u.ProfileComplete, u.EmailVerified, u.PhoneVerified, u.CreatedOn,
	).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.StoreName, &u.StoreAddress,
		&u.StoreContact, &u.StoreCountryCode, &u.ProfilePhoto, &u.ProfileComplete,
		&u.EmailVerified, &u.PhoneVerified, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, store_name=$2, store_address=$3, store_contact=$4, store_country_code=$5, profile_photo=$6, profile_complete=$7, email_verified=$8, phone_verified=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		u.Name, u.StoreName, u.StoreAddress, u.StoreContact, u.StoreCountryCode,
		u.ProfilePhoto, u.ProfileComplete, u.EmailVerified, u.PhoneVerified, u.ID,
	)
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	query := `UPDATE users SET password_hash=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	return err
}

func (r *userRepository) ListIDs(ctx context.Context) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
