package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/easyeats/easyeats-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

const profileColumns = `id, subject_id, account_id, email, first_name, last_name, bio, image_key, location, created_at, updated_at`

func scanProfile(row pgx.Row) (model.Profile, error) {
	var profile model.Profile
	err := row.Scan(
		&profile.ID, &profile.SubjectID, &profile.AccountID, &profile.Email,
		&profile.FirstName, &profile.LastName, &profile.Bio, &profile.ImageKey,
		&profile.Location, &profile.CreatedAt, &profile.UpdatedAt,
	)
	return profile, err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) GetBySubjectID(ctx context.Context, subjectID string) (model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE subject_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, subjectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by subject id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by account id: %w", err)
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	return profiles, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query := `INSERT INTO profiles (id, subject_id, account_id, email, first_name, last_name, bio, image_key, location)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + profileColumns

	savedProfile, err := scanProfile(r.db.QueryRow(ctx, query,
		profile.ID, profile.SubjectID, profile.AccountID, profile.Email,
		profile.FirstName, profile.LastName, profile.Bio, profile.ImageKey, profile.Location,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Profile{}, model.ErrDuplicate
		}
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return savedProfile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query := `UPDATE profiles
			  SET email = $2, first_name = $3, last_name = $4, bio = $5, image_key = $6, location = $7, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + profileColumns

	savedProfile, err := scanProfile(r.db.QueryRow(ctx, query,
		profile.ID, profile.Email, profile.FirstName, profile.LastName,
		profile.Bio, profile.ImageKey, profile.Location,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return savedProfile, nil
}

// UpdateWithAccount writes the profile and its linked account in one
// transaction. A failure on either side leaves both rows unchanged.
func (r *ProfileRepository) UpdateWithAccount(ctx context.Context, profile model.Profile, account model.Account) (model.Profile, model.Account, error) {
	var savedProfile model.Profile
	var savedAccount model.Account

	err := withTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		accountQuery := `UPDATE accounts
						 SET handle = $2, email = $3, first_name = $4, last_name = $5, updated_at = now()
						 WHERE id = $1
						 RETURNING ` + accountColumns

		var err error
		savedAccount, err = scanAccount(tx.QueryRow(ctx, accountQuery,
			account.ID, account.Handle, account.Email, account.FirstName, account.LastName,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrNotFound
			}
			if isUniqueViolation(err) {
				return model.ErrDuplicate
			}
			return fmt.Errorf("failed to update account: %w", err)
		}

		profileQuery := `UPDATE profiles
						 SET email = $2, first_name = $3, last_name = $4, bio = $5, image_key = $6, location = $7, updated_at = now()
						 WHERE id = $1
						 RETURNING ` + profileColumns

		savedProfile, err = scanProfile(tx.QueryRow(ctx, profileQuery,
			profile.ID, profile.Email, profile.FirstName, profile.LastName,
			profile.Bio, profile.ImageKey, profile.Location,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrNotFound
			}
			return fmt.Errorf("failed to update profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.Profile{}, model.Account{}, err
	}

	return savedProfile, savedAccount, nil
}

// LinkAccount inserts the account and attaches it to the profile in one
// transaction. The link is guarded by the database: accounts.handle and
// profiles.account_id are unique, and the update only touches an unlinked row.
// A concurrent reconciliation losing the race gets model.ErrDuplicate and is
// expected to re-read the now-linked profile.
func (r *ProfileRepository) LinkAccount(ctx context.Context, profileID uuid.UUID, account model.Account) (model.Account, error) {
	var savedAccount model.Account

	err := withTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertQuery := `INSERT INTO accounts (id, handle, email, first_name, last_name)
						VALUES ($1, $2, $3, $4, $5)
						RETURNING ` + accountColumns

		var err error
		savedAccount, err = scanAccount(tx.QueryRow(ctx, insertQuery,
			account.ID, account.Handle, account.Email, account.FirstName, account.LastName,
		))
		if err != nil {
			if isUniqueViolation(err) {
				return model.ErrDuplicate
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		linkQuery := `UPDATE profiles SET account_id = $1, updated_at = now()
					  WHERE id = $2 AND account_id IS NULL`

		tag, err := tx.Exec(ctx, linkQuery, savedAccount.ID, profileID)
		if err != nil {
			if isUniqueViolation(err) {
				return model.ErrDuplicate
			}
			return fmt.Errorf("failed to link account to profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrDuplicate
		}

		return nil
	})
	if err != nil {
		return model.Account{}, err
	}

	return savedAccount, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
