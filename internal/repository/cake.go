package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/bakehouse/bakehouse-go/internal/model"
)

var ErrCakeNotFound = errors.New("cake not found")

// CakeRepository handles cake listing persistence.
type CakeRepository struct {
	db *sql.DB
}

// NewCakeRepository creates a new CakeRepository.
func NewCakeRepository(db *sql.DB) *CakeRepository {
	return &CakeRepository{db: db}
}

const cakeColumns = `id, name, description, flavor, category, price_range, image_url, tags, featured, deleted, created_at, updated_at`

// Create inserts a new cake and sets the generated ID on the cake struct.
func (r *CakeRepository) Create(ctx context.Context, cake *model.Cake) error {
	tags, err := encodeTags(cake.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO cakes
		(name, description, flavor, category, price_range, image_url, tags, featured, deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		cake.Name, cake.Description, cake.Flavor, cake.Category,
		cake.PriceRange, cake.ImageURL, tags, cake.Featured, cake.Deleted,
		cake.CreatedAt, cake.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	cake.ID = id
	return nil
}

// GetByID retrieves a cake by id regardless of its deleted flag, so an
// already-deleted listing can still be corrected or recovered.
func (r *CakeRepository) GetByID(ctx context.Context, id int64) (*model.Cake, error) {
	query := `SELECT ` + cakeColumns + ` FROM cakes WHERE id = ?`

	cake, err := scanCake(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCakeNotFound
		}
		return nil, err
	}

	return cake, nil
}

// List retrieves all non-deleted cakes, newest first.
func (r *CakeRepository) List(ctx context.Context) ([]model.Cake, error) {
	query := `SELECT ` + cakeColumns + ` FROM cakes
		WHERE deleted = FALSE ORDER BY created_at DESC, id DESC`
	return r.queryCakes(ctx, query)
}

// ListByCategory retrieves all non-deleted cakes in a category, newest first.
func (r *CakeRepository) ListByCategory(ctx context.Context, category string) ([]model.Cake, error) {
	query := `SELECT ` + cakeColumns + ` FROM cakes
		WHERE deleted = FALSE AND category = ? ORDER BY created_at DESC, id DESC`
	return r.queryCakes(ctx, query, category)
}

// ListFeatured retrieves the non-deleted cakes flagged for the storefront
// hero section, newest first.
func (r *CakeRepository) ListFeatured(ctx context.Context) ([]model.Cake, error) {
	query := `SELECT ` + cakeColumns + ` FROM cakes
		WHERE deleted = FALSE AND featured = TRUE ORDER BY created_at DESC, id DESC`
	return r.queryCakes(ctx, query)
}

// Categories returns the distinct category values among non-deleted cakes.
func (r *CakeRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM cakes WHERE deleted = FALSE ORDER BY category`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Update writes all mutable columns of an existing cake. The caller is
// expected to have loaded the row first; created_at is never touched.
func (r *CakeRepository) Update(ctx context.Context, cake *model.Cake) error {
	tags, err := encodeTags(cake.Tags)
	if err != nil {
		return err
	}

	query := `UPDATE cakes SET
		name = ?, description = ?, flavor = ?, category = ?, price_range = ?,
		image_url = ?, tags = ?, featured = ?, updated_at = ?
		WHERE id = ?`

	_, err = r.db.ExecContext(ctx, query,
		cake.Name, cake.Description, cake.Flavor, cake.Category,
		cake.PriceRange, cake.ImageURL, tags, cake.Featured,
		cake.UpdatedAt, cake.ID,
	)
	return err
}

// SoftDelete marks a cake deleted, leaving the row in place. Deleting a row
// that is already deleted is a no-op update, not an error.
func (r *CakeRepository) SoftDelete(ctx context.Context, cake *model.Cake) error {
	query := `UPDATE cakes SET deleted = TRUE, updated_at = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, cake.UpdatedAt, cake.ID)
	return err
}

func (r *CakeRepository) queryCakes(ctx context.Context, query string, args ...any) ([]model.Cake, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cakes []model.Cake
	for rows.Next() {
		cake, err := scanCake(rows)
		if err != nil {
			return nil, err
		}
		cakes = append(cakes, *cake)
	}

	return cakes, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCake(row rowScanner) (*model.Cake, error) {
	cake := &model.Cake{}
	var tags string

	err := row.Scan(
		&cake.ID, &cake.Name, &cake.Description, &cake.Flavor, &cake.Category,
		&cake.PriceRange, &cake.ImageURL, &tags, &cake.Featured, &cake.Deleted,
		&cake.CreatedAt, &cake.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cake.Tags, err = decodeTags(tags)
	if err != nil {
		return nil, err
	}

	return cake, nil
}

// encodeTags serializes the tag sequence for the JSON column. A nil slice is
// stored as an empty array so readers never see NULL.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
