package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dom "github.com/cuihairu/labcatalog/internal/ports"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo provides GORM-based persistence for the catalog tables.
type Repo struct{ db *gorm.DB }

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Developer{}, &Publisher{}, &Genre{}, &VideoGame{})
}

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type txKey struct{}

// conn returns the transaction bound to ctx, or the root handle.
func (r *Repo) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// UnitOfWork implements ports.UnitOfWork with gorm transactions.
type UnitOfWork struct{ db *gorm.DB }

func NewUnitOfWork(db *gorm.DB) *UnitOfWork { return &UnitOfWork{db: db} }

var _ dom.UnitOfWork = (*UnitOfWork)(nil)

// Do joins an enclosing transaction when ctx already carries one.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Generic row helpers shared by the four tables.

func createRow[M any](tx *gorm.DB, m *M) error {
	return tx.Omit(clause.Associations).Create(m).Error
}

func saveRow[M any](tx *gorm.DB, m *M) error {
	return tx.Omit("CreatedAt", clause.Associations).Save(m).Error
}

func deleteRow[M any](tx *gorm.DB, id uint) error {
	var m M
	return tx.Delete(&m, id).Error
}

func getRow[M any](tx *gorm.DB, id uint) (*M, error) {
	var m M
	if err := tx.First(&m, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

func existsRow[M any](tx *gorm.DB, query string, args ...any) (bool, error) {
	var m M
	var n int64
	if err := tx.Model(&m).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func listRows[M any](tx *gorm.DB) ([]*M, error) {
	var arr []*M
	if err := tx.Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func findByName[M any](tx *gorm.DB, name string) (*M, error) {
	var m M
	if err := tx.Where("name = ?", name).First(&m).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", dom.ErrRecordNotFound, err)
	}
	return err
}

// Developers

func (r *Repo) CreateDeveloper(ctx context.Context, d *Developer) error {
	return createRow(r.conn(ctx), d)
}
func (r *Repo) UpdateDeveloper(ctx context.Context, d *Developer) error {
	d.UpdatedAt = time.Now()
	return saveRow(r.conn(ctx), d)
}
func (r *Repo) DeleteDeveloper(ctx context.Context, id uint) error {
	return deleteRow[Developer](r.conn(ctx), id)
}
func (r *Repo) GetDeveloper(ctx context.Context, id uint) (*Developer, error) {
	return getRow[Developer](r.conn(ctx), id)
}
func (r *Repo) DeveloperExists(ctx context.Context, id uint) (bool, error) {
	return existsRow[Developer](r.conn(ctx), "id = ?", id)
}
func (r *Repo) ListDevelopers(ctx context.Context) ([]*Developer, error) {
	return listRows[Developer](r.conn(ctx))
}
func (r *Repo) FindDeveloperByName(ctx context.Context, name string) (*Developer, error) {
	return findByName[Developer](r.conn(ctx), name)
}
func (r *Repo) DeveloperNameExists(ctx context.Context, name string) (bool, error) {
	return existsRow[Developer](r.conn(ctx), "name = ?", name)
}

// Publishers

func (r *Repo) CreatePublisher(ctx context.Context, p *Publisher) error {
	return createRow(r.conn(ctx), p)
}
func (r *Repo) UpdatePublisher(ctx context.Context, p *Publisher) error {
	p.UpdatedAt = time.Now()
	return saveRow(r.conn(ctx), p)
}
func (r *Repo) DeletePublisher(ctx context.Context, id uint) error {
	return deleteRow[Publisher](r.conn(ctx), id)
}
func (r *Repo) GetPublisher(ctx context.Context, id uint) (*Publisher, error) {
	return getRow[Publisher](r.conn(ctx), id)
}
func (r *Repo) PublisherExists(ctx context.Context, id uint) (bool, error) {
	return existsRow[Publisher](r.conn(ctx), "id = ?", id)
}
func (r *Repo) ListPublishers(ctx context.Context) ([]*Publisher, error) {
	return listRows[Publisher](r.conn(ctx))
}
func (r *Repo) FindPublisherByName(ctx context.Context, name string) (*Publisher, error) {
	return findByName[Publisher](r.conn(ctx), name)
}
func (r *Repo) PublisherNameExists(ctx context.Context, name string) (bool, error) {
	return existsRow[Publisher](r.conn(ctx), "name = ?", name)
}

// Genres

func (r *Repo) CreateGenre(ctx context.Context, g *Genre) error {
	return createRow(r.conn(ctx), g)
}
func (r *Repo) UpdateGenre(ctx context.Context, g *Genre) error {
	g.UpdatedAt = time.Now()
	return saveRow(r.conn(ctx), g)
}
func (r *Repo) DeleteGenre(ctx context.Context, id uint) error {
	return deleteRow[Genre](r.conn(ctx), id)
}
func (r *Repo) GetGenre(ctx context.Context, id uint) (*Genre, error) {
	return getRow[Genre](r.conn(ctx), id)
}
func (r *Repo) GenreExists(ctx context.Context, id uint) (bool, error) {
	return existsRow[Genre](r.conn(ctx), "id = ?", id)
}
func (r *Repo) ListGenres(ctx context.Context) ([]*Genre, error) {
	return listRows[Genre](r.conn(ctx))
}
func (r *Repo) FindGenreByName(ctx context.Context, name string) (*Genre, error) {
	return findByName[Genre](r.conn(ctx), name)
}
func (r *Repo) GenreNameExists(ctx context.Context, name string) (bool, error) {
	return existsRow[Genre](r.conn(ctx), "name = ?", name)
}

// Video games

// games preloads the three referenced rows.
func (r *Repo) games(ctx context.Context) *gorm.DB {
	return r.conn(ctx).Preload("Developer").Preload("Publisher").Preload("Genre")
}

func (r *Repo) CreateGame(ctx context.Context, g *VideoGame) error {
	return createRow(r.conn(ctx), g)
}
func (r *Repo) UpdateGame(ctx context.Context, g *VideoGame) error {
	g.UpdatedAt = time.Now()
	return saveRow(r.conn(ctx), g)
}
func (r *Repo) DeleteGame(ctx context.Context, id uint) error {
	return deleteRow[VideoGame](r.conn(ctx), id)
}
func (r *Repo) GetGame(ctx context.Context, id uint) (*VideoGame, error) {
	return getRow[VideoGame](r.games(ctx), id)
}
func (r *Repo) GameExists(ctx context.Context, id uint) (bool, error) {
	return existsRow[VideoGame](r.conn(ctx), "id = ?", id)
}

// ListGames returns games in storage order, narrowed by optional where clauses.
func (r *Repo) ListGames(ctx context.Context, where ...func(*gorm.DB) *gorm.DB) ([]*VideoGame, error) {
	var arr []*VideoGame
	if err := r.games(ctx).Scopes(where...).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) CountGames(ctx context.Context, column string, id uint) (int64, error) {
	var n int64
	if err := r.conn(ctx).Model(&VideoGame{}).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func whereEq(column string, v any) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB { return tx.Where(column+" = ?", v) }
}

func wherePriceBetween(min, max int64) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB { return tx.Where("price_cents BETWEEN ? AND ?", min, max) }
}

func whereTitleContains(fragment string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(fragment) + "%"
	return func(tx *gorm.DB) *gorm.DB { return tx.Where("LOWER(title) LIKE ?", pattern) }
}
