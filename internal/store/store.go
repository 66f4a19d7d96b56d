// Package store is the terminal's local state, standing in for the browser's
// localStorage: the signed-in session, a cached catalog snapshot for quick
// picker startup, and held (parked) order drafts. It is client-local state,
// not a business database; the backend owns all real persistence.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/thuysan/seapos/internal/config"
	"github.com/thuysan/seapos/internal/models"
	"github.com/thuysan/seapos/internal/pos"
	"github.com/thuysan/seapos/internal/session"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

type Store struct {
	db *gorm.DB
}

type sessionRow struct {
	ID        uint `gorm:"primaryKey"`
	Token     string
	UserJSON  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (sessionRow) TableName() string { return "sessions" }

type catalogRow struct {
	ID        uint `gorm:"primaryKey"`
	Snapshot  string
	FetchedAt time.Time
}

func (catalogRow) TableName() string { return "catalog_cache" }

type heldDraftRow struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Label     string
	Payload   string
	CreatedAt time.Time
}

func (heldDraftRow) TableName() string { return "held_drafts" }

// Open connects the terminal store. An empty DSN means an embedded sqlite
// file under the state dir; a postgres DSN points shared terminals at one
// store. Migrations run on every open.
func Open(cfg config.StoreConfig) (*Store, error) {
	var dialector gorm.Dialector
	switch {
	case IsPostgresDSN(cfg.DSN):
		dialector = postgres.Open(NormalizePostgresDSN(cfg.DSN))
	case cfg.DSN != "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		dir := cfg.StateDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve state dir: %w", err)
			}
			dir = filepath.Join(home, ".local", "state", "seapos")
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
		dialector = sqlite.Open(filepath.Join(dir, "seapos.db"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.AutoMigrate(&sessionRow{}, &catalogRow{}, &heldDraftRow{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveSession upserts the single session row.
func (s *Store) SaveSession(sess *session.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	row := sessionRow{
		ID:        1,
		Token:     sess.Token,
		UserJSON:  string(userJSON),
		IssuedAt:  sess.IssuedAt,
		ExpiresAt: sess.ExpiresAt,
	}
	return s.db.Save(&row).Error
}

// LoadSession returns the stored session or ErrNotFound.
func (s *Store) LoadSession() (*session.Session, error) {
	var row sessionRow
	if err := s.db.First(&row, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(row.UserJSON), &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &session.Session{
		Token:     row.Token,
		User:      user,
		IssuedAt:  row.IssuedAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// ClearSession signs the terminal out.
func (s *Store) ClearSession() error {
	return s.db.Delete(&sessionRow{}, 1).Error
}

// SaveCatalog caches the product snapshot after a refresh.
func (s *Store) SaveCatalog(products []models.Product) error {
	snap, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	row := catalogRow{ID: 1, Snapshot: string(snap), FetchedAt: time.Now()}
	return s.db.Save(&row).Error
}

// LoadCatalog returns the cached snapshot and when it was fetched, or
// ErrNotFound when the terminal has never synced.
func (s *Store) LoadCatalog() ([]models.Product, time.Time, error) {
	var row catalogRow
	if err := s.db.First(&row, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, ErrNotFound
		}
		return nil, time.Time{}, err
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(row.Snapshot), &products); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode catalog: %w", err)
	}
	return products, row.FetchedAt, nil
}

// draftPayload is the serialized form of a parked draft.
type draftPayload struct {
	CustomerPhone   string     `json:"customer_phone"`
	CustomerName    string     `json:"customer_name"`
	CustomerAddress string     `json:"customer_address"`
	PaymentMethod   string     `json:"payment_method"`
	PaymentStatus   string     `json:"payment_status"`
	Discount        float64    `json:"discount"`
	Notes           string     `json:"notes"`
	IdempotencyKey  string     `json:"idempotency_key"`
	Lines           []pos.Line `json:"lines"`
}

// HeldDraft is a listing entry for parked orders.
type HeldDraft struct {
	ID        string
	Label     string
	CreatedAt time.Time
}

// HoldDraft parks the current order so the counter can serve someone else
// and come back to it. Returns the recall ID.
func (s *Store) HoldDraft(d *pos.Draft, label string) (string, error) {
	payload := draftPayload{
		CustomerPhone:   d.CustomerPhone,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   d.PaymentStatus,
		Discount:        d.Discount,
		Notes:           d.Notes,
		IdempotencyKey:  d.IdempotencyKey,
		Lines:           d.Cart.Lines(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode draft: %w", err)
	}
	row := heldDraftRow{ID: uuid.NewString(), Label: label, Payload: string(body)}
	if err := s.db.Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

// ListHeldDrafts returns parked orders, oldest first.
func (s *Store) ListHeldDrafts() ([]HeldDraft, error) {
	var rows []heldDraftRow
	if err := s.db.Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]HeldDraft, 0, len(rows))
	for _, r := range rows {
		out = append(out, HeldDraft{ID: r.ID, Label: r.Label, CreatedAt: r.CreatedAt})
	}
	return out, nil
}

// RecallDraft removes a parked order from the store and rebuilds it,
// idempotency key included, so a recalled draft still cannot double-submit.
func (s *Store) RecallDraft(id string) (*pos.Draft, error) {
	var row heldDraftRow
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var payload draftPayload
	if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	if err := s.db.Delete(&heldDraftRow{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	d := pos.NewDraft()
	d.CustomerPhone = payload.CustomerPhone
	d.CustomerName = payload.CustomerName
	d.CustomerAddress = payload.CustomerAddress
	d.PaymentMethod = payload.PaymentMethod
	d.PaymentStatus = payload.PaymentStatus
	d.Discount = payload.Discount
	d.Notes = payload.Notes
	d.IdempotencyKey = payload.IdempotencyKey
	d.Cart = pos.NewCartFromLines(payload.Lines)
	return d, nil
}
