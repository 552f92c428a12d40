package cart

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// LineRecord is the persisted shape of a cart line.
type LineRecord struct {
	ProductID      string    `gorm:"column:product_id;primaryKey"`
	ModelName      string    `gorm:"column:model_name;not null"`
	ImageURL       string    `gorm:"column:image_url"`
	Condition      string    `gorm:"column:condition"`
	UnitPriceCents int       `gorm:"column:unit_price_cents;not null"`
	Quantity       int       `gorm:"column:quantity;not null"`
	LineTotalCents int       `gorm:"column:line_total_cents;not null"`
	Position       int       `gorm:"column:position;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the snapshot table name.
func (LineRecord) TableName() string {
	return "cart_lines"
}

// Repository persists cart snapshots between sessions. This is a convenience
// collaborator, not a correctness requirement of the store.
type Repository interface {
	Replace(ctx context.Context, lines []Line) error
	Load(ctx context.Context) ([]Line, error)
	Clear(ctx context.Context) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a snapshot repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Migrate creates the snapshot table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&LineRecord{})
}

// Replace swaps the persisted snapshot for the given lines atomically.
func (r *repositoryImpl) Replace(ctx context.Context, lines []Line) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&LineRecord{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		records := make([]LineRecord, 0, len(lines))
		for i, line := range lines {
			records = append(records, LineRecord{
				ProductID:      line.ProductID,
				ModelName:      line.ModelName,
				ImageURL:       line.ImageURL,
				Condition:      line.Condition,
				UnitPriceCents: line.UnitPriceCents,
				Quantity:       line.Quantity,
				LineTotalCents: line.LineTotalCents,
				Position:       i,
			})
		}
		return tx.Create(&records).Error
	})
}

// Load returns the persisted snapshot in insertion order.
func (r *repositoryImpl) Load(ctx context.Context) ([]Line, error) {
	var records []LineRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(records))
	for _, rec := range records {
		lines = append(lines, Line{
			ProductID:      rec.ProductID,
			ModelName:      rec.ModelName,
			ImageURL:       rec.ImageURL,
			Condition:      rec.Condition,
			UnitPriceCents: rec.UnitPriceCents,
			Quantity:       rec.Quantity,
			LineTotalCents: rec.LineTotalCents,
		})
	}
	return lines, nil
}

// Clear drops the persisted snapshot.
func (r *repositoryImpl) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&LineRecord{}).Error
}
