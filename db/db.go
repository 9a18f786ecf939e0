package db

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"

	"storefront-voting/config"
	"storefront-voting/constant"
	"storefront-voting/model"
)

// SQLStore keeps one row per postal code in a MySQL table.
// gorm v1 takes no context, so ctx arguments are not honoured here.
type SQLStore struct {
	db *gorm.DB
}

func OpenMySQL(configuration config.Configuration) (*SQLStore, error) {
	connectString := fmt.Sprintf("%s:%s@(%s:%s)/%s?charset=utf8&parseTime=True&loc=Local",
		configuration.DB_USERNAME, configuration.DB_PASSWORD, configuration.DB_HOST, configuration.DB_PORT, configuration.DB_NAME)
	conn, err := gorm.Open("mysql", connectString)
	if err != nil {
		return nil, fmt.Errorf("mysql connect: %w", err)
	}
	return NewSQLStore(conn), nil
}

func NewSQLStore(conn *gorm.DB) *SQLStore {
	return &SQLStore{db: conn}
}

func (s *SQLStore) Migrate(table string) error {
	return s.db.Table(table).AutoMigrate(&model.PostalCodeRecord{}).Error
}

// Increment upserts and reads back inside one transaction; the row lock taken
// by the upsert keeps the returned value ours until commit.
func (s *SQLStore) Increment(ctx context.Context, table string, postalCode model.PostalCode) (int64, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return 0, fmt.Errorf("mysql begin: %w", tx.Error)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, 1) ON DUPLICATE KEY UPDATE %s = %s + 1",
		tx.Dialect().Quote(table), constant.ATTR_POSTAL_CODE, constant.ATTR_VISIT_COUNT,
		constant.ATTR_VISIT_COUNT, constant.ATTR_VISIT_COUNT)
	if err := tx.Exec(sql, postalCode.String()).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("mysql upsert %s: %w", table, err)
	}

	record := model.PostalCodeRecord{}
	if err := tx.Table(table).Where(constant.ATTR_POSTAL_CODE+" = ?", postalCode.String()).First(&record).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("mysql read %s: %w", table, err)
	}
	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("mysql commit: %w", err)
	}
	return record.VisitCount, nil
}

func (s *SQLStore) Scan(ctx context.Context, table string) ([]model.PostalCodeRecord, error) {
	records := []model.PostalCodeRecord{}
	err := s.db.Table(table).Select(scanProjection).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("mysql scan %s: %w", table, err)
	}
	return records, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
