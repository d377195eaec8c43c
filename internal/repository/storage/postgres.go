package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PostgresStorage struct {
	Connection *gorm.DB
}

func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("can't get database handle: %w", err)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &PostgresStorage{Connection: conn}, nil
}

func (that *PostgresStorage) Close() error {
	sqlDB, err := that.Connection.DB()
	if err != nil {
		return fmt.Errorf("can't get database handle: %w", err)
	}

	return sqlDB.Close()
}

func (that *PostgresStorage) Ping(ctx context.Context) error {
	sqlDB, err := that.Connection.DB()
	if err != nil {
		return fmt.Errorf("can't get database handle: %w", err)
	}

	return sqlDB.PingContext(ctx)
}
