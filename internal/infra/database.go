package infra

import (
	"fmt"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// to create / update all tables, then applies idempotent SQL patches that
// GORM cannot express (partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Restaurant{},
		&model.User{},
		&model.Menu{},
		&model.Category{},
		&model.Product{},
		&model.Ingredient{},
		&model.Utensil{},
		&model.Recipe{},
		&model.IngredientGroup{},
		&model.GroupItem{},
		&model.IngredientLine{},
		&model.RecipeVariant{},
		&model.DishOfTheDay{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
// Each statement uses IF NOT EXISTS semantics so re-running on an already
// patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// One Active featured entry per product. The qualifier's advisory
		// pre-check is not enough under concurrency; this index makes the
		// check-then-create race fail safely with a unique violation.
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'dish_of_the_day')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uniq_dish_active_product') THEN
		    CREATE UNIQUE INDEX uniq_dish_active_product
		        ON dish_of_the_day (product_id)
		        WHERE status = 'Active';
		  END IF;
		END $$`,
		// Line lookups by recipe drive both cost reports; plain index
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'recipe_ingredient_lines')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_lines_recipe') THEN
		    CREATE INDEX idx_lines_recipe
		        ON recipe_ingredient_lines (recipe_id);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
