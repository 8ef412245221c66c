package config

import (
	"os"
	"strconv"

	"balneario-backend/services"
	"balneario-backend/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads the .env file, if any, into the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found")
	}
}

// OpenStore builds the record store selected by STORE_DRIVER. The file
// backend is the default; it matches the local, single-session persistence
// model the application is designed around.
func OpenStore() store.Store {
	driver := os.Getenv("STORE_DRIVER")
	switch driver {
	case "", "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		st, err := store.NewFileStore(dir)
		if err != nil {
			logrus.WithError(err).Panic("failed to open file store")
		}
		return st
	case "memory":
		return store.NewMemoryStore()
	case "postgres":
		st, err := store.NewPostgresStore(os.Getenv("DB_URL"))
		if err != nil {
			logrus.WithError(err).Panic("failed to open postgres store")
		}
		return st
	case "redis":
		db := 0
		if v := os.Getenv("REDIS_DB"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				db = n
			}
		}
		st, err := store.NewRedisStore(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), db)
		if err != nil {
			logrus.WithError(err).Panic("failed to open redis store")
		}
		return st
	default:
		logrus.Panicf("unknown STORE_DRIVER %q", driver)
		return nil
	}
}

// CapacityMax returns the per-slot capacity override, or 0 to use the
// default.
func CapacityMax() int {
	v := os.Getenv("SLOT_CAPACITY")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logrus.Warnf("ignoring invalid SLOT_CAPACITY %q", v)
		return 0
	}
	return n
}

// Prices returns the configured price list, falling back to the defaults
// for any price left unset.
func Prices() services.PriceList {
	prices := services.DefaultPriceList
	if v, ok := price("PRICE_ADULT"); ok {
		prices.Adult = v
	}
	if v, ok := price("PRICE_CHILD"); ok {
		prices.Child = v
	}
	if v, ok := price("PRICE_SENIOR"); ok {
		prices.Senior = v
	}
	return prices
}

func price(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		logrus.Warnf("ignoring invalid %s %q", key, v)
		return 0, false
	}
	return f, true
}

// SeedDemo reports whether demo records should be loaded on startup.
func SeedDemo() bool {
	return os.Getenv("SEED_DEMO") == "true"
}
