// Command seed loads the fixture catalog and the default admin user
// into MySQL. Existing records are kept; seeding is idempotent.
package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"foodtruck/internal/config"
	"foodtruck/internal/db"
	"foodtruck/internal/fixture"
	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.WithError(err).Fatal("connect database")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Truck{},
		&model.QuoteRequest{},
		&model.ContactMessage{},
	); err != nil {
		logrus.WithError(err).Fatal("run migrations")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	trucks := repository.NewTruckRepository(gormDB)

	admin := fixture.DefaultAdmin()
	if _, err := users.FindByEmail(ctx, admin.Email); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logrus.WithError(err).Fatal("check admin user")
		}
		admin.ID = 0
		if err := users.Create(ctx, &admin); err != nil {
			logrus.WithError(err).Fatal("create admin user")
		}
		logrus.WithField("email", admin.Email).Info("admin user created")
	}

	seeded := 0
	for _, truck := range fixture.Trucks() {
		if _, err := trucks.FindByID(ctx, truck.ID); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			logrus.WithError(err).Fatal("check truck")
		}
		if err := trucks.Create(ctx, &truck); err != nil {
			logrus.WithError(err).WithField("title", truck.Title).Fatal("create truck")
		}
		seeded++
	}

	logrus.WithField("trucks", seeded).Info("seed complete")
}
