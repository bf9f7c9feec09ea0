package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"sparkle/internal/config"
	"sparkle/internal/database"
	"sparkle/internal/mailer"
	"sparkle/internal/server"
	"sparkle/internal/store"
)

func main() {
	log := logrus.New()
	cfg := config.Load(log)

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB, log)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	defer client.Disconnect(context.Background())

	m := &mailer.Mailer{
		Host:   cfg.SMTPHost,
		Port:   cfg.SMTPPort,
		User:   cfg.SMTPUser,
		Pass:   cfg.SMTPPass,
		From:   cfg.EmailFrom,
		AppURL: cfg.AppURL,
		Log:    log,
	}

	srv := server.NewServer(cfg, store.NewMongoUserStore(db), store.NewMongoProductStore(db), m, log)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
