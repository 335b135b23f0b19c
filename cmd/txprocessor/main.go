package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/sachinparyani/TransactionProcessor/internal/config"
	"github.com/sachinparyani/TransactionProcessor/internal/csvio"
	"github.com/sachinparyani/TransactionProcessor/internal/engine"
	"github.com/sachinparyani/TransactionProcessor/internal/events"
	"github.com/sachinparyani/TransactionProcessor/internal/events/kafka"
	interfaces "github.com/sachinparyani/TransactionProcessor/internal/interfaces"
	"github.com/sachinparyani/TransactionProcessor/internal/processor"
	"github.com/sachinparyani/TransactionProcessor/internal/storage/postgres"
)

func main() {
	log.SetOutput(os.Stderr)

	if len(os.Args) != 2 {
		log.Fatal("usage: txprocessor <transactions.csv>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("opening transaction file: %v", err)
	}
	defer f.Close()

	var publisher interfaces.EventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
	}

	var store interfaces.SnapshotStore
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("opening database: %v", err)
		}
		defer db.Close()
		store = postgres.NewPostgresSnapshotStore(db)
	}

	proc := processor.New(engine.New(), publisher, store)

	if err := proc.Run(context.Background(), csvio.NewReader(f)); err != nil {
		log.Fatalf("processing transactions: %v", err)
	}

	if err := csvio.WriteSnapshot(os.Stdout, proc.Snapshot()); err != nil {
		log.Fatalf("writing snapshot: %v", err)
	}
}
