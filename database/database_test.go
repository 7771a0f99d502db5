package database_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"green-hash-api/database"
	"green-hash-api/database/dbtest"
	"green-hash-api/metrics"
	"green-hash-api/models"
)

func TestSeedMiningStats(t *testing.T) {
	dsn := dbtest.DSN(t)
	src := metrics.NewSynthetic(rand.NewSource(7))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	open := func() int64 {
		db, err := database.Open(database.Config{Driver: "sqlite", DSN: dsn})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to open the store : %v", dbtest.Failed, err)
		}
		defer func() {
			if err := database.Close(db); err != nil {
				t.Errorf("\t%s\tShould be able to close the store : %v", dbtest.Failed, err)
			}
		}()

		if _, err := database.Prepare(db, src, now); err != nil {
			t.Fatalf("\t%s\tShould be able to prepare the store : %v", dbtest.Failed, err)
		}

		var count int64
		if err := db.Model(&models.MiningStats{}).Count(&count).Error; err != nil {
			t.Fatalf("\t%s\tShould be able to count stats : %v", dbtest.Failed, err)
		}
		return count
	}

	t.Log("Given the need to seed the stats table exactly once.")
	{
		t.Logf("\tTest 0:\tWhen starting against an empty store.")
		{
			if got := open(); got != database.SeedRows {
				t.Fatalf("\t%s\tTest 0:\tShould seed %d rows : got %d", dbtest.Failed, database.SeedRows, got)
			}
			t.Logf("\t%s\tTest 0:\tShould seed %d rows.", dbtest.Success, database.SeedRows)
		}

		t.Logf("\tTest 1:\tWhen starting again against the same store.")
		{
			if got := open(); got != database.SeedRows {
				t.Fatalf("\t%s\tTest 1:\tShould keep %d rows : got %d", dbtest.Failed, database.SeedRows, got)
			}
			t.Logf("\t%s\tTest 1:\tShould not duplicate the seed.", dbtest.Success)
		}
	}
}

func TestSeedSpacing(t *testing.T) {
	db := dbtest.NewUnit(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	n, err := database.SeedMiningStats(db, metrics.NewSynthetic(rand.NewSource(1)), now)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to seed : %v", dbtest.Failed, err)
	}
	if n != database.SeedRows {
		t.Fatalf("\t%s\tShould report %d seeded rows : got %d", dbtest.Failed, database.SeedRows, n)
	}

	var rows []models.MiningStats
	if err := db.Order("timestamp DESC").Find(&rows).Error; err != nil {
		t.Fatalf("\t%s\tShould be able to read stats : %v", dbtest.Failed, err)
	}

	if !rows[0].Timestamp.Equal(now) {
		t.Fatalf("\t%s\tShould end the seed at now : got %v", dbtest.Failed, rows[0].Timestamp)
	}
	for i := 1; i < len(rows); i++ {
		if d := rows[i-1].Timestamp.Sub(rows[i].Timestamp); d != time.Hour {
			t.Fatalf("\t%s\tShould space snapshots an hour apart : got %v", dbtest.Failed, d)
		}
	}
	t.Logf("\t%s\tShould space seeded snapshots an hour apart.", dbtest.Success)

	n, err = database.SeedMiningStats(db, metrics.NewSynthetic(rand.NewSource(1)), now)
	if err != nil || n != 0 {
		t.Fatalf("\t%s\tShould skip seeding a non-empty table : n=%d err=%v", dbtest.Failed, n, err)
	}
	t.Logf("\t%s\tShould skip seeding a non-empty table.", dbtest.Success)
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := database.Open(database.Config{Driver: "mysql", DSN: "x"}); err == nil {
		t.Fatalf("\t%s\tShould reject an unsupported driver.", dbtest.Failed)
	}
	t.Logf("\t%s\tShould reject an unsupported driver.", dbtest.Success)
}

func TestClose(t *testing.T) {
	db, err := database.Open(database.Config{Driver: "sqlite", DSN: dbtest.DSN(t)})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to open the store : %v", dbtest.Failed, err)
	}

	if err := database.StatusCheck(context.Background(), db); err != nil {
		t.Fatalf("\t%s\tShould answer a ping while open : %v", dbtest.Failed, err)
	}
	if err := database.Close(db); err != nil {
		t.Fatalf("\t%s\tShould report a clean close : %v", dbtest.Failed, err)
	}
	if err := database.StatusCheck(context.Background(), db); err == nil {
		t.Fatalf("\t%s\tShould fail a ping once closed.", dbtest.Failed)
	}
	t.Logf("\t%s\tShould close the connection pool.", dbtest.Success)
}
