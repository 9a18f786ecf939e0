package cron

import (
	"context"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/labstack/gommon/log"

	"storefront-voting/constant"
	"storefront-voting/db"
	"storefront-voting/services"
)

const snapshotTimeout = 30 * time.Second

// LogLeaderboard writes the current top postal codes to the log.
func LogLeaderboard(store db.CounterStore, table string, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	records, err := store.Scan(ctx, table)
	if err != nil {
		logger.Errorj(log.JSON{"job": "leaderboard", "error": err.Error()})
		return
	}
	ranked := services.Rank(records)
	if len(ranked) > constant.LEADERBOARD_LOG_TOP {
		ranked = ranked[:constant.LEADERBOARD_LOG_TOP]
	}
	top := make([]log.JSON, 0, len(ranked))
	for _, rec := range ranked {
		top = append(top, log.JSON{"postal_code": rec.PostalCode.String(), "visit_count": rec.VisitCount})
	}
	logger.Infoj(log.JSON{"job": "leaderboard", "postal_codes": len(records), "top": top})
}

// Init blocks; run it in its own goroutine.
func Init(store db.CounterStore, table string, minutes int, logger *log.Logger) {
	x := gocron.NewScheduler()
	x.Every(uint64(minutes)).Minutes().Do(LogLeaderboard, store, table, logger)
	<-x.Start()
}
