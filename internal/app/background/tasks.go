package background

import (
	"context"
	"log"
	"time"

	"github.com/giftora/settlement-service/internal/usecase"
)

type BackgroundTasks struct {
	SettlementUsecase usecase.SettlementUsecase
	PassInterval      time.Duration
}

func NewBackgroundTasks(settlementUC usecase.SettlementUsecase, passInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		SettlementUsecase: settlementUC,
		PassInterval:      passInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startSettlementPass(ctx)
}

func (bt *BackgroundTasks) startSettlementPass(ctx context.Context) {
	ticker := time.NewTicker(bt.PassInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := bt.SettlementUsecase.RunSettlementPass(ctx)
			if err != nil {
				log.Printf("Settlement pass error: %v\n", err)
				continue
			}
			if len(result.Errors) > 0 {
				log.Printf("Settlement pass: %d settled, %d errors: %v\n", result.Processed, len(result.Errors), result.Errors)
			}
		}
	}
}
