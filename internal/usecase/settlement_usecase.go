package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/giftora/settlement-service/internal/domain"
	publisher "github.com/giftora/settlement-service/internal/infrastructure/kafka"
	"github.com/giftora/settlement-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SettlementResult struct {
	Processed int      `json:"processed"`
	Errors    []string `json:"errors,omitempty"`
}

type SettlementUsecase interface {
	RunSettlementPass(ctx context.Context) (*SettlementResult, error)
}

type DefaultSettlementUsecase struct {
	VendorOrderRepo domain.VendorOrderRepository
	OrderRepo       domain.OrderRepository
	StoreRepo       domain.StoreRepository
	SettingsRepo    domain.SettingsRepository
	Attribution     AttributionUsecase
	TransferClient  domain.TransferClient
	Publisher       publisher.PayoutPublisher
	Metrics         *metrics.SettlementMetrics
	Topic           string

	Cooldown         time.Duration
	MinTransferMinor int64
	Currency         string

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func NewDefaultSettlementUsecase(
	vendorOrderRepo domain.VendorOrderRepository,
	orderRepo domain.OrderRepository,
	storeRepo domain.StoreRepository,
	settingsRepo domain.SettingsRepository,
	attribution AttributionUsecase,
	transferClient domain.TransferClient,
	payoutPublisher publisher.PayoutPublisher,
	settlementMetrics *metrics.SettlementMetrics,
	topic string,
	cooldown time.Duration,
	minTransferMinor int64,
	currency string,
) *DefaultSettlementUsecase {
	return &DefaultSettlementUsecase{
		VendorOrderRepo:  vendorOrderRepo,
		OrderRepo:        orderRepo,
		StoreRepo:        storeRepo,
		SettingsRepo:     settingsRepo,
		Attribution:      attribution,
		TransferClient:   transferClient,
		Publisher:        payoutPublisher,
		Metrics:          settlementMetrics,
		Topic:            topic,
		Cooldown:         cooldown,
		MinTransferMinor: minTransferMinor,
		Currency:         currency,
	}
}

func (uc *DefaultSettlementUsecase) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now()
}

// RunSettlementPass settles every delivered, payout-pending vendor order whose
// cooldown has elapsed. Vendor orders are processed sequentially and
// independently: a failure is recorded in the result and never aborts the rest
// of the batch.
//
// Transfers are at-most-once by preference. Amounts are locked in before the
// processor is called, and the paid/failed transitions are guarded on the row
// still being pending, so re-running the pass cannot double-pay. The one
// accepted window: a crash after a successful transfer but before the paid
// transition leaves the vendor order pending, and a later pass may transfer
// again — that case is reconciled manually on the processor side.
func (uc *DefaultSettlementUsecase) RunSettlementPass(ctx context.Context) (*SettlementResult, error) {
	start := time.Now()
	cutoff := uc.now().Add(-uc.Cooldown)

	eligible, err := uc.VendorOrderRepo.FindPayoutEligible(cutoff)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to select payout-eligible vendor orders: %v", err)
	}

	result := &SettlementResult{}
	for _, vendorOrder := range eligible {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("pass aborted: %v", ctx.Err()))
			break
		}
		if err := uc.settleOne(ctx, vendorOrder); err != nil {
			slog.Error("vendor order settlement failed", "vendor_order_id", vendorOrder.ID, "error", err.Error())
			result.Errors = append(result.Errors, fmt.Sprintf("vendor order %s: %v", vendorOrder.ID, err))
			continue
		}
		result.Processed++
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordPass(time.Since(start).Seconds())
	}
	slog.Info("settlement pass finished", "eligible", len(eligible), "processed", result.Processed, "errors", len(result.Errors))

	return result, nil
}

func (uc *DefaultSettlementUsecase) settleOne(ctx context.Context, vendorOrder *domain.VendorOrder) error {
	commission, vendor, err := uc.resolveAmounts(vendorOrder)
	if err != nil {
		return err
	}

	account, err := uc.StoreRepo.GetConnectedAccount(vendorOrder.StoreID)
	if err != nil {
		if errors.Is(err, domain.ErrNoConnectedAccount) || errors.Is(err, domain.ErrStoreNotFound) {
			// Terminal until an operator reconnects the account. Amounts are
			// already locked in so the liability stays visible.
			if failErr := uc.VendorOrderRepo.MarkFailed(vendorOrder.ID, commission, vendor); failErr != nil {
				return failErr
			}
			uc.publishOutcome(vendorOrder, commission, vendor, domain.PayoutStatusFailed, "", err.Error())
			if uc.Metrics != nil {
				uc.Metrics.RecordFailed(vendorOrder.StoreID, "no_connected_account")
			}
			return fmt.Errorf("store %s has no connected payout account", vendorOrder.StoreID)
		}
		return err
	}

	// Order lookup is best-effort: a missing parent order must not block
	// settlement of amounts already computed from its items.
	orderNumber := vendorOrder.OrderID
	orderTotal := commission.Add(vendor)
	if order, orderErr := uc.OrderRepo.GetOrderByID(vendorOrder.OrderID); orderErr == nil {
		orderNumber = order.Number
		orderTotal = order.Total
	}

	vendorMinor := vendor.Shift(2).IntPart()
	if vendorMinor < uc.MinTransferMinor {
		// Below the processor minimum: settle without a transfer. This is a
		// business rule, not an optimization.
		if err := uc.finalizePaid(vendorOrder, commission, vendor, "", orderNumber, orderTotal); err != nil {
			return err
		}
		if uc.Metrics != nil {
			uc.Metrics.BelowMinimumSkippedTotal.Inc()
		}
		return nil
	}

	transferStart := time.Now()
	transfer, err := uc.TransferClient.CreateTransfer(ctx, domain.TransferRequest{
		AmountMinor: vendorMinor,
		Currency:    uc.Currency,
		Destination: account,
		Description: fmt.Sprintf("Payout for order %s", orderNumber),
	})
	if uc.Metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		uc.Metrics.RecordTransferDuration(outcome, time.Since(transferStart).Seconds())
	}
	if err != nil {
		if failErr := uc.VendorOrderRepo.MarkFailed(vendorOrder.ID, commission, vendor); failErr != nil {
			return failErr
		}
		uc.publishOutcome(vendorOrder, commission, vendor, domain.PayoutStatusFailed, "", err.Error())
		if uc.Metrics != nil {
			uc.Metrics.RecordFailed(vendorOrder.StoreID, "provider_error")
		}
		return fmt.Errorf("transfer failed: %v", err)
	}

	return uc.finalizePaid(vendorOrder, commission, vendor, transfer.TransferID, orderNumber, orderTotal)
}

// resolveAmounts reuses persisted amounts when present; the current commission
// rate only ever applies to vendor orders that have never been computed.
func (uc *DefaultSettlementUsecase) resolveAmounts(vendorOrder *domain.VendorOrder) (decimal.Decimal, decimal.Decimal, error) {
	if vendorOrder.HasPersistedAmounts() {
		return *vendorOrder.CommissionAmount, *vendorOrder.VendorAmount, nil
	}

	percent, err := uc.SettingsRepo.GetCommissionPercent()
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to read commission percent: %w", err)
	}

	revenue, err := uc.Attribution.StoreRevenue(vendorOrder.OrderID, vendorOrder.StoreID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	commission, vendor := SplitRevenue(revenue, percent)

	// Lock the split in before any transfer so a retry after a crash reuses
	// the same figures instead of recomputing under a possibly-changed rate.
	if err := uc.VendorOrderRepo.SaveAmounts(vendorOrder.ID, commission, vendor); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return commission, vendor, nil
}

func (uc *DefaultSettlementUsecase) finalizePaid(
	vendorOrder *domain.VendorOrder,
	commission, vendor decimal.Decimal,
	transferID, orderNumber string,
	orderTotal decimal.Decimal,
) error {
	paidAt := uc.now()

	receiptGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}

	receipt := &domain.PayoutRecord{
		ID:               uuid.New().String(),
		ReceiptNumber:    receiptGenerator(),
		VendorOrderID:    vendorOrder.ID,
		OrderID:          vendorOrder.OrderID,
		OrderNumber:      orderNumber,
		StoreID:          vendorOrder.StoreID,
		VendorID:         vendorOrder.VendorID,
		OrderTotal:       orderTotal,
		CommissionAmount: commission,
		VendorAmount:     vendor,
		TransferID:       transferID,
		PaidAt:           paidAt,
		CreatedAt:        paidAt,
	}

	if err := uc.VendorOrderRepo.MarkPaid(vendorOrder.ID, commission, vendor, paidAt, transferID, receipt); err != nil {
		return err
	}

	uc.publishOutcome(vendorOrder, commission, vendor, domain.PayoutStatusPaid, transferID, "")
	if uc.Metrics != nil {
		vendorAmount, _ := vendor.Float64()
		commissionAmount, _ := commission.Float64()
		uc.Metrics.RecordSettled(vendorOrder.StoreID, uc.Currency, vendorAmount, commissionAmount)
	}
	slog.Info("vendor order settled",
		"vendor_order_id", vendorOrder.ID,
		"vendor_amount", vendor.String(),
		"commission_amount", commission.String(),
		"transfer_id", transferID,
	)

	return nil
}

func (uc *DefaultSettlementUsecase) publishOutcome(
	vendorOrder *domain.VendorOrder,
	commission, vendor decimal.Decimal,
	payoutStatus domain.PayoutStatus,
	transferID, reason string,
) {
	if uc.Publisher == nil {
		return
	}

	go func(event publisher.PayoutEvent) {
		if err := uc.Publisher.PublishPayout(uc.Topic, event); err != nil {
			slog.Error("failed to publish PayoutEvent", "error", err.Error())
		}
	}(publisher.PayoutEvent{
		VendorOrderID:    vendorOrder.ID,
		OrderID:          vendorOrder.OrderID,
		StoreID:          vendorOrder.StoreID,
		VendorID:         vendorOrder.VendorID,
		PayoutStatus:     string(payoutStatus),
		CommissionAmount: commission.String(),
		VendorAmount:     vendor.String(),
		Currency:         uc.Currency,
		TransferID:       transferID,
		Reason:           reason,
	})
}
