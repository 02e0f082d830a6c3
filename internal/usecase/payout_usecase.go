package usecase

import (
	"errors"
	"strings"

	"github.com/giftora/settlement-service/internal/domain"
	payoutdto "github.com/giftora/settlement-service/internal/usecase/dto/payout"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultPageSize = 20

type PayoutUsecase interface {
	GetVendorPayouts(vendorID string) (*payoutdto.VendorPayoutsOutput, error)
	GetAdminPayouts(input *payoutdto.AdminPayoutsInput) (*payoutdto.AdminPayoutsOutput, error)
	GetVendorOrder(id string) (*payoutdto.AdminPayout, error)
}

// DefaultPayoutUsecase is the read side of the ledger. It never writes:
// amounts for vendor orders that have not been settled yet are computed for
// display only and are not persisted here.
type DefaultPayoutUsecase struct {
	VendorOrderRepo  domain.VendorOrderRepository
	PayoutRecordRepo domain.PayoutRecordRepository
	OrderRepo        domain.OrderRepository
	StoreRepo        domain.StoreRepository
	SettingsRepo     domain.SettingsRepository
	Attribution      AttributionUsecase
	MaxPageSize      int
}

func NewDefaultPayoutUsecase(
	vendorOrderRepo domain.VendorOrderRepository,
	payoutRecordRepo domain.PayoutRecordRepository,
	orderRepo domain.OrderRepository,
	storeRepo domain.StoreRepository,
	settingsRepo domain.SettingsRepository,
	attribution AttributionUsecase,
	maxPageSize int,
) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{
		VendorOrderRepo:  vendorOrderRepo,
		PayoutRecordRepo: payoutRecordRepo,
		OrderRepo:        orderRepo,
		StoreRepo:        storeRepo,
		SettingsRepo:     settingsRepo,
		Attribution:      attribution,
		MaxPageSize:      maxPageSize,
	}
}

func (uc *DefaultPayoutUsecase) GetVendorPayouts(vendorID string) (*payoutdto.VendorPayoutsOutput, error) {
	pendingOrders, err := uc.VendorOrderRepo.FindPendingByVendorID(vendorID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to fetch pending payouts: %v", err)
	}

	percent, err := uc.SettingsRepo.GetCommissionPercent()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to read commission percent: %v", err)
	}

	storeCache := map[string]*domain.Store{}
	pending := make([]payoutdto.PendingPayout, 0, len(pendingOrders))
	for _, vendorOrder := range pendingOrders {
		commission, vendor, err := uc.displayAmounts(vendorOrder, percent)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to compute amounts for vendor order %s: %v", vendorOrder.ID, err)
		}

		orderNumber, orderTotal := uc.orderInfo(vendorOrder.OrderID, commission.Add(vendor))
		store := uc.lookupStore(storeCache, vendorOrder.StoreID)

		pending = append(pending, payoutdto.PendingPayout{
			VendorOrderID:    vendorOrder.ID,
			OrderID:          vendorOrder.OrderID,
			OrderNumber:      orderNumber,
			StoreID:          vendorOrder.StoreID,
			StoreName:        store.Name,
			OrderTotal:       orderTotal,
			CommissionAmount: commission,
			VendorAmount:     vendor,
			DeliveredAt:      vendorOrder.DeliveredAt,
		})
	}

	records, err := uc.PayoutRecordRepo.FindByVendorID(vendorID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to fetch payout history: %v", err)
	}

	received := make([]payoutdto.ReceivedPayout, len(records))
	for i, record := range records {
		received[i] = payoutdto.ReceivedPayout{
			VendorOrderID:    record.VendorOrderID,
			OrderID:          record.OrderID,
			OrderNumber:      record.OrderNumber,
			ReceiptNumber:    record.ReceiptNumber,
			OrderTotal:       record.OrderTotal,
			CommissionAmount: record.CommissionAmount,
			VendorAmount:     record.VendorAmount,
			TransferID:       record.TransferID,
			PaidAt:           record.PaidAt,
		}
	}

	return &payoutdto.VendorPayoutsOutput{
		Pending:  pending,
		Received: received,
	}, nil
}

func (uc *DefaultPayoutUsecase) GetAdminPayouts(input *payoutdto.AdminPayoutsInput) (*payoutdto.AdminPayoutsOutput, error) {
	statusFilter := strings.ToUpper(input.Status)
	switch statusFilter {
	case "", "ALL", string(domain.PayoutStatusPending), string(domain.PayoutStatusPaid), string(domain.PayoutStatusFailed):
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown payout status filter: %s", input.Status)
	}

	vendorOrders, err := uc.VendorOrderRepo.FindDelivered()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to fetch vendor orders: %v", err)
	}

	percent, err := uc.SettingsRepo.GetCommissionPercent()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to read commission percent: %v", err)
	}

	// Amounts need item-level joins, so filtering happens over the full
	// computed set rather than at the storage layer.
	storeCache := map[string]*domain.Store{}
	rows := make([]payoutdto.AdminPayout, 0, len(vendorOrders))
	for _, vendorOrder := range vendorOrders {
		commission, vendor, err := uc.displayAmounts(vendorOrder, percent)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to compute amounts for vendor order %s: %v", vendorOrder.ID, err)
		}

		orderNumber, orderTotal := uc.orderInfo(vendorOrder.OrderID, commission.Add(vendor))
		store := uc.lookupStore(storeCache, vendorOrder.StoreID)

		row := payoutdto.AdminPayout{
			VendorOrderID:    vendorOrder.ID,
			OrderID:          vendorOrder.OrderID,
			OrderNumber:      orderNumber,
			StoreID:          vendorOrder.StoreID,
			StoreName:        store.Name,
			VendorID:         vendorOrder.VendorID,
			VendorName:       store.VendorName,
			PayoutStatus:     string(vendorOrder.PayoutStatus),
			OrderTotal:       orderTotal,
			CommissionAmount: commission,
			VendorAmount:     vendor,
			DeliveredAt:      vendorOrder.DeliveredAt,
			PayoutAt:         vendorOrder.PayoutAt,
			TransferID:       vendorOrder.TransferID,
		}

		if statusFilter != "" && statusFilter != "ALL" && row.PayoutStatus != statusFilter {
			continue
		}
		if input.Search != "" && !containsFold(row.StoreName, input.Search) && !containsFold(row.VendorName, input.Search) {
			continue
		}
		if input.StoreName != "" && !containsFold(row.StoreName, input.StoreName) {
			continue
		}
		if input.VendorName != "" && !containsFold(row.VendorName, input.VendorName) {
			continue
		}

		rows = append(rows, row)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPageSize
	}
	if perPage > uc.MaxPageSize {
		perPage = uc.MaxPageSize
	}

	total := int64(len(rows))
	offset := (page - 1) * perPage
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + perPage
	if end > len(rows) {
		end = len(rows)
	}

	return &payoutdto.AdminPayoutsOutput{
		Payouts: rows[offset:end],
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (uc *DefaultPayoutUsecase) GetVendorOrder(id string) (*payoutdto.AdminPayout, error) {
	vendorOrder, err := uc.VendorOrderRepo.GetVendorOrderByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrVendorOrderNotFound) {
			return nil, status.Errorf(codes.NotFound, "vendor order %s not found", id)
		}
		return nil, status.Errorf(codes.Internal, "failed to fetch vendor order: %v", err)
	}

	percent, err := uc.SettingsRepo.GetCommissionPercent()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to read commission percent: %v", err)
	}

	commission, vendor, err := uc.displayAmounts(vendorOrder, percent)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to compute amounts: %v", err)
	}

	orderNumber, orderTotal := uc.orderInfo(vendorOrder.OrderID, commission.Add(vendor))
	store, err := uc.StoreRepo.GetStoreByID(vendorOrder.StoreID)
	if err != nil {
		store = &domain.Store{ID: vendorOrder.StoreID}
	}

	return &payoutdto.AdminPayout{
		VendorOrderID:    vendorOrder.ID,
		OrderID:          vendorOrder.OrderID,
		OrderNumber:      orderNumber,
		StoreID:          vendorOrder.StoreID,
		StoreName:        store.Name,
		VendorID:         vendorOrder.VendorID,
		VendorName:       store.VendorName,
		PayoutStatus:     string(vendorOrder.PayoutStatus),
		OrderTotal:       orderTotal,
		CommissionAmount: commission,
		VendorAmount:     vendor,
		DeliveredAt:      vendorOrder.DeliveredAt,
		PayoutAt:         vendorOrder.PayoutAt,
		TransferID:       vendorOrder.TransferID,
	}, nil
}

// displayAmounts prefers persisted figures; unsettled vendor orders get a
// display-only computation under the current rate.
func (uc *DefaultPayoutUsecase) displayAmounts(vendorOrder *domain.VendorOrder, percent decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if vendorOrder.HasPersistedAmounts() {
		return *vendorOrder.CommissionAmount, *vendorOrder.VendorAmount, nil
	}

	revenue, err := uc.Attribution.StoreRevenue(vendorOrder.OrderID, vendorOrder.StoreID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	commission, vendor := SplitRevenue(revenue, percent)
	return commission, vendor, nil
}

func (uc *DefaultPayoutUsecase) orderInfo(orderID string, fallbackTotal decimal.Decimal) (string, decimal.Decimal) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return orderID, fallbackTotal
	}
	return order.Number, order.Total
}

func (uc *DefaultPayoutUsecase) lookupStore(cache map[string]*domain.Store, storeID string) *domain.Store {
	if store, ok := cache[storeID]; ok {
		return store
	}
	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		store = &domain.Store{ID: storeID}
	}
	cache[storeID] = store
	return store
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
