package usecase

import (
	"testing"
	"time"

	"github.com/giftora/settlement-service/internal/domain"
	payoutdto "github.com/giftora/settlement-service/internal/usecase/dto/payout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newPayoutFixture() (*DefaultPayoutUsecase, *memVendorOrderRepo, *memPayoutRecordRepo) {
	deliveredA := settlementNow.Add(-10 * 24 * time.Hour)
	deliveredB := settlementNow.Add(-2 * 24 * time.Hour)
	paidAt := settlementNow.Add(-24 * time.Hour)
	commission := dec("10.00")
	vendor := dec("90.00")

	vendorOrderRepo := &memVendorOrderRepo{orders: []*domain.VendorOrder{
		{
			ID: "vo-paid", OrderID: "order-1", StoreID: "store-1", VendorID: "vendor-1",
			Status: domain.StatusDelivered, PayoutStatus: domain.PayoutStatusPaid,
			CommissionAmount: &commission, VendorAmount: &vendor,
			DeliveredAt: &deliveredA, PayoutAt: &paidAt, TransferID: "tr_1",
		},
		{
			ID: "vo-pending", OrderID: "order-2", StoreID: "store-2", VendorID: "vendor-2",
			Status: domain.StatusDelivered, PayoutStatus: domain.PayoutStatusPending,
			DeliveredAt: &deliveredB,
		},
		{
			ID: "vo-failed", OrderID: "order-3", StoreID: "store-1", VendorID: "vendor-1",
			Status: domain.StatusDelivered, PayoutStatus: domain.PayoutStatusFailed,
			CommissionAmount: &commission, VendorAmount: &vendor,
			DeliveredAt: &deliveredA,
		},
	}}

	recordRepo := &memPayoutRecordRepo{records: []*domain.PayoutRecord{
		{
			ID: "rec-1", ReceiptNumber: "RCPT123", VendorOrderID: "vo-paid", OrderID: "order-1",
			OrderNumber: "GFT-1001", StoreID: "store-1", VendorID: "vendor-1",
			OrderTotal: dec("100.00"), CommissionAmount: commission, VendorAmount: vendor,
			TransferID: "tr_1", PaidAt: paidAt,
		},
	}}

	uc := NewDefaultPayoutUsecase(
		vendorOrderRepo,
		recordRepo,
		&memOrderRepo{orders: map[string]*domain.Order{
			"order-1": {ID: "order-1", Number: "GFT-1001", Total: dec("100.00")},
			"order-2": {ID: "order-2", Number: "GFT-1002", Total: dec("40.00")},
			"order-3": {ID: "order-3", Number: "GFT-1003", Total: dec("100.00")},
		}},
		&memStoreRepo{stores: map[string]*domain.Store{
			"store-1": {ID: "store-1", VendorID: "vendor-1", VendorName: "Alice Crafts", Name: "Candle Corner"},
			"store-2": {ID: "store-2", VendorID: "vendor-2", VendorName: "Bob Gifts", Name: "Mug Mania"},
		}},
		&memSettingsRepo{percent: dec("10")},
		NewDefaultAttributionUsecase(&memOrderItemRepo{
			items: map[string][]*domain.OrderItem{
				"order-2": {
					{ID: "item-2", OrderID: "order-2", ProductID: strPtr("prod-2"), UnitPrice: dec("40.00"), Quantity: 1},
				},
			},
			owners: map[string]string{"item-2": "store-2"},
		}),
		100,
	)
	return uc, vendorOrderRepo, recordRepo
}

func TestGetVendorPayouts_SplitsPendingAndReceived(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetVendorPayouts("vendor-2")
	require.NoError(t, err)

	require.Len(t, output.Pending, 1)
	pending := output.Pending[0]
	assert.Equal(t, "vo-pending", pending.VendorOrderID)
	assert.Equal(t, "GFT-1002", pending.OrderNumber)
	assert.Equal(t, "Mug Mania", pending.StoreName)
	// Display amounts are computed under the current rate, not persisted.
	assert.True(t, pending.CommissionAmount.Equal(dec("4.00")), "commission = %s", pending.CommissionAmount)
	assert.True(t, pending.VendorAmount.Equal(dec("36.00")), "vendor = %s", pending.VendorAmount)

	assert.Empty(t, output.Received)
}

func TestGetVendorPayouts_ReceivedComesFromReceipts(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetVendorPayouts("vendor-1")
	require.NoError(t, err)

	assert.Empty(t, output.Pending)
	require.Len(t, output.Received, 1)
	received := output.Received[0]
	assert.Equal(t, "RCPT123", received.ReceiptNumber)
	assert.Equal(t, "tr_1", received.TransferID)
	assert.True(t, received.VendorAmount.Equal(dec("90.00")))
}

func TestGetAdminPayouts_RejectsUnknownStatus(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	_, err := uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{Status: "REFUNDED"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestGetAdminPayouts_StatusFilter(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{Status: "failed"})
	require.NoError(t, err)
	require.Len(t, output.Payouts, 1)
	assert.Equal(t, "vo-failed", output.Payouts[0].VendorOrderID)
	assert.Equal(t, int64(1), output.Total)
}

func TestGetAdminPayouts_AllStatusesByDefault(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{})
	require.NoError(t, err)
	assert.Len(t, output.Payouts, 3)
	assert.Equal(t, int64(3), output.Total)
}

func TestGetAdminPayouts_SearchMatchesStoreOrVendorName(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{Search: "mug"})
	require.NoError(t, err)
	require.Len(t, output.Payouts, 1)
	assert.Equal(t, "vo-pending", output.Payouts[0].VendorOrderID)

	output, err = uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{Search: "ALICE"})
	require.NoError(t, err)
	assert.Len(t, output.Payouts, 2)
}

func TestGetAdminPayouts_NameFilters(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{StoreName: "candle"})
	require.NoError(t, err)
	assert.Len(t, output.Payouts, 2)

	output, err = uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{VendorName: "bob"})
	require.NoError(t, err)
	require.Len(t, output.Payouts, 1)
	assert.Equal(t, "vendor-2", output.Payouts[0].VendorID)
}

func TestGetAdminPayouts_Pagination(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), output.Total)
	assert.Equal(t, 2, output.Page)
	assert.Len(t, output.Payouts, 1)

	// Past the last page is empty, not an error.
	output, err = uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{Page: 9, PerPage: 2})
	require.NoError(t, err)
	assert.Empty(t, output.Payouts)
}

func TestGetAdminPayouts_PerPageCapped(t *testing.T) {
	uc, _, _ := newPayoutFixture()
	uc.MaxPageSize = 2

	output, err := uc.GetAdminPayouts(&payoutdto.AdminPayoutsInput{PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, 2, output.PerPage)
	assert.Len(t, output.Payouts, 2)
}

func TestGetVendorOrder_NotFound(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	_, err := uc.GetVendorOrder("vo-missing")
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestGetVendorOrder_ReturnsPersistedAmounts(t *testing.T) {
	uc, _, _ := newPayoutFixture()

	output, err := uc.GetVendorOrder("vo-paid")
	require.NoError(t, err)
	assert.Equal(t, string(domain.PayoutStatusPaid), output.PayoutStatus)
	assert.Equal(t, "Alice Crafts", output.VendorName)
	assert.Equal(t, "tr_1", output.TransferID)
	assert.True(t, output.CommissionAmount.Equal(decimal.RequireFromString("10.00")))
}
