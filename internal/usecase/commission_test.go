package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRevenue(t *testing.T) {
	testCases := []struct {
		name           string
		revenue        string
		percent        string
		wantCommission string
		wantVendor     string
	}{
		{"even split", "100.00", "10", "10.00", "90.00"},
		{"zero rate", "100.00", "0", "0.00", "100.00"},
		{"full rate", "100.00", "100", "100.00", "0.00"},
		{"zero revenue", "0.00", "10", "0.00", "0.00"},
		{"rounds half up", "99.99", "2.5", "2.50", "97.49"},
		{"sub cent commission", "0.01", "10", "0.00", "0.01"},
		{"fractional rate", "33.33", "7.5", "2.50", "30.83"},
		{"single cent full rate", "0.01", "100", "0.01", "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			commission, vendor := SplitRevenue(dec(tc.revenue), dec(tc.percent))
			assert.True(t, commission.Equal(dec(tc.wantCommission)), "commission = %s, want %s", commission, tc.wantCommission)
			assert.True(t, vendor.Equal(dec(tc.wantVendor)), "vendor = %s, want %s", vendor, tc.wantVendor)
		})
	}
}

func TestSplitRevenue_NeverNegativeVendorAmount(t *testing.T) {
	commission, vendor := SplitRevenue(dec("10.00"), dec("150"))
	assert.True(t, commission.Equal(dec("15.00")))
	assert.True(t, vendor.IsZero())
}
