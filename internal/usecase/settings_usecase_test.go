package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUpdateCommissionPercent_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		percent string
		wantErr bool
	}{
		{"negative rejected", "-1", true},
		{"above hundred rejected", "100.01", true},
		{"zero allowed", "0", false},
		{"hundred allowed", "100", false},
		{"typical rate", "12.5", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memSettingsRepo{percent: dec("10")}
			uc := NewDefaultSettingsUsecase(repo)

			err := uc.UpdateCommissionPercent(dec(tc.percent))
			if tc.wantErr {
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, codes.InvalidArgument, st.Code())
				assert.Empty(t, repo.updated)
				return
			}

			require.NoError(t, err)
			require.Len(t, repo.updated, 1)
			assert.True(t, repo.updated[0].Equal(dec(tc.percent)))
		})
	}
}

func TestGetCommissionPercent_ReadsRepo(t *testing.T) {
	uc := NewDefaultSettingsUsecase(&memSettingsRepo{percent: dec("7.25")})

	percent, err := uc.GetCommissionPercent()
	require.NoError(t, err)
	assert.True(t, percent.Equal(dec("7.25")))
}
