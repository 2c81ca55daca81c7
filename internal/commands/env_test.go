package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbank-dev/pocketbank/internal/bank"
	"github.com/pocketbank-dev/pocketbank/internal/config"
	"github.com/pocketbank-dev/pocketbank/internal/logging"
)

func TestNewEnv_PendingHoldFromConfig(t *testing.T) {
	tests := []struct {
		hold string
		want string
	}{
		{"0", "Available $8,332.18"},
		{"161.14", "Available $8,171.04"},
		{"1000", "Available $7,332.18"},
	}
	for _, tt := range tests {
		t.Run(tt.hold, func(t *testing.T) {
			cfg := config.Default()
			cfg.Transfer.PendingHold = tt.hold

			e, err := newEnvWithLogger(cfg, logging.Discard())
			require.NoError(t, err)

			_, ok := e.state.Transfer(bank.TransferIntent{SourceID: "acct-checking", PayeeID: "payee-1", Amount: "120.00"})
			require.True(t, ok)
			acct, _ := e.state.Account("acct-checking")
			assert.Equal(t, tt.want, acct.Subtitle)
		})
	}
}
