package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/charge"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPackage(t *testing.T) shipment.Package {
	t.Helper()
	pkg, err := shipment.NewPackage(15, 0.5, "São Paulo, SP", "Rio de Janeiro, RJ", shipment.ZoneRegional)
	require.NoError(t, err)
	return pkg
}

func TestNewQuoteShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	pkg := newPackage(t)
	addOns := charge.NewAddOnSet(charge.AddOnToll)

	cmd, err := commands.NewQuoteShipmentCommand(id, pkg, pricing.SelectorByWeight, carrier.TierExpress, addOns)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.RequestID())
	assert.Equal(t, pkg, cmd.Package())
	assert.Equal(t, pricing.SelectorByWeight, cmd.Selector())
	assert.Equal(t, carrier.TierExpress, cmd.Tier())
	assert.True(t, cmd.AddOns().Has(charge.AddOnToll))
}

func TestNewQuoteShipmentCommand_UnknownKeysAreAccepted(t *testing.T) {
	_, err := commands.NewQuoteShipmentCommand(kernel.NewUUID(), newPackage(t),
		pricing.SelectorUnknown, carrier.TierUnknown, charge.AddOnSet{})

	require.NoError(t, err)
}

func TestNewQuoteShipmentCommand_InvalidRequestID(t *testing.T) {
	_, err := commands.NewQuoteShipmentCommand(kernel.UUID{}, newPackage(t),
		pricing.SelectorByZone, carrier.TierStandard, charge.AddOnSet{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewQuoteShipmentCommand_InvalidPackage(t *testing.T) {
	_, err := commands.NewQuoteShipmentCommand(kernel.NewUUID(), shipment.Package{},
		pricing.SelectorByZone, carrier.TierStandard, charge.AddOnSet{})

	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrPackageIsNotConstructed)
}

func TestQuoteShipmentCommand_ZeroValue(t *testing.T) {
	var cmd commands.QuoteShipmentCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrQuoteShipmentCommandIsNotConstructed)
}
