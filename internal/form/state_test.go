package form_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adinvoice/internal/domain"
	"adinvoice/internal/form"
)

func newForm() form.State {
	return form.New(form.Defaults{HomeState: "Chhattisgarh", GSTRate: 18, Terms: "Net 30"})
}

func withItems(t *testing.T, s form.State, n int) (form.State, []uuid.UUID) {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		var id uuid.UUID
		s, id = s.AddItem()
		ids = append(ids, id)
	}
	return s, ids
}

func TestNew_DefaultRate(t *testing.T) {
	s := form.New(form.Defaults{})
	assert.Equal(t, 18.0, s.GSTRate)
	assert.False(t, s.Interstate)
	assert.Empty(t, s.Items)
}

func TestAddRemove_Renumbers(t *testing.T) {
	s, ids := withItems(t, newForm(), 3)
	require.Len(t, s.Items, 3)
	for i, it := range s.Items {
		assert.Equal(t, i+1, it.SequenceNumber)
	}

	s, err := s.RemoveItem(ids[0])
	require.NoError(t, err)
	require.Len(t, s.Items, 2)
	assert.Equal(t, ids[1], s.Items[0].ID)
	assert.Equal(t, 1, s.Items[0].SequenceNumber)
	assert.Equal(t, 2, s.Items[1].SequenceNumber)

	_, err = s.RemoveItem(uuid.New())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUpdates_DoNotMutateReceiver(t *testing.T) {
	before, ids := withItems(t, newForm(), 1)
	after, err := before.SetItemField(ids[0], form.FieldTown, "Raipur")
	require.NoError(t, err)

	assert.Equal(t, "", before.Items[0].Town)
	assert.Equal(t, "Raipur", after.Items[0].Town)

	removed, err := after.RemoveItem(ids[0])
	require.NoError(t, err)
	assert.Empty(t, removed.Items)
	assert.Len(t, after.Items, 1)
}

func TestSetItemField(t *testing.T) {
	t.Run("rate_change_derives_period_and_amount", func(t *testing.T) {
		s := newForm().SetStartDate("2024-01-01").SetDuration("45")
		s, ids := withItems(t, s, 1)

		s, err := s.SetItemField(ids[0], form.FieldMonthlyRate, "30000")
		require.NoError(t, err)
		assert.Equal(t, "01/01/2024 to 14/02/2024", s.Items[0].Period)
		assert.Equal(t, int64(45000), s.Items[0].Amount)
	})

	t.Run("manual_amount_and_period", func(t *testing.T) {
		s, ids := withItems(t, newForm(), 1)
		s, err := s.SetItemField(ids[0], form.FieldAmount, "12,345.6")
		require.NoError(t, err)
		s, err = s.SetItemField(ids[0], form.FieldPeriod, "Jan 2024")
		require.NoError(t, err)
		assert.Equal(t, int64(12346), s.Items[0].Amount)
		assert.Equal(t, "Jan 2024", s.Items[0].Period)
	})

	t.Run("unparseable_amount_is_zero", func(t *testing.T) {
		s, ids := withItems(t, newForm(), 1)
		s, err := s.SetItemField(ids[0], form.FieldAmount, "n/a")
		require.NoError(t, err)
		assert.Equal(t, int64(0), s.Items[0].Amount)
	})

	t.Run("unknown_item", func(t *testing.T) {
		_, err := newForm().SetItemField(uuid.New(), form.FieldTown, "x")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("unknown_field", func(t *testing.T) {
		s, ids := withItems(t, newForm(), 1)
		_, err := s.SetItemField(ids[0], form.ItemField("colour"), "red")
		assert.ErrorIs(t, err, domain.ErrInvalidForm)
	})
}

func TestGlobalDates_RederiveEveryItem(t *testing.T) {
	s, ids := withItems(t, newForm(), 2)
	var err error
	s, err = s.SetItemField(ids[0], form.FieldMonthlyRate, "30000")
	require.NoError(t, err)
	s, err = s.SetItemField(ids[1], form.FieldMonthlyRate, "15000")
	require.NoError(t, err)

	s = s.SetStartDate("2024-03-01").SetDuration("60")
	assert.Equal(t, "01/03/2024 to 29/04/2024", s.Items[0].Period)
	assert.Equal(t, "01/03/2024 to 29/04/2024", s.Items[1].Period)
	assert.Equal(t, int64(60000), s.Items[0].Amount)
	assert.Equal(t, int64(30000), s.Items[1].Amount)

	s = s.SetDuration("15")
	assert.Equal(t, int64(15000), s.Items[0].Amount)
	assert.Equal(t, int64(7500), s.Items[1].Amount)
}

func TestDerivation_Idempotent(t *testing.T) {
	s, ids := withItems(t, newForm(), 3)
	var err error
	for i, id := range ids {
		s, err = s.SetItemField(id, form.FieldMonthlyRate, []string{"10000", "7777", "1,23,456"}[i])
		require.NoError(t, err)
	}
	s = s.SetStartDate("2024-06-10").SetDuration("47")

	again := s.SetStartDate("2024-06-10").SetDuration("47")
	assert.Equal(t, s.Items, again.Items)

	rate := s.Items[1].MonthlyRate
	again, err = again.SetItemField(ids[1], form.FieldMonthlyRate, rate)
	require.NoError(t, err)
	assert.Equal(t, s.Items, again.Items)
}

func TestSetGSTIN(t *testing.T) {
	t.Run("resolves_state_and_interstate", func(t *testing.T) {
		s := newForm().SetGSTIN("27aapfu0939f1zv")
		assert.Equal(t, "27AAPFU0939F1ZV", s.Party.GSTIN)
		assert.Equal(t, "Maharashtra", s.Party.State)
		assert.True(t, s.Interstate)
	})

	t.Run("home_state_is_intrastate", func(t *testing.T) {
		s := newForm().SetGSTIN("27AAPFU0939F1ZV").SetGSTIN("22AKJPD0941N4Z8")
		assert.Equal(t, "Chhattisgarh", s.Party.State)
		assert.False(t, s.Interstate)
	})

	t.Run("unknown_prefix_keeps_state", func(t *testing.T) {
		s := newForm().SetPartyState("Goa").SetGSTIN("25XXXXX0000X1Z1")
		assert.Equal(t, "Goa", s.Party.State)
		assert.Equal(t, "25XXXXX0000X1Z1", s.Party.GSTIN)
	})

	t.Run("manual_state_overrides_until_next_gstin", func(t *testing.T) {
		s := newForm().SetGSTIN("27AAPFU0939F1ZV").SetPartyState("Chhattisgarh")
		assert.Equal(t, "Chhattisgarh", s.Party.State)
		assert.False(t, s.Interstate)

		s = s.SetGSTIN("29AAACI1681G1ZK")
		assert.Equal(t, "Karnataka", s.Party.State)
		assert.True(t, s.Interstate)
	})
}

func TestSetInterstate_CheckboxWinsOnceTouched(t *testing.T) {
	s := newForm().SetGSTIN("27AAPFU0939F1ZV")
	require.True(t, s.Interstate)

	s = s.SetInterstate(false)
	assert.False(t, s.Interstate)
	assert.True(t, s.InterstateTouched)

	s = s.SetGSTIN("29AAACI1681G1ZK").SetPartyState("Kerala")
	assert.False(t, s.Interstate)
	assert.Equal(t, "Kerala", s.Party.State)
}

func TestSetParty_KeepsGSTINAndState(t *testing.T) {
	s := newForm().SetGSTIN("27AAPFU0939F1ZV")
	s = s.SetParty(domain.BillingParty{Name: "Acme", City: "Pune", GSTIN: "ignored", State: "ignored"})
	assert.Equal(t, "Acme", s.Party.Name)
	assert.Equal(t, "Pune", s.Party.City)
	assert.Equal(t, "27AAPFU0939F1ZV", s.Party.GSTIN)
	assert.Equal(t, "Maharashtra", s.Party.State)
}
