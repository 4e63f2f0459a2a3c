package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adinvoice/internal/gst"
)

func TestCalculate(t *testing.T) {
	t.Run("standard_rate", func(t *testing.T) {
		b := gst.Calculate(1000, 18)
		assert.Equal(t, gst.Breakdown{CGST: 90, SGST: 90, IGST: 180, Total: 1180}, b)
	})

	t.Run("intrastate_and_interstate_agree", func(t *testing.T) {
		b := gst.Calculate(1000, 18)
		cgst, sgst, igst := b.Apply(false)
		assert.Equal(t, int64(0), igst)
		intra := cgst + sgst

		cgst, sgst, igst = b.Apply(true)
		assert.Equal(t, int64(0), cgst+sgst)
		assert.Equal(t, intra, igst)
	})

	t.Run("rounds_amount_first", func(t *testing.T) {
		b := gst.Calculate(999.6, 18)
		// 1000 * 18% = 180
		assert.Equal(t, int64(180), b.IGST)
		assert.Equal(t, int64(1180), b.Total)
	})

	t.Run("rounds_tax", func(t *testing.T) {
		b := gst.Calculate(1234, 18)
		// 222.12 -> 222
		assert.Equal(t, int64(222), b.IGST)
		assert.Equal(t, int64(111), b.CGST)
		assert.Equal(t, int64(111), b.SGST)
		assert.Equal(t, int64(1456), b.Total)
	})

	t.Run("odd_tax_halves_round_up", func(t *testing.T) {
		b := gst.Calculate(1005, 18)
		// 180.9 -> 181; 90.5 -> 91 each
		assert.Equal(t, int64(181), b.IGST)
		assert.Equal(t, b.CGST, b.SGST)
		assert.Equal(t, int64(91), b.CGST)
	})

	t.Run("custom_rate", func(t *testing.T) {
		b := gst.Calculate(2000, 5)
		assert.Equal(t, int64(100), b.IGST)
		assert.Equal(t, int64(50), b.CGST)
	})

	t.Run("zero_amount", func(t *testing.T) {
		assert.Equal(t, gst.Breakdown{}, gst.Calculate(0, 18))
	})

	t.Run("negative_amount_no_tax", func(t *testing.T) {
		b := gst.Calculate(-500, 18)
		assert.Equal(t, int64(0), b.IGST)
		assert.Equal(t, int64(0), b.CGST)
		assert.Equal(t, int64(-500), b.Total)
	})
}
