package assets_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adinvoice/internal/assets"
	"adinvoice/internal/config"
	"adinvoice/internal/domain"
	"adinvoice/internal/draw"
	"adinvoice/mocks"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 8))
	for x := 0; x < 40; x++ {
		img.Set(x, 4, color.RGBA{R: 176, G: 28, B: 46, A: 255})
	}
	return img
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(), nil))
	return buf.Bytes()
}

func testCompany() config.CompanyConfig {
	return config.CompanyConfig{
		Name:       "SHREE GANESH ADVERTISING",
		Tagline:    "Outdoor Media",
		Address:    []string{"Shop No. 12, Pandri Main Road", "Raipur, Chhattisgarh - 492001"},
		Phone:      "+91 98261 00000",
		Email:      "accounts@example.in",
		Website:    "www.example.in",
		GSTIN:      "22AKJPD0941N4Z8",
		PAN:        "AKJPD0941N",
		Membership: "Member: Indian Outdoor Advertising Association",
	}
}

func assetsCfg() config.AssetsConfig {
	return config.AssetsConfig{Header: "header-image.jpg", Footer: "footer-image.jpg"}
}

func newResolver(src *mocks.MockAssetSource, logs *bytes.Buffer) *assets.Resolver {
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return assets.NewResolver(src, assetsCfg(), testCompany(), logger)
}

func TestResolve_Images(t *testing.T) {
	src := new(mocks.MockAssetSource)
	src.On("Fetch", mock.Anything, "header-image.jpg").Return(jpegBytes(t), nil)
	src.On("Fetch", mock.Anything, "footer-image.jpg").Return(pngBytes(t), nil)

	var logs bytes.Buffer
	got := newResolver(src, &logs).Resolve(context.Background())

	require.NotNil(t, got.Header)
	assert.True(t, got.Header.IsImage())
	assert.Equal(t, "JPG", got.Header.Format)
	assert.Equal(t, "PNG", got.Footer.Format)
	assert.Empty(t, got.Footer.Fallback)
	assert.NotContains(t, logs.String(), "level=WARN")
	src.AssertExpectations(t)
}

func TestResolve_FallbackOnFailure(t *testing.T) {
	src := new(mocks.MockAssetSource)
	src.On("Fetch", mock.Anything, "header-image.jpg").Return(nil, domain.ErrAssetNotFound)
	src.On("Fetch", mock.Anything, "footer-image.jpg").Return([]byte("not an image"), nil)
	src.On("Location").Return("file://assets")

	var logs bytes.Buffer
	got := newResolver(src, &logs).Resolve(context.Background())

	assert.False(t, got.Header.IsImage())
	assert.NotEmpty(t, got.Header.Fallback)
	assert.False(t, got.Footer.IsImage())
	assert.NotEmpty(t, got.Footer.Fallback)
	assert.Equal(t, 2, bytes.Count(logs.Bytes(), []byte("level=WARN")))
	assert.Contains(t, logs.String(), "header-image.jpg")
}

func TestResolve_NilSource(t *testing.T) {
	r := assets.NewResolver(nil, assetsCfg(), testCompany(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	got := r.Resolve(context.Background())
	assert.NotEmpty(t, got.Header.Fallback)
	assert.NotEmpty(t, got.Footer.Fallback)
}

func TestFallback_DeterministicAndSized(t *testing.T) {
	a := assets.HeaderFallback(testCompany(), 194, 36)
	b := assets.HeaderFallback(testCompany(), 194, 36)
	assert.Equal(t, a, b)

	require.NotEmpty(t, a)
	assert.Equal(t, draw.OpRect, a[0].Kind)
	assert.Equal(t, draw.Box{W: 194, H: 36}, a[0].Box)

	var texts []string
	for _, op := range a {
		if op.Kind == draw.OpText {
			texts = append(texts, op.Text)
		}
	}
	assert.Contains(t, texts, "SHREE GANESH ADVERTISING")
	assert.Contains(t, texts, "Shop No. 12, Pandri Main Road")

	footer := assets.FooterFallback(testCompany(), 194, 20)
	assert.Equal(t, draw.Box{W: 194, H: 20}, footer[0].Box)
	var membership bool
	for _, op := range footer {
		if op.Kind == draw.OpTextBlock && op.Text == testCompany().Membership {
			membership = true
		}
	}
	assert.True(t, membership)
}

func png16Bytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA64(image.Rect(0, 0, 40, 8))
	for x := 0; x < 40; x++ {
		img.Set(x, 4, color.NRGBA64{R: 0xB0B0, G: 0x1C1C, B: 0x2E2E, A: 0xFFFF})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResolve_UndrawableImageFallsBack(t *testing.T) {
	src := new(mocks.MockAssetSource)
	src.On("Fetch", mock.Anything, "header-image.jpg").Return(png16Bytes(t), nil)
	src.On("Fetch", mock.Anything, "footer-image.jpg").Return(pngBytes(t), nil)
	src.On("Location").Return("file://assets")

	var logs bytes.Buffer
	got := newResolver(src, &logs).Resolve(context.Background())

	assert.False(t, got.Header.IsImage())
	assert.NotEmpty(t, got.Header.Fallback)
	assert.True(t, got.Footer.IsImage())
	assert.Equal(t, 1, bytes.Count(logs.Bytes(), []byte("level=WARN")))
}

func TestDetectFormat(t *testing.T) {
	f, err := assets.DetectFormat(pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "PNG", f)

	_, err = assets.DetectFormat([]byte("GIF89a"))
	assert.True(t, errors.Is(err, domain.ErrAssetUnreadable))

	_, err = assets.DetectFormat(png16Bytes(t))
	assert.True(t, errors.Is(err, domain.ErrAssetUnreadable))
}
