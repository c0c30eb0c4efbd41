package uploads

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"carmarket-bff/internal/marketerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestMaxSizeReader(t *testing.T) {
	tests := []struct {
		name       string
		input      []byte
		maxSize    int64
		wantN      int
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:    "below_limit",
			input:   []byte("hello"),
			maxSize: 10,
			wantN:   5,
		},
		{
			name:    "exactly_limit",
			input:   []byte("hello"),
			maxSize: 5,
			wantN:   5,
		},
		{
			name:       "over_limit",
			input:      []byte("hello world"),
			maxSize:    5,
			wantN:      5,
			wantErr:    true,
			wantErrMsg: "image exceeds the limit of 5 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMaxSizeReader(bytes.NewReader(tt.input), tt.maxSize)
			buf := make([]byte, len(tt.input))
			n, err := reader.Read(buf)

			assert.Equal(t, tt.wantN, n)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				var limitErr *ReachLimitError
				assert.True(t, errors.As(err, &limitErr))
			} else {
				assert.True(t, err == nil || err == io.EOF)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "500 bytes", formatBytes(500))
	assert.Equal(t, "2.00 KB", formatBytes(2<<10))
	assert.Equal(t, "5.00 MB", formatBytes(DefaultMaxBytes))
	assert.Equal(t, "4.00 GB", formatBytes(4<<30))
}

func TestCheckImage(t *testing.T) {
	tests := []struct {
		mime    string
		wantExt string
		wantOK  bool
	}{
		{mime: "image/jpeg", wantExt: "jpg", wantOK: true},
		{mime: "image/png", wantExt: "png", wantOK: true},
		{mime: "image/webp", wantExt: "webp", wantOK: true},
		{mime: "image/svg+xml", wantOK: false},
		{mime: "text/html", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			ext, ok := CheckImage(tt.mime)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestReadImage(t *testing.T) {
	data, mime, err := ReadImage(bytes.NewReader(pngHeader), 1024)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, pngHeader, data)

	_, _, err = ReadImage(strings.NewReader("<script>alert(1)</script>"), 1024)
	require.ErrorIs(t, err, marketerrors.ErrUnsupportedImg)

	_, _, err = ReadImage(bytes.NewReader(append(pngHeader, make([]byte, 64)...)), 16)
	var limitErr *ReachLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, int64(16), limitErr.MaxBytes)
}

func TestPreviews_Lifecycle(t *testing.T) {
	p := NewPreviews()

	a := p.Stage("session-a", "front.png", "image/png", pngHeader)
	b := p.Stage("session-a", "back.png", "image/png", pngHeader)
	c := p.Stage("session-b", "side.png", "image/png", pngHeader)
	require.Equal(t, 3, p.Len())
	assert.True(t, IsHandle(a.Handle))
	assert.NotEqual(t, a.Handle, b.Handle)
	assert.Equal(t, len(pngHeader), a.Size)

	got, err := p.Get("session-a", a.Handle)
	require.NoError(t, err)
	assert.Equal(t, "front.png", got.Filename)

	// other sessions cannot see the handle
	_, err = p.Get("session-b", a.Handle)
	require.ErrorIs(t, err, marketerrors.ErrPreviewMissing)
	require.ErrorIs(t, p.Revoke("session-b", a.Handle), marketerrors.ErrPreviewMissing)

	require.NoError(t, p.Revoke("session-a", a.Handle))
	require.ErrorIs(t, p.Revoke("session-a", a.Handle), marketerrors.ErrPreviewMissing)

	assert.Equal(t, 1, p.RevokeAll("session-a"))
	assert.Equal(t, 0, p.RevokeAll("session-a"))
	assert.Equal(t, 1, p.Len())

	_, err = p.Get("session-b", c.Handle)
	require.NoError(t, err)
}

func TestPreviews_CapEvictsOldest(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	p := NewPreviews(WithMaxPerOwner(3))
	p.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	var handles []string
	for i := 0; i < 5; i++ {
		handles = append(handles, p.Stage("session-a", "img.png", "image/png", pngHeader).Handle)
	}
	other := p.Stage("session-b", "img.png", "image/png", pngHeader)
	require.Equal(t, 4, p.Len())

	for _, h := range handles[:2] {
		_, err := p.Get("session-a", h)
		require.ErrorIs(t, err, marketerrors.ErrPreviewMissing, "oldest previews are evicted")
	}
	for _, h := range handles[2:] {
		_, err := p.Get("session-a", h)
		require.NoError(t, err)
	}
	_, err := p.Get("session-b", other.Handle)
	require.NoError(t, err, "the cap is per session")
}

func TestPreviews_TTL(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	p := NewPreviews(WithPreviewTTL(time.Minute))
	p.now = func() time.Time { return now }

	old := p.Stage("session-a", "old.png", "image/png", pngHeader)

	now = now.Add(30 * time.Second)
	fresh := p.Stage("session-b", "fresh.png", "image/png", pngHeader)

	now = now.Add(45 * time.Second)
	_, err := p.Get("session-a", old.Handle)
	require.ErrorIs(t, err, marketerrors.ErrPreviewMissing)
	_, err = p.Get("session-b", fresh.Handle)
	require.NoError(t, err)

	assert.Equal(t, 1, p.Prune())
	assert.Equal(t, 1, p.Len())

	// staging also drops expired previews of other sessions
	now = now.Add(time.Minute)
	p.Stage("session-c", "new.png", "image/png", pngHeader)
	assert.Equal(t, 1, p.Len())
}

func TestIsHandle(t *testing.T) {
	assert.False(t, IsHandle("preview:not-a-uuid"))
	assert.False(t, IsHandle("b1f6f8f0-6d2a-4c55-8c0e-3f1f0b9d2a11"))
	assert.True(t, IsHandle("preview:b1f6f8f0-6d2a-4c55-8c0e-3f1f0b9d2a11"))
}
