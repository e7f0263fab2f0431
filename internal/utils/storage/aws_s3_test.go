package storage

import (
	"testing"

	"barnmonitor-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestDetectAllowed(t *testing.T) {
	mtype, err := DetectAllowed(pngHeader, AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mtype.String())
	assert.Equal(t, ".png", mtype.Extension())

	_, err = DetectAllowed([]byte("just some text"), AllowImage...)
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)

	mtype, err = DetectAllowed([]byte("just some text"))
	require.NoError(t, err)
	assert.True(t, mtype.Is("text/plain"))
}

func TestPublicLinkRoundTrip(t *testing.T) {
	s := &awsS3{bucket: "barn", region: "us-east-1"}

	link := s.GetPublicLinkKey("animals/abc.png")
	assert.Equal(t, "https://barn.s3.us-east-1.amazonaws.com/animals/abc.png", link)
	assert.Equal(t, "animals/abc.png", s.GetObjectKeyFromLink(link))
	assert.Equal(t, "", s.GetObjectKeyFromLink("https://elsewhere.example.com/a.png"))
}
