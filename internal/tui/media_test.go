// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestOpenMediaFile(t *testing.T) {
	t.Run("audio", func(t *testing.T) {
		h, err := openMediaFile("  " + writeFile(t, "call.MP3", []byte("ID3...")) + " ")
		require.NoError(t, err)

		media := h.Media()
		assert.Equal(t, "call.MP3", media.Name)
		assert.Equal(t, "audio/mpeg", media.MIMEType)
		assert.Equal(t, models.MediaAudio, media.Type())
		assert.Equal(t, []byte("ID3..."), media.Data)

		h.Release()
		assert.Nil(t, h.Media().Data)
	})

	t.Run("video", func(t *testing.T) {
		h, err := openMediaFile(writeFile(t, "demo.mov", []byte("\x00\x00\x00\x14ftypqt  \x00\x00\x00\x00qt  ")))
		require.NoError(t, err)
		assert.Equal(t, "video/quicktime", h.Media().MIMEType)
		assert.Equal(t, models.MediaVideo, h.Media().Type())
	})

	t.Run("without an extension", func(t *testing.T) {
		h, err := openMediaFile(writeFile(t, "recording", []byte("ID3\x03\x00\x00\x00\x00")))
		require.NoError(t, err)
		assert.Equal(t, "audio/mpeg", h.Media().MIMEType)
	})

	t.Run("text file is rejected", func(t *testing.T) {
		_, err := openMediaFile(writeFile(t, "notes", []byte("just some notes")))
		assert.ErrorIs(t, err, workspace.ErrNotMedia)
	})

	// расширение не важно, тип определяется по содержимому
	t.Run("text file with an audio extension is rejected", func(t *testing.T) {
		_, err := openMediaFile(writeFile(t, "notes.mp3", []byte("just some notes")))
		assert.ErrorIs(t, err, workspace.ErrNotMedia)
		assert.Contains(t, errorText(err), "neither audio nor video")
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := openMediaFile("   ")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := openMediaFile(filepath.Join(t.TempDir(), "nope.wav"))
		assert.ErrorIs(t, err, ErrMediaUnreadable)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := openMediaFile(t.TempDir())
		assert.ErrorIs(t, err, ErrMediaUnreadable)
	})
}
