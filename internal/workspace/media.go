// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workspace

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-joycribe/internal/validators"
	"github.com/MKhiriev/go-joycribe/models"
)

// ErrNotMedia is returned when the content of a selected file is neither
// audio nor video.
var ErrNotMedia = fmt.Errorf("%w: file is neither audio nor video", validators.ErrValidation)

// oggContainer is reported for Ogg streams whose codec is not recognised.
const oggContainer = "application/ogg"

// DetectMedia builds the media for the file called name. The MIME type is
// sniffed from data; whatever type the caller was told about the file is
// ignored. Content that is not audio or video fails with [ErrNotMedia].
func DetectMedia(name string, data []byte) (models.Media, error) {
	mimeType := DetectMIME(data)
	if !IsMediaMIME(mimeType) {
		return models.Media{}, fmt.Errorf("%w: detected %s", ErrNotMedia, mimeType)
	}

	return models.Media{Name: name, MIMEType: mimeType, Data: data}, nil
}

// DetectMIME returns the sniffed MIME type of data without parameters.
func DetectMIME(data []byte) string {
	mimeType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return mimeType
}

// IsMediaMIME reports whether mimeType names audio or video content.
func IsMediaMIME(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/") ||
		strings.HasPrefix(mimeType, "video/") ||
		mimeType == oggContainer
}

// memoryMedia keeps uploaded media bytes in memory until released.
type memoryMedia struct {
	mu      sync.Mutex
	media   models.Media
	onClose func()
}

// NewMemoryMedia wraps media in a handle that drops its buffer on Release.
// onRelease, when not nil, runs once after the buffer is dropped.
func NewMemoryMedia(media models.Media, onRelease func()) MediaHandle {
	return &memoryMedia{media: media, onClose: onRelease}
}

func (m *memoryMedia) Media() models.Media {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.media
}

func (m *memoryMedia) Release() {
	m.mu.Lock()
	onClose := m.onClose
	m.media.Data = nil
	m.onClose = nil
	m.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}
