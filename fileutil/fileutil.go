// Package fileutil infers file types from binary signatures and measures
// file-like values.
//
// Detection never fails: unreadable or unrecognized inputs degrade to the
// generic binary classification. The reported ContentType mirrors MIMEType
// because object stores key proper file handling off Content-Type.
package fileutil

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// Data modalities. Anything that is not recognizably audio, image, video,
// or text is classified as a generic file.
const (
	ModalityAudio = "Audio"
	ModalityImage = "Image"
	ModalityVideo = "Video"
	ModalityText  = "Text"
	ModalityFile  = "File"
)

// headerSize is how much of the file is inspected. A full kilobyte instead
// of the usual 128-byte sniff improves detection of unmarked UTF-8 files
// and formats lacking clear headers.
const headerSize = 1024

// zipSignature also opens PyTorch checkpoints, which must classify as
// opaque binaries rather than archives.
var zipSignature = []byte{0x50, 0x4B, 0x03, 0x04}

// TypeInfo describes a detected file type.
type TypeInfo struct {
	// Modality is the broad data category: Audio, Image, Video, Text, or File.
	Modality string `json:"data_modality"`

	// Encoding is the concrete format or text encoding (e.g. "mp3", "utf8", "bin").
	Encoding string `json:"data_encoding"`

	// MIMEType is the detected media type (e.g. "audio/mpeg").
	MIMEType string `json:"mime_type"`

	// Extension is the canonical file extension without the dot.
	Extension string `json:"file_extension"`

	// ContentType duplicates MIMEType for direct use as an HTTP or object
	// store header.
	ContentType string `json:"Content-Type"`
}

func newTypeInfo(modality, encoding, mimeType, extension string) TypeInfo {
	return TypeInfo{
		Modality:    modality,
		Encoding:    encoding,
		MIMEType:    mimeType,
		Extension:   extension,
		ContentType: mimeType,
	}
}

func binaryInfo() TypeInfo {
	return newTypeInfo(ModalityFile, "bin", "application/octet-stream", "bin")
}

// DetectType infers the type of the file at path by examining its first
// bytes. Unreadable files classify as generic binaries rather than
// returning an error.
func DetectType(path string) TypeInfo {
	header, err := readHeader(path)
	if err != nil {
		return binaryInfo()
	}
	return DetectHeader(header)
}

// DetectHeader infers a file type from the leading bytes of its content.
func DetectHeader(header []byte) TypeInfo {
	if bytes.HasPrefix(header, zipSignature) {
		return binaryInfo()
	}

	if isUTF16(header) {
		return newTypeInfo(ModalityText, "utf16", "text/plain", "txt")
	}

	mtype := mimetype.Detect(header)
	base, _, _ := strings.Cut(mtype.String(), ";")
	extension := strings.TrimPrefix(mtype.Extension(), ".")

	switch {
	case strings.HasPrefix(base, "audio/"):
		return newTypeInfo(ModalityAudio, extension, base, extension)
	case strings.HasPrefix(base, "image/"):
		return newTypeInfo(ModalityImage, extension, base, extension)
	case strings.HasPrefix(base, "video/"):
		return newTypeInfo(ModalityVideo, extension, base, extension)
	case strings.HasPrefix(base, "text/"):
		if utf8.Valid(header) {
			return newTypeInfo(ModalityText, "utf8", base, extension)
		}
		return newTypeInfo(ModalityText, "txt", base, extension)
	default:
		return binaryInfo()
	}
}

// isUTF16 reports whether the header carries a UTF-16 byte order mark, big
// or little endian, followed by decodable code units.
func isUTF16(header []byte) bool {
	if len(header) < 2 {
		return false
	}

	var order binary.ByteOrder
	switch {
	case header[0] == 0xFE && header[1] == 0xFF:
		order = binary.BigEndian
	case header[0] == 0xFF && header[1] == 0xFE:
		order = binary.LittleEndian
	default:
		return false
	}

	units := make([]uint16, 0, (len(header)-2)/2)
	rest := header[2:]
	for len(rest) >= 2 {
		units = append(units, order.Uint16(rest[:2]))
		rest = rest[2:]
	}
	for _, r := range utf16.Decode(units) {
		if r == utf8.RuneError {
			return false
		}
	}
	return true
}
