// Package psdtest writes minimal Photoshop documents for tests.
//
// Files are 8-bit RGB with raw (uncompressed) channel data, no colour mode
// data and no image resources. Layers are solid rectangles with their own
// alpha channel.
package psdtest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"os"
	"unicode/utf16"
)

// Layer is a solid pixel layer.
type Layer struct {
	// Name is stored as the legacy Pascal name.
	Name string
	// UnicodeName, when set, is stored as a "luni" record.
	UnicodeName string
	Rect        image.Rectangle
	Fill        color.NRGBA
}

// File describes a document. Layers are listed bottom first.
type File struct {
	Width, Height int
	// Base fills the merged image. Its alpha is ignored.
	Base   color.NRGBA
	Layers []Layer
}

// layer channel order: transparency, red, green, blue.
var channelIDs = []int16{-1, 0, 1, 2}

// Bytes encodes f.
func (f File) Bytes() []byte {
	b := []byte("8BPS")
	b = be16(b, 1)
	b = append(b, make([]byte, 6)...)
	b = be16(b, 3) // channels
	b = be32(b, uint32(f.Height))
	b = be32(b, uint32(f.Width))
	b = be16(b, 8) // depth
	b = be16(b, 3) // RGB
	b = be32(b, 0) // colour mode data
	b = be32(b, 0) // image resources

	info := f.layerInfo()
	b = be32(b, uint32(4+len(info)+4))
	b = be32(b, uint32(len(info)))
	b = append(b, info...)
	b = be32(b, 0) // global layer mask

	b = be16(b, 0) // raw
	n := f.Width * f.Height
	for _, v := range []byte{f.Base.R, f.Base.G, f.Base.B} {
		b = append(b, bytes.Repeat([]byte{v}, n)...)
	}
	return b
}

// WriteFile writes the encoded document to path.
func (f File) WriteFile(path string) error {
	return os.WriteFile(path, f.Bytes(), 0o600)
}

func (f File) layerInfo() []byte {
	if len(f.Layers) == 0 {
		return nil
	}
	b := be16(nil, uint16(len(f.Layers)))
	for _, l := range f.Layers {
		b = l.record(b)
	}
	for _, l := range f.Layers {
		b = l.pixels(b)
	}
	return b
}

func (l Layer) record(b []byte) []byte {
	for _, v := range []int{l.Rect.Min.Y, l.Rect.Min.X, l.Rect.Max.Y, l.Rect.Max.X} {
		b = be32(b, uint32(int32(v)))
	}
	b = be16(b, uint16(len(channelIDs)))
	size := uint32(2 + l.Rect.Dx()*l.Rect.Dy())
	for _, id := range channelIDs {
		b = be16(b, uint16(id))
		b = be32(b, size)
	}
	b = append(b, "8BIMnorm"...)
	b = append(b, 255, 0, 0, 0) // opacity, clipping, flags, filler

	extra := l.extra()
	b = be32(b, uint32(len(extra)))
	return append(b, extra...)
}

func (l Layer) extra() []byte {
	b := be32(nil, 0) // layer mask
	b = be32(b, 0)    // blending ranges

	name := append([]byte{byte(len(l.Name))}, l.Name...)
	for len(name)%4 != 0 {
		name = append(name, 0)
	}
	b = append(b, name...)

	if l.UnicodeName != "" {
		units := utf16.Encode([]rune(l.UnicodeName))
		data := be32(nil, uint32(len(units)))
		for _, u := range units {
			data = be16(data, u)
		}
		b = append(b, "8BIMluni"...)
		b = be32(b, uint32(len(data)))
		b = append(b, data...)
	}
	return b
}

func (l Layer) pixels(b []byte) []byte {
	n := l.Rect.Dx() * l.Rect.Dy()
	for _, v := range []byte{l.Fill.A, l.Fill.R, l.Fill.G, l.Fill.B} {
		b = be16(b, 0) // raw
		b = append(b, bytes.Repeat([]byte{v}, n)...)
	}
	return b
}

func be16(b []byte, v uint16) []byte { return binary.BigEndian.AppendUint16(b, v) }

func be32(b []byte, v uint32) []byte { return binary.BigEndian.AppendUint32(b, v) }
