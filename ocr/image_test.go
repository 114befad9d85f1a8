package ocr

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestNormalizeImage_PNGPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	in := buf.Bytes()

	out, err := NormalizeImage(in)
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Error("PNG input must pass through unchanged")
	}
}

func TestNormalizeImage_JPEGBecomesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil); err != nil {
		t.Fatal(err)
	}

	out, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if _, format, err := image.Decode(bytes.NewReader(out)); err != nil || format != "png" {
		t.Errorf("output format = %q (err %v), want png", format, err)
	}
}

func TestNormalizeImage_GarbageRejected(t *testing.T) {
	if _, err := NormalizeImage([]byte("not an image")); err == nil {
		t.Error("expected an error for undecodable data")
	}
}
