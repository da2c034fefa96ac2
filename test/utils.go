package test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
)

const printableASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateRandomASCII returns a string of printable ASCII characters, the only ones a message can hold.
func GenerateRandomASCII(numOfCharsToGenerate int) string {
	generated := make([]byte, numOfCharsToGenerate)
	for i := range generated {
		generated[i] = printableASCII[rand.Intn(len(printableASCII))]
	}
	return string(generated)
}

// GenerateImage returns an opaque image filled with random colors.
func GenerateImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(rand.Intn(256)), G: uint8(rand.Intn(256)), B: uint8(rand.Intn(256)), A: 255})
		}
	}
	return img
}

// EncodePNG is GenerateImage written out as a PNG.
func EncodePNG(width, height int) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, GenerateImage(width, height)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
