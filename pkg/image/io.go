package image

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
)

// Canvas is the pixel buffer the encoder writes to and the decoder reads from. *image.NRGBA implements it.
// Non-premultiplied colors are required so that channels of translucent pixels survive a PNG round trip untouched.
type Canvas interface {
	image.Image
	NRGBAAt(x, y int) color.NRGBA
	SetNRGBA(x, y int, c color.NRGBA)
}

// Open decodes a PNG or JPEG file into a mutable NRGBA copy.
func Open(filePath string) (*image.NRGBA, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func Read(r io.Reader) (*image.NRGBA, error) {
	srcImage, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return ToNRGBA(srcImage), nil
}

// ToNRGBA returns a copy of img as *image.NRGBA with the same bounds. NRGBA sources are copied byte for byte, since
// going through premultiplied colors would alter the channels of translucent pixels.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(bounds)
	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			copy(nrgba.Pix[nrgba.PixOffset(bounds.Min.X, y):nrgba.PixOffset(bounds.Max.X, y)], src.Pix[src.PixOffset(bounds.Min.X, y):])
		}
		return nrgba
	}
	// TODO: Work with 16-bit images, their low byte is dropped here
	draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)
	return nrgba
}

func pixelChannels(pixel *color.NRGBA) [channelsToWrite]*uint8 {
	return [channelsToWrite]*uint8{&pixel.R, &pixel.G, &pixel.B}
}

func WritePNG(output io.Writer, img image.Image, compressionLevel png.CompressionLevel) error {
	enc := png.Encoder{CompressionLevel: compressionLevel}
	return enc.Encode(output, img)
}

// Save writes img as a PNG file. Lossy formats would destroy the hidden bits, so PNG is the only output format.
func Save(filePath string, img image.Image, compressionLevel png.CompressionLevel) error {
	outputFile, err := os.Create(filePath)
	if err != nil {
		return err
	}
	if err = WritePNG(outputFile, img, compressionLevel); err != nil {
		outputFile.Close()
		return err
	}
	return outputFile.Close()
}
