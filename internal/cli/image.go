package cli

import (
	"fmt"
	"io"
	"os"
	"stegano/internal/bits"
	"stegano/internal/logging"
	"stegano/pkg/cipher"
	"stegano/pkg/config"
	stegImage "stegano/pkg/image"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func ImageCommands(a *app) *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "stegano image encode --image source.png --output-file output.png --message \"Hello\" --password Password",
	}

	imageCmd.AddCommand(encodeImageCommand(a), decodeImageCommand(a), capacityImageCommand(a))
	return imageCmd
}

type encodeImageOpts struct {
	sourceImage    string
	outputImage    string
	message        string
	messageFile    string
	password       string
	pngCompression string
	ivMode         string
	paddingSeed    int64
}

// toEncodeConfig applies the flags that were set on top of the config file.
func (o encodeImageOpts) toEncodeConfig(cmd *cobra.Command, cfg *config.File) (config.ImageEncodeConfig, error) {
	iConfig, err := cfg.EncodeConfig()
	if err != nil {
		return iConfig, err
	}
	if cmd.Flags().Changed("png-compression") {
		if iConfig.PngCompressionLevel, err = config.ParsePngCompression(o.pngCompression); err != nil {
			return iConfig, err
		}
	}
	if cmd.Flags().Changed("iv-mode") {
		if iConfig.IVMode, err = cipher.ParseIVMode(o.ivMode); err != nil {
			return iConfig, err
		}
	}
	if cmd.Flags().Changed("padding-seed") {
		iConfig.RandomSource = bits.NewSeededRandomSource(o.paddingSeed)
	}
	return iConfig, nil
}

func (o encodeImageOpts) readMessage() (string, error) {
	if o.messageFile == "" {
		return o.message, nil
	}
	content, err := os.ReadFile(o.messageFile)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func encodeImageCommand(a *app) *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "stegano image encode --image source.png --output-file output.png --message-file message.txt --password Password",
		Short:   "Hide an encrypted message in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			iConfig, err := opts.toEncodeConfig(cmd, a.config)
			if err != nil {
				return err
			}
			message, err := opts.readMessage()
			if err != nil {
				return err
			}
			return EncodeImageWithMessage(cmd, a.logger, opts.sourceImage, opts.outputImage, message, opts.password, iConfig)
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the message in, it is never modified")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the encoded PNG image that will be generated")
	encImgCmd.Flags().StringVar(&opts.message, "message", "", "ASCII message to hide")
	encImgCmd.Flags().StringVar(&opts.messageFile, "message-file", "", "File holding the ASCII message to hide")
	encImgCmd.Flags().StringVar(&opts.password, "password", "", "Password of at least 8 ASCII characters to encrypt the message with")

	encImgCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	encImgCmd.Flags().StringVar(&opts.ivMode, "iv-mode", string(cipher.ZeroIV), "IV used to encrypt the message. Options are zero, random")
	encImgCmd.Flags().Int64Var(&opts.paddingSeed, "padding-seed", 0, "Seed for the random bits written after the message, for reproducible output")

	MarkFlagsRequired(encImgCmd, "image", "output-file", "password")
	encImgCmd.MarkFlagsOneRequired("message", "message-file")
	encImgCmd.MarkFlagsMutuallyExclusive("message", "message-file")

	return encImgCmd
}

func EncodeImageWithMessage(cmd *cobra.Command, logger *logging.Logger, imageSourcePath, outputPath, message, password string, iConfig config.ImageEncodeConfig) error {
	s := NewSpinner(cmd)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := stegImage.Open(imageSourcePath)
	if err != nil {
		return err
	}

	s.Prefix = "Encoding message "
	iEncoder, err := stegImage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return err
	}
	if err = iEncoder.Encode(message, password); err != nil {
		return err
	}

	s.Prefix = "Generating output PNG image "
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err = iEncoder.WriteEncodedPNG(outputFile); err != nil {
		outputFile.Close()
		return err
	}
	if err = outputFile.Close(); err != nil {
		return err
	}
	s.Stop()

	logger.With("stats", iEncoder.Stats().Humanize()).Debug("Image encoding was successful")
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with a %s message hidden in it\n", outputPath, humanize.Bytes(uint64(len(message))))
	return nil
}

type decodeImageOpts struct {
	encodedImage string
	password     string
	outputFile   string
	ivMode       string
}

func decodeImageCommand(a *app) *cobra.Command {
	opts := decodeImageOpts{}

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "stegano image decode --source encoded-image.png --password Password",
		Short:   "Decode the message hidden in an image by stegano",
		RunE: func(cmd *cobra.Command, args []string) error {
			iConfig, err := a.config.DecodeConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iv-mode") {
				if iConfig.IVMode, err = cipher.ParseIVMode(opts.ivMode); err != nil {
					return err
				}
			}
			return DecodeMessageFromImage(cmd, a.logger, opts.encodedImage, opts.password, opts.outputFile, iConfig)
		},
	}

	decodeCommand.Flags().StringVar(&opts.encodedImage, "source", "", "Image generated by stegano to decode")
	decodeCommand.Flags().StringVar(&opts.password, "password", "", "Password the message was encrypted with")
	decodeCommand.Flags().StringVar(&opts.outputFile, "output-file", "", "File to write the message to, printed when not set")
	decodeCommand.Flags().StringVar(&opts.ivMode, "iv-mode", string(cipher.ZeroIV), "IV the message was encrypted with. Options are zero, random")

	MarkFlagsRequired(decodeCommand, "source", "password")
	return decodeCommand
}

func DecodeMessageFromImage(cmd *cobra.Command, logger *logging.Logger, encodedImagePath, password, outputPath string, iConfig config.ImageDecodeConfig) error {
	s := NewSpinner(cmd)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := stegImage.Open(encodedImagePath)
	if err != nil {
		return err
	}

	s.Prefix = "Decoding message "
	decoder, err := stegImage.NewImageDecoder(srcImage, iConfig)
	if err != nil {
		return err
	}
	message, err := decoder.Decode(password)
	if err != nil {
		return err
	}
	s.Stop()
	logger.With("stats", decoder.Stats().Humanize()).Debug("Image decoding was successful")

	if outputPath == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), message+"\n")
		return err
	}
	if err = os.WriteFile(outputPath, []byte(message), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Decoded %s message into %s\n", humanize.Bytes(uint64(len(message))), outputPath)
	return nil
}

func capacityImageCommand(a *app) *cobra.Command {
	var imagePath, ivMode string

	capacityCommand := &cobra.Command{
		Use:     "capacity",
		Example: "stegano image capacity --image source.png",
		Short:   "Show how long a message the image can hide",
		RunE: func(cmd *cobra.Command, args []string) error {
			iConfig, err := a.config.EncodeConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iv-mode") {
				iConfig.IVMode = cipher.IVMode(ivMode)
			}
			aesCipher, err := cipher.NewAES(iConfig.IVMode)
			if err != nil {
				return err
			}

			img, err := stegImage.Open(imagePath)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), stegImage.Capacity(img.Bounds(), aesCipher).Human())
			return err
		},
	}

	capacityCommand.Flags().StringVar(&imagePath, "image", "", "Image to inspect")
	capacityCommand.Flags().StringVar(&ivMode, "iv-mode", string(cipher.ZeroIV), "IV the message would be encrypted with. Options are zero, random")

	MarkFlagsRequired(capacityCommand, "image")
	return capacityCommand
}
