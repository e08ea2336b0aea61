package clipboard

import (
	"context"
	"image"
	"sync"

	"fclip/pkg/errors"
	"fclip/pkg/imaging"
	"fclip/pkg/logger"
	"fclip/pkg/urilist"

	atotto "github.com/atotto/clipboard"
	xclip "golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// ensureInit initializes the system clipboard once per process and caches
// the result. After a failed attempt every operation fails fast with the
// same init error.
func ensureInit() error {
	initOnce.Do(func() {
		initErr = xclip.Init()
		if initErr != nil {
			logger.Debug().Err(initErr).Msg("clipboard initialization failed")
		}
	})
	if initErr != nil {
		return errors.InitError(initErr)
	}
	return nil
}

// ReadFilePaths returns the ordered list of file-system paths represented
// by the clipboard's URI-list selection. Entries that fail URI-to-path
// conversion are skipped.
func ReadFilePaths() ([]string, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}

	text, err := atotto.ReadAll()
	if err != nil {
		return nil, errors.UnavailableError(err)
	}
	if text == "" {
		return nil, errors.NoDataError("clipboard is empty")
	}

	paths := urilist.Parse(text)
	if len(paths) == 0 {
		return nil, errors.NoDataError("clipboard holds no file URIs")
	}
	return paths, nil
}

// WriteFilePaths places the given paths on the clipboard as a
// text/uri-list selection with a plain-text fallback, then asks the
// platform to keep the selection alive beyond this process. Paths that
// cannot be converted to a URI are dropped.
func WriteFilePaths(paths []string) error {
	return writeFilePaths(paths, false)
}

// WriteFilePathsStrict is WriteFilePaths, but fails the whole batch when
// any path cannot be converted.
func WriteFilePathsStrict(paths []string) error {
	return writeFilePaths(paths, true)
}

func writeFilePaths(paths []string, strict bool) error {
	if err := ensureInit(); err != nil {
		return err
	}

	uris, skipped := urilist.ConvertPaths(paths)
	if strict && len(skipped) > 0 {
		return errors.ConversionError(skipped)
	}
	for _, p := range skipped {
		logger.Debug().Str("path", p).Msg("dropping path that failed URI conversion")
	}

	// The plain-text fallback carries the paths as given, one per line,
	// even when some failed URI conversion.
	if err := writeSelection(urilist.Serialize(uris), urilist.PlainText(paths)); err != nil {
		return errors.UnavailableError(err)
	}
	return nil
}

// Clear discards the current clipboard content.
func Clear() error {
	if err := ensureInit(); err != nil {
		return err
	}
	if err := atotto.WriteAll(""); err != nil {
		return errors.UnavailableError(err)
	}
	return nil
}

// HasImage reports whether the clipboard currently exposes image content.
func HasImage() bool {
	if err := ensureInit(); err != nil {
		return false
	}
	return len(xclip.Read(xclip.FmtImage)) > 0
}

// SaveImageJPEG writes the clipboard image to target as JPEG. The
// compression factor is scaled to the 0-100 quality range and clamped.
func SaveImageJPEG(target string, compression float64) error {
	img, err := readImage()
	if err != nil {
		return err
	}
	if err := imaging.SaveJPEG(target, img, compression); err != nil {
		return errors.CodecError("save "+target, err)
	}
	return nil
}

// SaveImagePNG writes the clipboard image to target as PNG.
func SaveImagePNG(target string) error {
	img, err := readImage()
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(target, img); err != nil {
		return errors.CodecError("save "+target, err)
	}
	return nil
}

func readImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}

	data := xclip.Read(xclip.FmtImage)
	if len(data) == 0 {
		return nil, errors.NoDataError("clipboard holds no image")
	}

	img, err := imaging.Decode(data)
	if err != nil {
		return nil, errors.CodecError("decode clipboard image", err)
	}
	return img, nil
}

// PutImage decodes an image file and installs it as the clipboard's image
// content.
func PutImage(path string) error {
	if err := ensureInit(); err != nil {
		return err
	}

	img, err := imaging.DecodeFile(path)
	if err != nil {
		return errors.CodecError("load "+path, err)
	}
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return errors.CodecError("encode clipboard image", err)
	}

	if err := writeImageSelection(data); err != nil {
		return errors.UnavailableError(err)
	}
	return nil
}

// Watch emits the clipboard's file-path list each time the text selection
// changes, until ctx is cancelled. Changes that carry no file URIs are
// filtered out.
func Watch(ctx context.Context) (<-chan []string, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}

	events := xclip.Watch(ctx, xclip.FmtText)
	out := make(chan []string)

	go func() {
		defer close(out)
		for data := range events {
			paths := urilist.Parse(string(data))
			if len(paths) == 0 {
				continue
			}
			select {
			case out <- paths:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
