//go:build !linux

package clipboard

import (
	atotto "github.com/atotto/clipboard"
	xclip "golang.design/x/clipboard"
)

// OwnerPayload is the selection content for the Linux clipboard-owner
// process; unused on other platforms.
type OwnerPayload struct {
	URIList string
	Plain   string
	Image   []byte
}

// writeSelection installs the URI-list text as the plain selection. Only
// Linux serves multiple targets.
func writeSelection(uriList, plain string) error {
	return atotto.WriteAll(uriList)
}

// writeImageSelection installs PNG data as the clipboard image content.
// The platform clipboard service copies the payload on write, so no
// owner process is needed to keep it alive.
func writeImageSelection(data []byte) error {
	xclip.Write(xclip.FmtImage, data)
	return nil
}

// ServeSelection is only used on Linux.
func ServeSelection(p OwnerPayload) error {
	return nil
}
