//go:build linux

package clipboard

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"syscall"

	"fclip/pkg/clipboard/internal/wayland"

	atotto "github.com/atotto/clipboard"
	xclip "golang.design/x/clipboard"
)

// OwnerPayload is the selection content handed to the background
// clipboard-owner process. It stays alive in that process until another
// application takes the selection. A non-empty Image marks an image
// selection; otherwise the text fields apply.
type OwnerPayload struct {
	URIList string
	Plain   string
	Image   []byte
}

// writeSelection installs the URI list on the clipboard. On Wayland it
// spawns a background owner process that serves text/uri-list and the
// plain-text fallbacks on demand, so the selection survives this process
// exiting. On X11 it falls back to writing the URI-list text as the plain
// selection.
func writeSelection(uriList, plain string) error {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return atotto.WriteAll(uriList)
	}
	return spawnOwner(OwnerPayload{URIList: uriList, Plain: plain})
}

// writeImageSelection installs PNG data as the clipboard image content.
// The selection is always handed to a background owner process: without
// one the image would vanish when this process exits, since nothing else
// serves the data.
func writeImageSelection(data []byte) error {
	return spawnOwner(OwnerPayload{Image: data})
}

func spawnOwner(p OwnerPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	// Re-exec this binary as a daemonised subprocess.
	cmd := exec.Command(os.Args[0], "__clipboard-serve")
	cmd.Stdin = bytes.NewReader(payload)
	// Detach from the parent's process group so the child survives parent exit.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start() // don't Wait — parent returns immediately
}

// ownerFormats maps the payload to the MIME targets the owner offers.
func ownerFormats(p OwnerPayload) map[string][]byte {
	if len(p.Image) > 0 {
		return map[string][]byte{
			"image/png": p.Image,
		}
	}
	return map[string][]byte{
		"text/uri-list":            []byte(p.URIList),
		"text/plain;charset=utf-8": []byte(p.Plain),
		"text/plain":               []byte(p.Plain),
		"UTF8_STRING":              []byte(p.Plain),
		"STRING":                   []byte(p.Plain),
	}
}

// ServeSelection is called by the __clipboard-serve hidden command. It
// claims the clipboard with the given payload and blocks until another
// process takes the selection. On Wayland every format is served on
// demand over wlr-data-control; on X11 an image selection is held
// in-process until the ownership-change signal fires.
func ServeSelection(p OwnerPayload) error {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return wayland.Serve(ownerFormats(p))
	}

	if len(p.Image) == 0 {
		// Text selections are only daemonized on Wayland.
		return nil
	}

	if err := xclip.Init(); err != nil {
		return err
	}
	<-xclip.Write(xclip.FmtImage, p.Image)
	return nil
}
