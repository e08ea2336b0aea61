package wayland

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Object IDs we assign ourselves (client range: 2-0xfeffffff).
const (
	idDisplay   uint32 = 1
	idRegistry  uint32 = 2
	idCallback1 uint32 = 3 // first sync
	idSeat      uint32 = 4
	idDCManager uint32 = 5 // zwlr_data_control_manager_v1
	idDCSource  uint32 = 6 // zwlr_data_control_source_v1
	idDCDevice  uint32 = 7 // zwlr_data_control_device_v1
	idCallback2 uint32 = 8 // second sync
)

// Serve claims the Wayland clipboard (zwlr_data_control_v1) with the
// given formats and blocks until ownership is cancelled by another
// clipboard write. Each paste request names a MIME type; the matching
// bytes are written to the fd the compositor provides. Returning after
// the cancelled event is the single release point for the payload.
func Serve(formats map[string][]byte) error {
	runtime := os.Getenv("XDG_RUNTIME_DIR")
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	if runtime == "" {
		return fmt.Errorf("wayland: XDG_RUNTIME_DIR not set")
	}

	c, err := dial(filepath.Join(runtime, display))
	if err != nil {
		return fmt.Errorf("wayland: connect %s: %w", filepath.Join(runtime, display), err)
	}
	defer c.close()

	seatName, dcManagerName, err := discoverGlobals(c)
	if err != nil {
		return err
	}

	// Bind wl_seat and the data-control manager. wl_registry.bind encodes
	// new_id inline: [name][interface string][version][new_id].
	if err := c.request(idRegistry, 0 /*bind*/, args(
		putUint32(seatName),
		putString("wl_seat"),
		putUint32(1),
		putUint32(idSeat),
	)); err != nil {
		return err
	}
	if err := c.request(idRegistry, 0 /*bind*/, args(
		putUint32(dcManagerName),
		putString("zwlr_data_control_manager_v1"),
		putUint32(2),
		putUint32(idDCManager),
	)); err != nil {
		return err
	}

	// Create the data source and offer every MIME type.
	if err := c.request(idDCManager, 0 /*create_data_source*/, putUint32(idDCSource)); err != nil {
		return err
	}
	for mimeType := range formats {
		if err := c.request(idDCSource, 0 /*offer*/, putString(mimeType)); err != nil {
			return err
		}
	}

	// Take the selection through the seat's data device.
	if err := c.request(idDCManager, 1 /*get_data_device*/, args(
		putUint32(idDCDevice),
		putUint32(idSeat),
	)); err != nil {
		return err
	}
	if err := c.request(idDCDevice, 0 /*set_selection*/, putUint32(idDCSource)); err != nil {
		return err
	}

	// Sync to confirm the compositor accepted the selection.
	if err := c.request(idDisplay, 0 /*sync*/, putUint32(idCallback2)); err != nil {
		return err
	}
	for {
		objectID, opcode, _, fd, err := c.nextEvent()
		if err != nil {
			return err
		}
		if fd >= 0 {
			syscall.Close(fd) //nolint:errcheck
		}
		if objectID == idCallback2 && opcode == 0 /*done*/ {
			break
		}
	}

	// Serve paste requests until ownership is cancelled.
	for {
		objectID, opcode, payload, fd, err := c.nextEvent()
		if err != nil {
			// Connection closed means the compositor exited; treat as done.
			return nil
		}

		if objectID != idDCSource {
			if fd >= 0 {
				syscall.Close(fd) //nolint:errcheck
			}
			continue
		}

		switch opcode {
		case 0: // zwlr_data_control_source_v1.send
			mimeType, _, _ := getString(payload)
			if fd >= 0 {
				if data, ok := formats[mimeType]; ok {
					syscall.Write(fd, data) //nolint:errcheck
				}
				syscall.Close(fd) //nolint:errcheck
			}
		case 1: // zwlr_data_control_source_v1.cancelled
			return nil
		}
	}
}

// discoverGlobals requests the registry, syncs, and scans the advertised
// globals for wl_seat and zwlr_data_control_manager_v1.
func discoverGlobals(c *conn) (seatName, dcManagerName uint32, err error) {
	if err := c.request(idDisplay, 1 /*get_registry*/, putUint32(idRegistry)); err != nil {
		return 0, 0, err
	}
	if err := c.request(idDisplay, 0 /*sync*/, putUint32(idCallback1)); err != nil {
		return 0, 0, err
	}

	var seatFound, dcManagerFound bool
	for {
		objectID, opcode, payload, fd, err := c.nextEvent()
		if err != nil {
			return 0, 0, err
		}
		if fd >= 0 {
			syscall.Close(fd) //nolint:errcheck
		}

		switch {
		case objectID == idRegistry && opcode == 0 /*global*/:
			if len(payload) < 4 {
				continue
			}
			name := le.Uint32(payload[:4])
			iface, _, decErr := getString(payload[4:])
			if decErr != nil {
				continue
			}
			switch iface {
			case "wl_seat":
				seatName = name
				seatFound = true
			case "zwlr_data_control_manager_v1":
				dcManagerName = name
				dcManagerFound = true
			}

		case objectID == idCallback1 && opcode == 0 /*done*/:
			if !seatFound {
				return 0, 0, fmt.Errorf("wayland: wl_seat not found")
			}
			if !dcManagerFound {
				return 0, 0, fmt.Errorf("wayland: zwlr_data_control_manager_v1 not found (compositor may not support wlr-data-control)")
			}
			return seatName, dcManagerName, nil
		}
	}
}
