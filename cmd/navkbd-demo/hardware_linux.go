//go:build linux

package main

import (
	"context"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/hardware"
)

func openHardware(ctx context.Context, path string) (<-chan hardware.Event, func()) {
	if path == "" {
		return nil, func() {}
	}

	reader, err := hardware.Open(path)
	if err != nil {
		navkbd.GetLogger().Warn("Physical keys unavailable", "device", path, "error", err)
		return nil, func() {}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	events := make(chan hardware.Event, 16)
	go func() {
		if err := reader.Run(ctx, events); err != nil {
			navkbd.GetLogger().Error("Input device stopped", "device", path, "error", err)
		}
	}()

	return events, cancel
}
