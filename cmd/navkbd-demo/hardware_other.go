//go:build !linux

package main

import (
	"context"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/hardware"
)

func openHardware(_ context.Context, path string) (<-chan hardware.Event, func()) {
	if path != "" {
		navkbd.GetLogger().Warn("Physical keys are only supported on Linux", "device", path)
	}
	return nil, func() {}
}
