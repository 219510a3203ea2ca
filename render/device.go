// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle exposes the GPU device behind a window's rendering context.
//
// A GPU backend returns the device its window was created on so that the
// host application can share it. CPU backends return NullDeviceHandle.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, so any gogpu
// host context can be passed where a DeviceHandle is expected.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used by windows whose context is a CPU canvas.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// IsGPU reports whether h is backed by a real GPU device.
func IsGPU(h DeviceHandle) bool {
	if h == nil {
		return false
	}
	if _, ok := h.(NullDeviceHandle); ok {
		return false
	}
	return h.Device() != nil
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
