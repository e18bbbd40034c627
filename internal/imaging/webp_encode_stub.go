//go:build !cgo

package imaging

import "image"

func encodeWebP(image.Image, int) ([]byte, error) {
	return nil, errWebPUnavailable
}
