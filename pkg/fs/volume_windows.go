package fs

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// sameVolume compares the two paths' volume serial numbers, queried via
// GetVolumeInformation after resolving each path to its containing
// volume's root with GetVolumePathName.
func sameVolume(left, right string) (bool, error) {
	leftSerial, err := volumeSerialNumber(left)
	if err != nil {
		return false, errors.Wrap(err, "unable to query left volume")
	}
	rightSerial, err := volumeSerialNumber(right)
	if err != nil {
		return false, errors.Wrap(err, "unable to query right volume")
	}
	return leftSerial == rightSerial, nil
}

func volumeSerialNumber(path string) (uint32, error) {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	rootBuffer := make([]uint16, windows.MAX_PATH)
	if err := windows.GetVolumePathName(path16, &rootBuffer[0], uint32(len(rootBuffer))); err != nil {
		return 0, err
	}

	var serial uint32
	if err := windows.GetVolumeInformation(
		&rootBuffer[0],
		nil, 0,
		&serial,
		nil, nil,
		nil, 0,
	); err != nil {
		return 0, err
	}
	return serial, nil
}
