//go:build !windows

package fs

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// sameVolume compares the POSIX device id of the two paths' nearest
// existing ancestor, grounded on the teacher's device_posix.go DeviceID.
func sameVolume(left, right string) (bool, error) {
	leftDevice, err := deviceID(left)
	if err != nil {
		return false, errors.Wrap(err, "unable to query left device")
	}
	rightDevice, err := deviceID(right)
	if err != nil {
		return false, errors.Wrap(err, "unable to query right device")
	}
	return leftDevice == rightDevice, nil
}

func deviceID(path string) (uint64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, errors.New("unable to extract raw filesystem information")
	}
	return uint64(stat.Dev), nil
}
