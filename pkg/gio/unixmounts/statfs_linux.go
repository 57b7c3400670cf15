//go:build linux

package unixmounts

import "golang.org/x/sys/unix"

// LiveReadOnly asks the kernel, rather than the mount table, whether the
// filesystem containing path is currently mounted read-only. A remount can
// flip this after the tables were read.
func LiveReadOnly(path string) (bool, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return false, errorf("LiveReadOnly", "statfs %s: %w", path, err)
	}
	return st.Flags&unix.ST_RDONLY != 0, nil
}
