package unixmounts

import (
	"bufio"
	"os"
	"strings"
)

var mountinfoPath = "/proc/self/mountinfo"

// MountEntry is a currently mounted filesystem, one row of
// /proc/self/mountinfo.
type MountEntry struct {
	MountPath    string
	DevicePath   string // the mount source; not always a device node
	Root         string // root of the mount within its filesystem
	FSType       string
	Options      string // per-mount options
	SuperOptions string // per-superblock options
}

// Entries reads the active mount table of the calling process.
func Entries() ([]*MountEntry, error) {
	f, err := os.Open(mountinfoPath)
	if err != nil {
		return nil, errorf("Entries", "reading mountinfo: %w", err)
	}
	defer f.Close()

	var entries []*MountEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		e, err := parseEntryLine(sc.Text())
		if err != nil {
			return nil, &Error{Op: "Entries", Err: err}
		}
		if e != nil {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errorf("Entries", "reading mountinfo: %w", err)
	}
	return entries, nil
}

// EntryAt returns the active mount entry whose mount path is mountPath.
func EntryAt(mountPath string) (*MountEntry, error) {
	entries, err := Entries()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.MountPath == mountPath {
			return e, nil
		}
	}
	return nil, &Error{Op: "EntryAt", Err: ErrNotFound}
}

// parseEntryLine decodes one mountinfo row:
//
//	36 35 98:0 /mnt1 /mnt2 rw,noatime master:1 - ext3 /dev/root rw,errors=continue
//
// Optional fields sit between the per-mount options and the "-" separator.
func parseEntryLine(line string) (*MountEntry, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	fields := strings.Fields(line)
	if len(fields) < 7 {
		return nil, errorf("parse", "short mountinfo line %q", line)
	}

	sep := -1
	for i := 6; i < len(fields); i++ {
		if fields[i] == "-" {
			sep = i
			break
		}
	}
	if sep < 0 || sep+2 >= len(fields) {
		return nil, errorf("parse", "mountinfo line %q has no separator", line)
	}

	e := &MountEntry{
		Root:       unescapeOctal(fields[3]),
		MountPath:  unescapeOctal(fields[4]),
		Options:    fields[5],
		FSType:     fields[sep+1],
		DevicePath: unescapeOctal(fields[sep+2]),
	}
	if sep+3 < len(fields) {
		e.SuperOptions = fields[sep+3]
	}
	return e, nil
}

// IsReadOnly reports whether the filesystem was mounted read-only.
func (e *MountEntry) IsReadOnly() bool {
	return hasOption(e.Options, "ro")
}

// IsSystemInternal reports whether the entry is infrastructure a file manager
// would normally hide, judged from its filesystem type and device.
func (e *MountEntry) IsSystemInternal() bool {
	switch e.FSType {
	case "proc", "sysfs", "devpts", "devtmpfs", "cgroup", "cgroup2",
		"securityfs", "tracefs", "debugfs", "configfs", "pstore",
		"autofs", "mqueue", "hugetlbfs", "bpf", "fusectl", "rpc_pipefs":
		return true
	}
	switch e.DevicePath {
	case "none", "sunrpc", "devpts", "nfsd", "/dev/loop", "/dev/vn":
		return true
	}
	return false
}

// GuessName guesses a human-readable name for the entry, like
// MountPoint.GuessName.
func (e *MountEntry) GuessName() string {
	return (&MountPoint{MountPath: e.MountPath}).GuessName()
}
